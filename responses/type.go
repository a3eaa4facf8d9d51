package responses

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Response interface {
	PrepareResponse(w http.ResponseWriter) error
}
