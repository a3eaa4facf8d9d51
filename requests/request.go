package requests

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Request interface {
	Set(r *http.Request) error
	Validate() (bool, string, string)
	String() string
}

// Empty binds nothing and always validates; for endpoints without inputs.
type Empty struct{}

func (q *Empty) Set(_ *http.Request) error { return nil }

func (q *Empty) Validate() (bool, string, string) { return true, "", "" }

func (q *Empty) String() string { return "" }
