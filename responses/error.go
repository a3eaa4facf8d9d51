package responses

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// ObjectWriter is the sink an error body is rendered into: anything that can
// open an object, write keys and scalar values, and close the object again.
// *jsoniter.Stream satisfies it.
type ObjectWriter interface {
	WriteObjectStart()
	WriteObjectField(field string)
	WriteMore()
	WriteInt(v int)
	WriteString(s string)
	WriteObjectEnd()
}

var _ ObjectWriter = (*jsoniter.Stream)(nil)

// ErrorBody is the wire shape of every error the gateway returns. ErrorCode
// carries the HTTP status of the response; Message is the human-readable
// diagnostic. Both fields are always emitted, in this order.
type ErrorBody struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

// RenderErrorBody writes v into w as a single JSON object. It performs no
// validation and no recovery: a sink that cannot accept further tokens fails
// on its own terms.
func RenderErrorBody(w ObjectWriter, v ErrorBody) {
	w.WriteObjectStart()
	w.WriteObjectField("error_code")
	w.WriteInt(v.ErrorCode)
	w.WriteMore()
	w.WriteObjectField("message")
	w.WriteString(v.Message)
	w.WriteObjectEnd()
}

func (v *ErrorBody) PrepareResponse(w http.ResponseWriter) error {
	s := json.BorrowStream(w)
	defer json.ReturnStream(s)

	RenderErrorBody(s, *v)
	if s.Error != nil {
		return s.Error
	}
	return s.Flush()
}
