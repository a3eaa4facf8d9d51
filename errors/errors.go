package errors

import (
	"net/http"

	"github.com/topicgate/topicgate/responses"
)

const KindNoError = -1

const KindInvalidRequest = 0   // KindInvalidRequest Request does not meet the requirements
const KindTopicNotFound = 1    // KindTopicNotFound Topic does not exist
const KindTopicExists = 2      // KindTopicExists Topic already exists
const KindOffsetOutOfRange = 3 // KindOffsetOutOfRange Requested offset is below the retained range
const KindUnknownMethod = 4    // KindUnknownMethod No endpoint for this path and method
const KindNotFound = 5         // KindNotFound Route not found
const KindCritical = 6         // KindCritical Some error in code

type RegisteredError struct {
	HTTPCode int    `json:"httpCode"`
	Message  string `json:"message"`
}

var registeredErrors = map[int32]RegisteredError{
	KindInvalidRequest:   {http.StatusUnprocessableEntity, "invalid request"},
	KindTopicNotFound:    {http.StatusNotFound, "topic not found"},
	KindTopicExists:      {http.StatusConflict, "topic already exists"},
	KindOffsetOutOfRange: {http.StatusRequestedRangeNotSatisfiable, "offset out of range"},
	KindUnknownMethod:    {http.StatusMethodNotAllowed, "unknown method"},
	KindNotFound:         {http.StatusNotFound, "not found"},
	KindCritical:         {http.StatusInternalServerError, "internal error"},
}

// Init merges host-specific kinds into the registry. Existing kinds are
// overwritten.
func Init(additionalErrors map[int32]RegisteredError) {
	for k, v := range additionalErrors {
		registeredErrors[k] = v
	}
}

// GetError builds the wire body for a kind. The body's error_code is the HTTP
// status itself, so the second return value always equals it; it is returned
// separately for WriteHeader call sites. An unregistered kind degrades to 500.
func GetError(msg string, kind int32) (*responses.ErrorBody, int) {
	registered, ok := registeredErrors[kind]
	if !ok {
		return &responses.ErrorBody{ErrorCode: http.StatusInternalServerError, Message: "internal error"}, http.StatusInternalServerError
	}

	resp := &responses.ErrorBody{ErrorCode: registered.HTTPCode}
	if msg == "" {
		resp.Message = registered.Message
	} else {
		resp.Message = msg
	}
	return resp, registered.HTTPCode
}
