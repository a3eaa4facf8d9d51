package middleware

import (
	"context"

	"github.com/topicgate/topicgate/errors"
	"github.com/topicgate/topicgate/requests"
)

type Middleware interface {
	Execute(context.Context, requests.Request) (context.Context, int32, string)
	SetNext(Middleware)
	GetKey() string
}

// RequestCheck terminates a chain: reaching it means every middleware passed.
type RequestCheck struct {
	next Middleware
}

func (r *RequestCheck) Execute(ctx context.Context, _ requests.Request) (context.Context, int32, string) {
	return ctx, errors.KindNoError, ""
}

func (r *RequestCheck) SetNext(next Middleware) {
	r.next = next
}

func (r *RequestCheck) GetKey() string {
	return ""
}
