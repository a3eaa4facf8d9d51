package middleware

import (
	"context"
	"fmt"

	"github.com/topicgate/topicgate/errors"
	"github.com/topicgate/topicgate/requests"
)

const KeyRequestValidate = "request_validate"

type RequestValidate struct {
	next Middleware
}

func (r *RequestValidate) Execute(ctx context.Context, req requests.Request) (context.Context, int32, string) {
	valid, field, msg := req.Validate()
	if valid {
		return r.next.Execute(ctx, req)
	}
	if field == "" {
		return ctx, errors.KindInvalidRequest, ""
	}

	if msg == "" {
		msg = "invalid"
	}
	return ctx, errors.KindInvalidRequest, fmt.Sprintf("field %s: %s", field, msg)
}

func (r *RequestValidate) SetNext(next Middleware) {
	r.next = next
}

func (r *RequestValidate) GetKey() string {
	return KeyRequestValidate
}
