package topicgate

import (
	"context"

	"github.com/topicgate/topicgate/middleware"
	"github.com/topicgate/topicgate/requests"
	"github.com/topicgate/topicgate/responses"
)

// Action produces the response and HTTP status for a bound, validated request.
type Action func(ctx context.Context, req requests.Request) (responses.Response, int)

// RequestFactory yields a fresh request value per call; requests are mutated
// by binding and must not be shared between invocations.
type RequestFactory func() requests.Request

type MiddlewareFactory func() middleware.Middleware
