package topicgate

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/porebric/logger"

	"github.com/topicgate/topicgate/errors"
	"github.com/topicgate/topicgate/middleware"
	"github.com/topicgate/topicgate/requests"
	"github.com/topicgate/topicgate/responses"
)

func getDeferCatchPanic(log *logger.Logger, w http.ResponseWriter) {
	if rec := recover(); rec != any(nil) {
		logger.Error(
			logger.ToContext(context.Background(), log),
			fmt.Errorf("error: %v", rec), "critical error", "stacktrace", string(debug.Stack()),
		)
		resp, httpCode := errors.GetError("", errors.KindCritical)
		w.WriteHeader(httpCode)
		_ = resp.PrepareResponse(w)
	}
}

// checkRequest runs the endpoint's middleware chain: bind, validate, then any
// endpoint-specific middlewares, ending at the terminal check. A nil error
// body means the request may proceed.
func checkRequest(ctx context.Context, r *http.Request, req requests.Request, mm ...MiddlewareFactory) (context.Context, *responses.ErrorBody, int) {
	middlewares := make([]middleware.Middleware, 2, len(mm)+3)
	middlewares[0] = middleware.NewRequestInit(r)
	middlewares[1] = new(middleware.RequestValidate)
	middlewares[0].SetNext(middlewares[1])

	for _, m := range mm {
		newMiddleware := m()
		middlewares[len(middlewares)-1].SetNext(newMiddleware)

		middlewares = append(middlewares, newMiddleware)
	}

	middlewares[len(middlewares)-1].SetNext(&middleware.RequestCheck{})

	ctx, kind, msg := middlewares[0].Execute(ctx, req)
	if kind != errors.KindNoError {
		resp, httpCode := errors.GetError(msg, kind)
		return ctx, resp, httpCode
	}

	return ctx, nil, 0
}
