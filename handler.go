package topicgate

import (
	"context"
	"net/http"
	"strconv"

	"github.com/porebric/logger"
	"github.com/porebric/tracer"

	"github.com/topicgate/topicgate/responses"
)

func (rt *router) Endpoint(path, method string, newRequest RequestFactory, action Action, mm ...MiddlewareFactory) {
	rt.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		rt.handle(w, r, newRequest, action, mm...)
	}).Methods(method)
}

func (rt *router) handle(w http.ResponseWriter, r *http.Request, newRequest RequestFactory, action Action, mm ...MiddlewareFactory) {
	log := rt.LogFn()
	defer getDeferCatchPanic(log, w)

	ctx, span := tracer.StartSpan(r.Context(), r.URL.Path)
	span.Tag("method", r.Method)
	defer span.End()

	ctx = logger.ToContext(ctx, log.With("token", span.TraceId()))

	w.Header().Set("Content-Type", "application/json")

	req := newRequest()

	ctx, errResp, httpCode := checkRequest(ctx, r, req, mm...)
	if errResp != nil {
		logger.Warn(ctx, "rejected request", "method", r.Method, "path", r.URL.Path, "message", errResp.Message)
		writeResponse(ctx, w, r, errResp, httpCode)
		return
	}

	logger.Info(ctx, "request", "content", req.String(), "method", r.Method, "path", r.URL.Path)

	resp, httpCode := action(ctx, req)
	writeResponse(ctx, w, r, resp, httpCode)
}

func writeResponse(ctx context.Context, w http.ResponseWriter, r *http.Request, resp responses.Response, httpCode int) {
	requestCounter.WithLabelValues(r.URL.Path, r.Method, strconv.Itoa(httpCode)).Inc()

	w.WriteHeader(httpCode)
	if err := resp.PrepareResponse(w); err != nil {
		logger.Error(ctx, err, "prepare response", "path", r.URL.Path)
	}
}
