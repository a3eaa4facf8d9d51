package ws

import (
	"context"
	"net/http"

	"github.com/porebric/logger"
)

type Handler struct {
	logFn func() *logger.Logger
}

func NewHandler(logFn func() *logger.Logger) *Handler {
	return &Handler{logFn: logFn}
}

func (h *Handler) ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	topic := hub.keyFn(r)
	if topic == "" {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	ctx := logger.ToContext(context.Background(), h.logFn())

	c := newClient(ctx, hub, make(chan []byte, 512), conn, topic)

	c.hub.register <- c

	go c.write()
	go c.read()

	logger.Info(ctx, "new stream client", "ip", r.RemoteAddr, "topic", topic)
}
