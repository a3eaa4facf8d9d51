package ws

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"slices"

	"github.com/porebric/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/topicgate/topicgate/broker"
)

const maxTopicConnections = 10

var activeClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "active_stream_clients_total",
		Help: "The total number of active streaming clients",
	},
)

type recordBroadcast struct {
	topic string
	body  []byte
}

// Hub fans produced records out to the websocket clients subscribed to each
// topic. It holds one broker subscription per topic with at least one client,
// opened on the first register and cancelled on the last unregister. All hub
// state is owned by the Run goroutine.
type Hub struct {
	broker     *broker.Broker
	clients    map[string][]*client
	cancels    map[string]func()
	register   chan *client
	unregister chan *client
	broadcast  chan recordBroadcast
	shutdown   chan chan struct{}
	done       chan struct{}
	keyFn      func(r *http.Request) string
}

// NewHub builds a hub over the broker. keyFn extracts the topic a connection
// subscribes to; returning "" rejects the connection.
func NewHub(b *broker.Broker, keyFn func(r *http.Request) string) *Hub {
	return &Hub{
		broker:     b,
		clients:    make(map[string][]*client),
		cancels:    make(map[string]func()),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan recordBroadcast),
		shutdown:   make(chan chan struct{}),
		done:       make(chan struct{}),
		keyFn:      keyFn,
	}
}

func (h *Hub) Run(logFn func() *logger.Logger) {
	defer close(h.done)
	defer func() {
		if rec := recover(); rec != any(nil) {
			logger.Fatal(logger.ToContext(context.Background(), logFn()), fmt.Sprintf("ws run critical error: %v", rec), "stacktrace", string(debug.Stack()))
		}
	}()

	for {
		select {
		case registerClient := <-h.register:
			activeClients.Inc()
			h.clients[registerClient.topic] = append(h.clients[registerClient.topic], registerClient)

			if len(h.clients[registerClient.topic]) > maxTopicConnections {
				h.clients[registerClient.topic][0].send(
					newError(MaxConnectionsPrefix, fmt.Sprintf("max connections %d", maxTopicConnections), registerClient.topic).Msg(),
				)

				h.deleteClient(registerClient.topic, 0)

				break
			}

			if _, ok := h.cancels[registerClient.topic]; !ok {
				ch, cancel, err := h.broker.Subscribe(registerClient.topic)
				if err != nil {
					logger.Warn(registerClient.ctx, "subscribe", "topic", registerClient.topic, "error", err)
					registerClient.send(newError(UndefinedPrefix, "topic is gone", registerClient.topic).Msg())
					h.deleteClient(registerClient.topic, len(h.clients[registerClient.topic])-1)
					break
				}
				h.cancels[registerClient.topic] = cancel
				go h.pump(registerClient.topic, ch)
			}

			logger.Debug(registerClient.ctx, "register client", "topic", registerClient.topic)
		case unregisterClient := <-h.unregister:
			if cc, ok := h.clients[unregisterClient.topic]; ok {
				for i, c := range cc {
					if c.uniqueKey == unregisterClient.uniqueKey {
						logger.Debug(unregisterClient.ctx, "unregister client", "topic", unregisterClient.topic)
						h.deleteClient(unregisterClient.topic, i)
						break
					}
				}

				if len(h.clients[unregisterClient.topic]) == 0 {
					h.stopTopic(unregisterClient.topic)
				}
			}
		case b := <-h.broadcast:
			for _, c := range h.clients[b.topic] {
				c.send(b.body)
			}
		case done := <-h.shutdown:
			for topic := range h.clients {
				cc := h.clients[topic]
				for i := len(cc) - 1; i >= 0; i-- {
					h.deleteClient(topic, i)
				}
				h.stopTopic(topic)
			}
			close(done)
			return
		}
	}
}

// pump forwards one topic's subscription into the hub loop until the broker
// closes the channel or the hub stops running.
func (h *Hub) pump(topic string, ch <-chan broker.Record) {
	for rec := range ch {
		select {
		case h.broadcast <- recordBroadcast{topic: topic, body: recordFrame(topic, rec)}:
		case <-h.done:
			return
		}
	}
}

// Close drains every client through the Run goroutine, so it is only safe
// while Run is live.
func (h *Hub) Close(ctx context.Context) error {
	done := make(chan struct{})

	select {
	case h.shutdown <- done:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (h *Hub) stopTopic(topic string) {
	if cancel, ok := h.cancels[topic]; ok {
		cancel()
		delete(h.cancels, topic)
	}
	delete(h.clients, topic)
}

func (h *Hub) deleteClient(topic string, i int) {
	close(h.clients[topic][i].sendCh)
	h.clients[topic] = slices.Delete(h.clients[topic], i, i+1)
	activeClients.Dec()
}
