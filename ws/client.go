package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/porebric/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	hub       *Hub
	conn      *websocket.Conn
	ctx       context.Context
	sendCh    chan []byte
	uniqueKey uuid.UUID
	topic     string
}

func newClient(ctx context.Context, hub *Hub, sendCh chan []byte, conn *websocket.Conn, topic string) *client {
	return &client{
		hub:       hub,
		conn:      conn,
		sendCh:    sendCh,
		ctx:       ctx,
		uniqueKey: uuid.New(),
		topic:     topic,
	}
}

// read keeps the connection's read side alive for pongs and close frames. The
// stream is one-way: application messages from the client get an error frame.
func (c *client) read() {
	defer func() {
		if err := c.conn.Close(); err != nil {
			logger.Error(c.ctx, err, "failed to close connection", "topic", c.topic)
		}
		c.hub.unregister <- c
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Error(c.ctx, err, "new read deadline", "topic", c.topic)
		return
	}

	c.conn.SetPongHandler(func(string) error {
		if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Error(c.ctx, err, "new read deadline", "topic", c.topic)
			return err
		}
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn(c.ctx, "read message", "topic", c.topic, "error", err)
			}
			break
		}

		logger.Debug(c.ctx, "unexpected client message", "topic", c.topic, "body", string(message))
		c.send(newError(InvalidMsgPrefix, "stream is read-only", c.topic).Msg())
	}
}

func (c *client) write() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.sendCh:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn(c.ctx, "write", "msg", string(message))
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Error(c.ctx, err, "ping message", "topic", c.topic)
				return
			}
		}
	}
}

func (c *client) send(body []byte) {
	select {
	case c.sendCh <- body:
	default:
	}
}
