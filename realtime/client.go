package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
	sendBufferSize = 256
)

// Dispatcher receives relay events parsed off a session's socket.
type Dispatcher interface {
	// DispatchMessage handles a sendMessage event.
	DispatchMessage(ctx context.Context, senderID, receiverID, content string) error
	// DispatchProfileUpdate handles a profileUpdate event.
	DispatchProfileUpdate(ctx context.Context, userID string, data map[string]interface{}) error
}

// Client is one connected websocket session.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	userID     string
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewClient wraps an upgraded connection.
func NewClient(hub *Hub, conn *websocket.Conn, dispatcher Dispatcher, logger *zap.Logger) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, sendBufferSize),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

type sendMessageData struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Content  string `json:"content"`
}

// ReadPump consumes events from the socket until it closes.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("websocket closed unexpectedly", zap.Error(err))
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.logger.Warn("malformed relay event", zap.Error(err))
			continue
		}
		c.handleEvent(env)
	}
}

func (c *Client) handleEvent(env Envelope) {
	ctx := context.Background()

	switch env.Event {
	case "join":
		var userID string
		if err := json.Unmarshal(env.Data, &userID); err != nil || userID == "" {
			c.logger.Warn("join event without a user id")
			return
		}
		c.hub.Join(userID, c)

	case "sendMessage":
		var data sendMessageData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			c.logger.Warn("malformed sendMessage event", zap.Error(err))
			return
		}
		if err := c.dispatcher.DispatchMessage(ctx, data.Sender, data.Receiver, data.Content); err != nil {
			c.logger.Error("failed to relay message", zap.Error(err))
		}

	case "profileUpdate":
		var data map[string]interface{}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			c.logger.Warn("malformed profileUpdate event", zap.Error(err))
			return
		}
		if err := c.dispatcher.DispatchProfileUpdate(ctx, c.userID, data); err != nil {
			c.logger.Error("failed to relay profile update", zap.Error(err))
		}

	default:
		c.logger.Debug("ignoring unknown relay event", zap.String("event", env.Event))
	}
}

// WritePump flushes outgoing events and keeps the connection alive with
// pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
