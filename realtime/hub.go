package realtime

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Envelope is the wire format for every relay event, in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Outgoing event names.
const (
	EventReceiveMessage  = "receiveMessage"
	EventProfileUpdated  = "profileUpdated"
	EventBookingReminder = "bookingReminder"
)

// Hub tracks live sessions keyed by personal channel (the session's own user
// ID). Delivery is fire-and-forget: an emission to a channel with no
// registered session is dropped, and a session whose buffer is full is
// disconnected rather than blocked on.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]bool
	logger *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]bool),
		logger: logger,
	}
}

// Join registers a client's interest in the personal channel userID.
func (h *Hub) Join(userID string, c *Client) {
	if userID == "" || c == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	// A session that re-joins moves to the new channel.
	if c.userID != "" && c.userID != userID {
		h.leaveLocked(c)
	}
	c.userID = userID
	room, ok := h.rooms[userID]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[userID] = room
	}
	room[c] = true

	if h.logger != nil {
		h.logger.Debug("session joined personal channel", zap.String("userID", userID))
	}
}

// Leave removes the client from its channel, if any.
func (h *Hub) Leave(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c)
}

func (h *Hub) leaveLocked(c *Client) {
	room, ok := h.rooms[c.userID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, c.userID)
	}
}

// EmitToUser delivers an event to every session on the user's personal
// channel. Sessions that cannot keep up are skipped.
func (h *Hub) EmitToUser(userID string, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to marshal event payload", zap.String("event", event), zap.Error(err))
		}
		return
	}
	msg, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[userID]))
	for c := range h.rooms[userID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- msg:
		default:
			if h.logger != nil {
				h.logger.Warn("dropping event for slow session", zap.String("userID", userID), zap.String("event", event))
			}
		}
	}
}

// EmitToUsers delivers an event to each listed user's personal channel.
func (h *Hub) EmitToUsers(userIDs []string, event string, payload interface{}) {
	for _, id := range userIDs {
		h.EmitToUser(id, event, payload)
	}
}

// SessionCount reports the number of sessions on a personal channel.
func (h *Hub) SessionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[userID])
}
