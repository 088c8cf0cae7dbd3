// Package gateway implements the realtime notification fan-out. Frames
// carry only an event name; clients refetch whatever the event refers to.
// Delivery is fire-and-forget with no replay for reconnecting clients.
package gateway

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

type frame struct {
	Event string `json:"event"`
}

func encodeFrame(event string) []byte {
	b, _ := json.Marshal(frame{Event: event})
	return b
}

// Hub tracks every open connection plus a per-user index populated by the
// register action. All maps are guarded by mu; sends go through each
// connection's buffered channel so a slow client never blocks the hub.
type Hub struct {
	mu    sync.RWMutex
	conns map[*Conn]struct{}
	users map[string]map[*Conn]struct{}

	// publish is set when a Redis bridge is attached; nil means
	// single-instance operation with local-only fan-out.
	publish func(scope, userID, event string)
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*Conn]struct{}),
		users: make(map[string]map[*Conn]struct{}),
	}
}

func (h *Hub) add(c *Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	if c.userID != "" {
		if set, ok := h.users[c.userID]; ok {
			delete(set, c)
			if len(set) == 0 {
				delete(h.users, c.userID)
			}
		}
	}
	h.mu.Unlock()
	c.close()
}

// register subscribes the connection under its authenticated user id. The
// id comes from the verified token, never from the client payload.
func (h *Hub) register(c *Conn) {
	h.mu.Lock()
	if h.users[c.userID] == nil {
		h.users[c.userID] = make(map[*Conn]struct{})
	}
	h.users[c.userID][c] = struct{}{}
	h.mu.Unlock()
	log.Debug().Str("user_id", c.userID).Msg("ws connection registered")
}

// broadcastGlobal delivers an event to every local connection.
func (h *Hub) broadcastGlobal(event string) {
	msg := encodeFrame(event)
	h.mu.RLock()
	for c := range h.conns {
		c.trySend(msg)
	}
	h.mu.RUnlock()
}

// broadcastToUser delivers an event to the local connections of one user.
func (h *Hub) broadcastToUser(userID, event string) {
	msg := encodeFrame(event)
	h.mu.RLock()
	for c := range h.users[userID] {
		c.trySend(msg)
	}
	h.mu.RUnlock()
}

// EmitGlobal fans an event out to everyone, across instances when a
// bridge is attached.
func (h *Hub) EmitGlobal(event string) {
	h.broadcastGlobal(event)
	if h.publish != nil {
		h.publish(scopeGlobal, "", event)
	}
}

// EmitToUser fans an event out to all of a user's connections.
func (h *Hub) EmitToUser(userID, event string) {
	h.broadcastToUser(userID, event)
	if h.publish != nil {
		h.publish(scopeUser, userID, event)
	}
}

// ConnectionCount reports the number of open connections, for tests and
// introspection.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
