package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestConn(userID string) *Conn {
	return &Conn{send: make(chan []byte, 4), userID: userID}
}

func receivedEvents(c *Conn) []string {
	var events []string
	for {
		select {
		case msg := <-c.send:
			var f frame
			if err := json.Unmarshal(msg, &f); err == nil {
				events = append(events, f.Event)
			}
		default:
			return events
		}
	}
}

func TestEmitGlobalReachesEveryConnection(t *testing.T) {
	hub := NewHub()
	a := newTestConn("user-a")
	b := newTestConn("user-b")
	hub.add(a)
	hub.add(b)

	hub.EmitGlobal("clients:changed")

	assert.Equal(t, []string{"clients:changed"}, receivedEvents(a))
	assert.Equal(t, []string{"clients:changed"}, receivedEvents(b))
}

func TestEmitToUserOnlyReachesRegisteredConnections(t *testing.T) {
	hub := NewHub()
	target1 := newTestConn("user-a")
	target2 := newTestConn("user-a")
	other := newTestConn("user-b")
	unregistered := newTestConn("user-a")
	for _, c := range []*Conn{target1, target2, other, unregistered} {
		hub.add(c)
	}
	hub.register(target1)
	hub.register(target2)
	hub.register(other)

	hub.EmitToUser("user-a", "notification:new")

	assert.Equal(t, []string{"notification:new"}, receivedEvents(target1))
	assert.Equal(t, []string{"notification:new"}, receivedEvents(target2))
	assert.Empty(t, receivedEvents(other))
	assert.Empty(t, receivedEvents(unregistered), "register is explicit, a connection is not subscribed by auth alone")
}

func TestRemoveDropsUserSubscription(t *testing.T) {
	hub := NewHub()
	c := newTestConn("user-a")
	hub.add(c)
	hub.register(c)
	assert.Equal(t, 1, hub.ConnectionCount())

	hub.remove(c)
	assert.Equal(t, 0, hub.ConnectionCount())
	// Delivery to a departed user must not panic or block.
	hub.EmitToUser("user-a", "noop")
}

func TestSlowClientDoesNotBlockTheHub(t *testing.T) {
	hub := NewHub()
	slow := &Conn{send: make(chan []byte, 1), userID: "user-a"}
	hub.add(slow)

	// Second frame overflows the buffer and must be dropped, not block.
	hub.EmitGlobal("first")
	hub.EmitGlobal("second")

	assert.Equal(t, []string{"first"}, receivedEvents(slow))
}
