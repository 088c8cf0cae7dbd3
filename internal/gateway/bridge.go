package gateway

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	bridgeChannel = "notifications:broadcast"

	scopeGlobal = "global"
	scopeUser   = "user"
)

// bridgeMessage is the payload exchanged between instances over Redis
// pub/sub. InstanceID lets each instance skip its own publications, which
// it has already applied locally.
type bridgeMessage struct {
	InstanceID string `json:"instanceId"`
	Scope      string `json:"scope"`
	UserID     string `json:"userId,omitempty"`
	Event      string `json:"event"`
}

// Bridge re-publishes hub broadcasts through Redis so that every running
// instance fans out the same events to its local connections.
type Bridge struct {
	rdb        *redis.Client
	hub        *Hub
	instanceID string
}

func NewBridge(rdb *redis.Client, hub *Hub) *Bridge {
	b := &Bridge{
		rdb:        rdb,
		hub:        hub,
		instanceID: uuid.NewString(),
	}
	hub.publish = b.publish
	return b
}

func (b *Bridge) publish(scope, userID, event string) {
	payload, _ := json.Marshal(bridgeMessage{
		InstanceID: b.instanceID,
		Scope:      scope,
		UserID:     userID,
		Event:      event,
	})
	if err := b.rdb.Publish(context.Background(), bridgeChannel, payload).Err(); err != nil {
		log.Warn().Err(err).Msg("bridge publish failed")
	}
}

// Run subscribes to the broadcast channel and applies remote messages to
// the local hub until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) {
	pubsub := b.rdb.Subscribe(ctx, bridgeChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	log.Info().Str("channel", bridgeChannel).Msg("notification bridge started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("notification bridge stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var m bridgeMessage
			if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
				log.Warn().Err(err).Msg("bridge message malformed")
				continue
			}
			if m.InstanceID == b.instanceID {
				continue
			}
			switch m.Scope {
			case scopeGlobal:
				b.hub.broadcastGlobal(m.Event)
			case scopeUser:
				b.hub.broadcastToUser(m.UserID, m.Event)
			}
		}
	}
}
