package gateway

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Jim-flores/odontosys-bk/internal/middleware"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers cannot set custom WS headers, so origin is not restricted
	// here; auth happens via the token check below.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Conn is one upgraded client connection. userID is fixed at upgrade time
// from the verified token.
type Conn struct {
	ws     *websocket.Conn
	send   chan []byte
	userID string
	once   sync.Once
}

func (c *Conn) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// trySend drops the frame when the client's buffer is full instead of
// blocking the hub.
func (c *Conn) trySend(msg []byte) {
	select {
	case c.send <- msg:
	default:
		log.Warn().Str("user_id", c.userID).Msg("ws send buffer full, dropping frame")
	}
}

// clientMessage is the action envelope clients send over the socket.
type clientMessage struct {
	Action string `json:"action"`
	UserID string `json:"userId,omitempty"`
	Event  string `json:"event,omitempty"`
}

// tokenFromRequest accepts the JWT either as a ?token= query parameter
// (browsers cannot set WS headers) or a standard Bearer header.
func tokenFromRequest(c *gin.Context) string {
	if t := c.Query("token"); t != "" {
		return t
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// Serve upgrades the request to a WebSocket after validating the token.
// Unauthenticated upgrade attempts are rejected before the handshake.
func Serve(hub *Hub, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, err := middleware.ParseToken(jwtSecret, token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn().Err(err).Msg("ws upgrade failed")
			return
		}

		conn := &Conn{
			ws:     ws,
			send:   make(chan []byte, sendBuffer),
			userID: claims.UserID,
		}
		hub.add(conn)

		go conn.writePump()
		conn.readPump(hub)
	}
}

func (c *Conn) readPump(hub *Hub) {
	defer func() {
		hub.remove(c)
		_ = c.ws.Close()
	}()
	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		switch msg.Action {
		case "register":
			// Any user id in the payload is ignored; the connection is
			// subscribed under the token's identity.
			hub.register(c)
		case "emit:global":
			if msg.Event != "" {
				hub.EmitGlobal(msg.Event)
			}
		case "emit:user":
			if msg.Event != "" && msg.UserID != "" {
				hub.EmitToUser(msg.UserID, msg.Event)
			}
		}
	}
}

func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
