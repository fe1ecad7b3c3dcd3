// Package ws pushes a session's store events to a connected surface.
package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"go-talent-session/internal/bus"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 32
)

// Message is the frame written to the socket.
type Message struct {
	Event string    `json:"event"`
	Data  any       `json:"data,omitempty"`
	At    time.Time `json:"at"`
}

type clientMessage struct {
	Action string `json:"action"`
}

// NewUpgrader accepts upgrades from origins allowed by allow. A nil allow
// accepts same-origin requests only.
func NewUpgrader(allow func(origin string) bool) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			if allow == nil {
				return origin == "http://"+r.Host || origin == "https://"+r.Host
			}
			return allow(origin)
		},
	}
}

// Client is one socket bound to one user's event stream.
type Client struct {
	UserID string
	conn   *websocket.Conn
	events <-chan bus.Event
	stop   func()
	send   chan Message
	done   chan struct{}
	logger *zap.Logger
}

// Serve subscribes conn to userID's events and blocks until the socket closes.
func Serve(conn *websocket.Conn, events *bus.Bus, userID string, initial []Message, logger *zap.Logger) {
	ch, stop := events.SubscribeUser("", userID, sendBuffer)
	c := &Client{
		UserID: userID,
		conn:   conn,
		events: ch,
		stop:   stop,
		send:   make(chan Message, sendBuffer),
		done:   make(chan struct{}),
		logger: logger.With(zap.String("user_id", userID)),
	}
	for _, m := range initial {
		c.send <- m
	}

	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.stop()
		close(c.done)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket error", zap.Error(err))
			}
			return
		}

		var msg clientMessage
		if json.Unmarshal(raw, &msg) != nil {
			continue
		}
		if msg.Action == "ping" {
			select {
			case c.send <- Message{Event: "pong", At: time.Now()}:
			default:
			}
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case evt := <-c.events:
			if !c.write(Message{Event: evt.Kind, Data: evt.Payload, At: evt.Timestamp}) {
				return
			}

		case msg := <-c.send:
			if !c.write(msg) {
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

func (c *Client) write(msg Message) bool {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		c.logger.Debug("websocket write failed", zap.Error(err))
		return false
	}
	return true
}
