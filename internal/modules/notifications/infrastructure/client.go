package infrastructure

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Command is the inbound control message a client may send. The only command
// in the protocol is "join", which binds the connection to the user's room.
type Command struct {
	Action string `json:"action"`
	UserID string `json:"userId"`
}

const (
	commandJoin = "join"

	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	readLimit  = 1 << 16
)

// Client wraps one websocket connection. It starts unbound; the room binding
// is created by a join command and removed when the connection drops.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	id        string
	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, buf int) *Client {
	if buf <= 0 {
		buf = 16
	}
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, buf),
		id:   uuid.NewString(),
	}
}

// ID returns the connection identifier.
func (c *Client) ID() string { return c.id }

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

func (c *Client) WritePump() {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("websocket write error", slog.String("connectionId", c.id), slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				slog.Warn("websocket ping error", slog.String("connectionId", c.id), slog.Any("error", err))
				return
			}
		}
	}
}

func (c *Client) ReadPump() {
	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	defer c.hub.detachClient(c)
	for {
		var cmd Command
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read error", slog.String("connectionId", c.id), slog.Any("error", err))
			}
			return
		}
		c.processCommand(cmd)
	}
}

func (c *Client) processCommand(cmd Command) {
	switch strings.TrimSpace(strings.ToLower(cmd.Action)) {
	case commandJoin:
		userID := strings.TrimSpace(cmd.UserID)
		if userID == "" {
			slog.Warn("join command missing userId", slog.String("connectionId", c.id))
			return
		}
		c.hub.JoinRoom(c, userID)
	default:
		slog.Debug("unknown ws command", slog.String("connectionId", c.id), slog.String("action", cmd.Action))
	}
}
