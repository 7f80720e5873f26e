package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mediBookNotify/internal/modules/notifications/application/port"
	"mediBookNotify/internal/modules/notifications/domain"
)

// Hub owns this instance's room index: which connections are bound to which
// user. Multicasts never touch the index directly; they go through the
// backplane so members held by other instances receive them too.
type Hub struct {
	backplane port.Backplane

	mu       sync.RWMutex
	rooms    map[string]map[*Client]struct{}
	bindings map[*Client]string
}

func NewHub(backplane port.Backplane) *Hub {
	return &Hub{
		backplane: backplane,
		rooms:     make(map[string]map[*Client]struct{}),
		bindings:  make(map[*Client]string),
	}
}

// Start subscribes the hub to the backplane. Must be called once before any
// multicast is expected to reach local connections.
func (h *Hub) Start(ctx context.Context) error {
	if err := h.backplane.Subscribe(ctx, h.deliver); err != nil {
		return fmt.Errorf("backplane subscribe: %w", err)
	}
	return nil
}

// JoinRoom binds a connection to a user's room. A connection already bound
// elsewhere is moved: a later join replaces the previous binding.
func (h *Hub) JoinRoom(c *Client, userID string) {
	if c == nil || userID == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if prev, ok := h.bindings[c]; ok {
		h.removeFromRoomLocked(c, prev)
	}
	if h.rooms[userID] == nil {
		h.rooms[userID] = make(map[*Client]struct{})
	}
	h.rooms[userID][c] = struct{}{}
	h.bindings[c] = userID
	slog.Info("ws client joined room", slog.String("connectionId", c.id), slog.String("userId", userID))
}

// LeaveRoom removes the connection's binding, if any.
func (h *Hub) LeaveRoom(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room, ok := h.bindings[c]; ok {
		h.removeFromRoomLocked(c, room)
		delete(h.bindings, c)
	}
}

func (h *Hub) removeFromRoomLocked(c *Client, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// RoomSize reports how many local connections are bound to a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// detachClient unbinds and closes a connection. Called on read/write failure
// and on slow consumers.
func (h *Hub) detachClient(c *Client) {
	if c == nil {
		return
	}
	h.LeaveRoom(c)
	c.close()
	slog.Info("ws client detached", slog.String("connectionId", c.id))
}

// Multicast publishes a payload for every connection in the user's room,
// cluster-wide. Fire and forget: delivery to individual connections is not
// acknowledged, and a user with no live connection misses the push.
func (h *Hub) Multicast(ctx context.Context, room, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal multicast payload: %w", err)
	}
	env := domain.Envelope{Room: room, Event: event, Data: data}
	if err := h.backplane.Publish(ctx, env); err != nil {
		return fmt.Errorf("backplane publish: %w", err)
	}
	return nil
}

// deliver applies a backplane envelope to locally held room members. The
// publishing instance receives its own envelopes here as well; a room with
// no local members is a no-op.
func (h *Hub) deliver(env domain.Envelope) {
	frame, err := json.Marshal(domain.PushMessage{
		Event:     env.Event,
		Data:      env.Data,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		slog.Error("push frame marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	members := make([]*Client, 0, len(h.rooms[env.Room]))
	for c := range h.rooms[env.Room] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		select {
		case c.send <- frame:
		default:
			slog.Warn("ws send buffer full", slog.String("connectionId", c.id), slog.String("room", env.Room))
			go h.detachClient(c)
		}
	}
}

var _ port.Broadcaster = (*Hub)(nil)
