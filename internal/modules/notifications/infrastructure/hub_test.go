package infrastructure

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"mediBookNotify/internal/modules/notifications/domain"
)

// fakeBackplane fans envelopes out to every subscribed hub synchronously,
// standing in for the shared pub/sub broker.
type fakeBackplane struct {
	mu   sync.Mutex
	subs []func(domain.Envelope)
}

func (b *fakeBackplane) Publish(_ context.Context, env domain.Envelope) error {
	b.mu.Lock()
	subs := append([]func(domain.Envelope){}, b.subs...)
	b.mu.Unlock()
	for _, apply := range subs {
		apply(env)
	}
	return nil
}

func (b *fakeBackplane) Subscribe(_ context.Context, apply func(domain.Envelope)) error {
	b.mu.Lock()
	b.subs = append(b.subs, apply)
	b.mu.Unlock()
	return nil
}

func newStartedHub(t *testing.T, bp *fakeBackplane) *Hub {
	t.Helper()
	hub := NewHub(bp)
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("hub start: %v", err)
	}
	return hub
}

func receiveFrame(t *testing.T, c *Client) domain.PushMessage {
	t.Helper()
	select {
	case raw := <-c.send:
		var frame domain.PushMessage
		if err := json.Unmarshal(raw, &frame); err != nil {
			t.Fatalf("decode frame: %v", err)
		}
		return frame
	default:
		t.Fatal("expected a frame, got none")
	}
	return domain.PushMessage{}
}

func expectNoFrame(t *testing.T, c *Client) {
	t.Helper()
	select {
	case raw := <-c.send:
		t.Fatalf("expected no frame, got %s", raw)
	default:
	}
}

func TestHubMulticastReachesOnlyTargetRoom(t *testing.T) {
	bp := &fakeBackplane{}
	hub := newStartedHub(t, bp)

	bound := NewClient(hub, nil, 8)
	other := NewClient(hub, nil, 8)
	unbound := NewClient(hub, nil, 8)
	hub.JoinRoom(bound, "u1")
	hub.JoinRoom(other, "u2")

	if err := hub.Multicast(context.Background(), "u1", domain.EventNotification, map[string]string{"title": "hi"}); err != nil {
		t.Fatalf("multicast: %v", err)
	}

	frame := receiveFrame(t, bound)
	if frame.Event != domain.EventNotification {
		t.Fatalf("unexpected event: %s", frame.Event)
	}
	var data map[string]string
	if err := json.Unmarshal(frame.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data["title"] != "hi" {
		t.Fatalf("unexpected payload: %#v", data)
	}

	expectNoFrame(t, other)
	expectNoFrame(t, unbound)
}

func TestHubMulticastCrossesInstances(t *testing.T) {
	bp := &fakeBackplane{}
	hubA := newStartedHub(t, bp)
	hubB := newStartedHub(t, bp)

	remote := NewClient(hubB, nil, 8)
	hubB.JoinRoom(remote, "u1")

	if err := hubA.Multicast(context.Background(), "u1", domain.EventAppointmentStatusUpdated, domain.AppointmentStatusUpdate{ID: "appt-1", Status: domain.AppointmentStatusApproved}); err != nil {
		t.Fatalf("multicast: %v", err)
	}

	frame := receiveFrame(t, remote)
	if frame.Event != domain.EventAppointmentStatusUpdated {
		t.Fatalf("unexpected event: %s", frame.Event)
	}
	var update domain.AppointmentStatusUpdate
	if err := json.Unmarshal(frame.Data, &update); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if update.ID != "appt-1" || update.Status != domain.AppointmentStatusApproved {
		t.Fatalf("unexpected update: %#v", update)
	}
}

func TestHubMulticastToEmptyRoomIsNoOp(t *testing.T) {
	bp := &fakeBackplane{}
	hub := newStartedHub(t, bp)

	if err := hub.Multicast(context.Background(), "nobody-home", domain.EventNotification, map[string]string{"title": "hi"}); err != nil {
		t.Fatalf("multicast: %v", err)
	}
}

func TestHubRejoinReplacesBinding(t *testing.T) {
	bp := &fakeBackplane{}
	hub := newStartedHub(t, bp)

	c := NewClient(hub, nil, 8)
	hub.JoinRoom(c, "u1")
	hub.JoinRoom(c, "u2")

	if err := hub.Multicast(context.Background(), "u1", domain.EventNotification, "x"); err != nil {
		t.Fatalf("multicast: %v", err)
	}
	expectNoFrame(t, c)

	if err := hub.Multicast(context.Background(), "u2", domain.EventNotification, "x"); err != nil {
		t.Fatalf("multicast: %v", err)
	}
	receiveFrame(t, c)
}

func TestHubMultiDeviceRoom(t *testing.T) {
	bp := &fakeBackplane{}
	hub := newStartedHub(t, bp)

	phone := NewClient(hub, nil, 8)
	laptop := NewClient(hub, nil, 8)
	hub.JoinRoom(phone, "u1")
	hub.JoinRoom(laptop, "u1")

	if err := hub.Multicast(context.Background(), "u1", domain.EventNotification, "x"); err != nil {
		t.Fatalf("multicast: %v", err)
	}
	receiveFrame(t, phone)
	receiveFrame(t, laptop)
}

func TestHubDetachRemovesBinding(t *testing.T) {
	bp := &fakeBackplane{}
	hub := newStartedHub(t, bp)

	c := NewClient(hub, nil, 8)
	hub.JoinRoom(c, "u1")
	hub.detachClient(c)

	if err := hub.Multicast(context.Background(), "u1", domain.EventNotification, "x"); err != nil {
		t.Fatalf("multicast: %v", err)
	}

	// The send channel is closed on detach; nothing must have been written first.
	if raw, ok := <-c.send; ok {
		t.Fatalf("expected closed channel, got frame %s", raw)
	}
}
