package port

import (
	"context"

	"mediBookNotify/internal/modules/notifications/domain"
)

// NotificationRepository is the persistence contract for notification records.
type NotificationRepository interface {
	Create(ctx context.Context, input domain.CreateNotificationInput) (*domain.Notification, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	FindUnreadByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID string) (*domain.Notification, error)
	MarkAllAsRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id, userID string) error
}

// Broadcaster delivers a payload to every live connection in a user's room,
// on this instance and on every other instance. Best effort: a room with no
// members simply misses the push.
type Broadcaster interface {
	Multicast(ctx context.Context, room, event string, payload any) error
}

// Backplane is the shared pub/sub transport that synchronizes multicasts
// across instances. Publish fans an envelope out to every subscriber,
// the publishing instance included.
type Backplane interface {
	Publish(ctx context.Context, env domain.Envelope) error
	Subscribe(ctx context.Context, apply func(domain.Envelope)) error
}

// TopicHandler processes raw payloads consumed from one broker topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, payload []byte) error
}
