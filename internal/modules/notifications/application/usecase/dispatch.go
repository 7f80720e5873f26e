package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mediBookNotify/internal/modules/notifications/application/port"
	"mediBookNotify/internal/modules/notifications/domain"
)

// DispatchInput carries everything a topic handler derives from one event:
// the notification to persist and the extra dashboard payload to push.
type DispatchInput struct {
	Notification domain.CreateNotificationInput
	ExtraEvent   string
	ExtraPayload any
}

// DispatchUseCase persists a notification and pushes it to the recipient's
// room. Persistence failure skips the push entirely; push failures are logged
// and swallowed since delivery is best effort.
type DispatchUseCase struct {
	repository  port.NotificationRepository
	broadcaster port.Broadcaster
}

func NewDispatchUseCase(repository port.NotificationRepository, broadcaster port.Broadcaster) *DispatchUseCase {
	return &DispatchUseCase{repository: repository, broadcaster: broadcaster}
}

func (uc *DispatchUseCase) Execute(ctx context.Context, input DispatchInput) error {
	notification, err := uc.repository.Create(ctx, input.Notification)
	if err != nil {
		return fmt.Errorf("persist notification: %w", err)
	}

	room := notification.UserID
	if err := uc.broadcaster.Multicast(ctx, room, domain.EventNotification, notification); err != nil {
		slog.Warn("notification push failed", slog.String("userId", room), slog.Any("error", err))
	}
	if err := uc.broadcaster.Multicast(ctx, room, input.ExtraEvent, input.ExtraPayload); err != nil {
		slog.Warn("dashboard push failed", slog.String("userId", room), slog.String("event", input.ExtraEvent), slog.Any("error", err))
	}
	return nil
}
