package usecase

import (
	"context"

	"mediBookNotify/internal/modules/notifications/application/port"
	"mediBookNotify/internal/modules/notifications/domain"
)

// NotificationUseCase exposes the read/update operations behind the REST surface.
type NotificationUseCase struct {
	repository port.NotificationRepository
}

func NewNotificationUseCase(repository port.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repository: repository}
}

func (uc *NotificationUseCase) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return uc.repository.FindByUser(ctx, userID)
}

func (uc *NotificationUseCase) ListUnreadByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return uc.repository.FindUnreadByUser(ctx, userID)
}

func (uc *NotificationUseCase) MarkAsRead(ctx context.Context, id, userID string) (*domain.Notification, error) {
	return uc.repository.MarkAsRead(ctx, id, userID)
}

func (uc *NotificationUseCase) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	return uc.repository.MarkAllAsRead(ctx, userID)
}

func (uc *NotificationUseCase) Delete(ctx context.Context, id, userID string) error {
	return uc.repository.Delete(ctx, id, userID)
}
