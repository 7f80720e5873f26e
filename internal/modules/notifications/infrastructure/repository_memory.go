package infrastructure

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"mediBookNotify/internal/modules/notifications/application/port"
	"mediBookNotify/internal/modules/notifications/domain"
)

// MemoryNotificationRepository is an in-memory store used in tests and for
// running the service without a database.
type MemoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications map[string]domain.Notification
	now           func() time.Time
}

func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{
		notifications: make(map[string]domain.Notification),
		now:           time.Now,
	}
}

func (r *MemoryNotificationRepository) Create(_ context.Context, input domain.CreateNotificationInput) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification := domain.Notification{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		Type:          input.Type,
		Title:         input.Title,
		Message:       input.Message,
		AppointmentID: input.AppointmentID,
		Read:          false,
		CreatedAt:     r.now().UTC(),
	}
	r.notifications[notification.ID] = notification
	return &notification, nil
}

func (r *MemoryNotificationRepository) FindByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	return r.filter(func(n domain.Notification) bool { return n.UserID == userID }), nil
}

func (r *MemoryNotificationRepository) FindUnreadByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	return r.filter(func(n domain.Notification) bool { return n.UserID == userID && !n.Read }), nil
}

func (r *MemoryNotificationRepository) filter(keep func(domain.Notification) bool) []domain.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := []domain.Notification{}
	for _, n := range r.notifications {
		if keep(n) {
			matched = append(matched, n)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched
}

func (r *MemoryNotificationRepository) MarkAsRead(_ context.Context, id, userID string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[id]
	if !ok || notification.UserID != userID {
		return nil, domain.ErrNotificationNotFound
	}
	notification.Read = true
	r.notifications[id] = notification
	return &notification, nil
}

func (r *MemoryNotificationRepository) MarkAllAsRead(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for id, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			r.notifications[id] = n
			count++
		}
	}
	return count, nil
}

func (r *MemoryNotificationRepository) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[id]
	if !ok || notification.UserID != userID {
		return domain.ErrNotificationNotFound
	}
	delete(r.notifications, id)
	return nil
}

var _ port.NotificationRepository = (*MemoryNotificationRepository)(nil)
