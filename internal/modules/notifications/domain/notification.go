package domain

import (
	"errors"
	"time"
)

// ErrNotificationNotFound signals that a notification does not exist or is not
// owned by the requesting user. It is distinct from transport or storage failures.
var ErrNotificationNotFound = errors.New("notification not found")

type NotificationType string

const (
	NotificationAppointmentCreated   NotificationType = "APPOINTMENT_CREATED"
	NotificationAppointmentApproved  NotificationType = "APPOINTMENT_APPROVED"
	NotificationAppointmentRejected  NotificationType = "APPOINTMENT_REJECTED"
	NotificationAppointmentCancelled NotificationType = "APPOINTMENT_CANCELLED"
)

// Notification is the persisted per-user record derived from a domain event.
// Immutable after creation except for the Read flag.
type Notification struct {
	ID            string           `json:"id" bson:"_id,omitempty"`
	UserID        string           `json:"userId" bson:"userId"`
	Type          NotificationType `json:"type" bson:"type"`
	Title         string           `json:"title" bson:"title"`
	Message       string           `json:"message" bson:"message"`
	AppointmentID string           `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	Read          bool             `json:"read" bson:"read"`
	CreatedAt     time.Time        `json:"createdAt" bson:"createdAt"`
}

// CreateNotificationInput carries the caller-supplied fields of a new notification.
type CreateNotificationInput struct {
	UserID        string
	Type          NotificationType
	Title         string
	Message       string
	AppointmentID string
}
