package handler

import (
	"context"
	"fmt"

	"mediBookNotify/internal/modules/notifications/application/port"
	"mediBookNotify/internal/modules/notifications/application/usecase"
	"mediBookNotify/internal/modules/notifications/domain"
)

// AppointmentCancelledHandler notifies the patient that the appointment was
// called off.
type AppointmentCancelledHandler struct {
	Dispatch *usecase.DispatchUseCase
}

func (h *AppointmentCancelledHandler) Topic() string { return domain.TopicAppointmentCancelled }

func (h *AppointmentCancelledHandler) Handle(ctx context.Context, payload []byte) error {
	var event domain.AppointmentStatusEvent
	if err := decodeEvent(h.Topic(), payload, &event); err != nil {
		return err
	}

	formatted, err := domain.FormatDateTime(event.DateTime)
	if err != nil {
		return fmt.Errorf("%s: %w", h.Topic(), err)
	}

	return h.Dispatch.Execute(ctx, usecase.DispatchInput{
		Notification: domain.CreateNotificationInput{
			UserID:        event.PatientID,
			Type:          domain.NotificationAppointmentCancelled,
			Title:         "Appointment Cancelled",
			Message:       fmt.Sprintf("Your appointment on %s has been cancelled.", formatted),
			AppointmentID: event.AppointmentID,
		},
		ExtraEvent: domain.EventAppointmentStatusUpdated,
		ExtraPayload: domain.AppointmentStatusUpdate{
			ID:     event.AppointmentID,
			Status: domain.AppointmentStatusCancelled,
		},
	})
}

var _ port.TopicHandler = (*AppointmentCancelledHandler)(nil)
