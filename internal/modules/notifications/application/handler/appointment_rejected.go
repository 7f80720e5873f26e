package handler

import (
	"context"
	"fmt"

	"mediBookNotify/internal/modules/notifications/application/port"
	"mediBookNotify/internal/modules/notifications/application/usecase"
	"mediBookNotify/internal/modules/notifications/domain"
)

// AppointmentRejectedHandler notifies the patient that the doctor declined
// the appointment.
type AppointmentRejectedHandler struct {
	Dispatch *usecase.DispatchUseCase
}

func (h *AppointmentRejectedHandler) Topic() string { return domain.TopicAppointmentRejected }

func (h *AppointmentRejectedHandler) Handle(ctx context.Context, payload []byte) error {
	var event domain.AppointmentStatusEvent
	if err := decodeEvent(h.Topic(), payload, &event); err != nil {
		return err
	}

	formatted, err := domain.FormatDateTime(event.DateTime)
	if err != nil {
		return fmt.Errorf("%s: %w", h.Topic(), err)
	}

	message := fmt.Sprintf("Your doctor rejected your appointment on %s.", formatted)
	if event.DoctorName != "" {
		message = fmt.Sprintf("Dr. %s rejected your appointment on %s.", event.DoctorName, formatted)
	}

	return h.Dispatch.Execute(ctx, usecase.DispatchInput{
		Notification: domain.CreateNotificationInput{
			UserID:        event.PatientID,
			Type:          domain.NotificationAppointmentRejected,
			Title:         "Appointment Rejected",
			Message:       message,
			AppointmentID: event.AppointmentID,
		},
		ExtraEvent: domain.EventAppointmentStatusUpdated,
		ExtraPayload: domain.AppointmentStatusUpdate{
			ID:     event.AppointmentID,
			Status: domain.AppointmentStatusRejected,
		},
	})
}

var _ port.TopicHandler = (*AppointmentRejectedHandler)(nil)
