package handler

import (
	"context"
	"fmt"

	"mediBookNotify/internal/modules/notifications/application/port"
	"mediBookNotify/internal/modules/notifications/application/usecase"
	"mediBookNotify/internal/modules/notifications/domain"
)

// AppointmentCreatedHandler notifies the doctor that a patient requested an
// appointment.
type AppointmentCreatedHandler struct {
	Dispatch *usecase.DispatchUseCase
}

func (h *AppointmentCreatedHandler) Topic() string { return domain.TopicAppointmentCreated }

func (h *AppointmentCreatedHandler) Handle(ctx context.Context, payload []byte) error {
	var event domain.AppointmentCreatedEvent
	if err := decodeEvent(h.Topic(), payload, &event); err != nil {
		return err
	}

	formatted, err := domain.FormatDateTime(event.DateTime)
	if err != nil {
		return fmt.Errorf("%s: %w", h.Topic(), err)
	}

	message := fmt.Sprintf("A patient has requested an appointment on %s.", formatted)
	if event.PatientName != "" {
		message = fmt.Sprintf("Patient %s has requested an appointment on %s.", event.PatientName, formatted)
	}

	return h.Dispatch.Execute(ctx, usecase.DispatchInput{
		Notification: domain.CreateNotificationInput{
			UserID:        event.DoctorID,
			Type:          domain.NotificationAppointmentCreated,
			Title:         "New Appointment Request",
			Message:       message,
			AppointmentID: event.AppointmentID,
		},
		ExtraEvent: domain.EventAppointmentNew,
		ExtraPayload: domain.AppointmentSnapshot{
			ID:        event.AppointmentID,
			PatientID: event.PatientID,
			DoctorID:  event.DoctorID,
			DateTime:  event.DateTime,
			Status:    domain.AppointmentStatusPending,
		},
	})
}

var _ port.TopicHandler = (*AppointmentCreatedHandler)(nil)
