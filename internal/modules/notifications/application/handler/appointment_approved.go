package handler

import (
	"context"
	"fmt"

	"mediBookNotify/internal/modules/notifications/application/port"
	"mediBookNotify/internal/modules/notifications/application/usecase"
	"mediBookNotify/internal/modules/notifications/domain"
)

// AppointmentApprovedHandler notifies the patient that the doctor accepted
// the appointment.
type AppointmentApprovedHandler struct {
	Dispatch *usecase.DispatchUseCase
}

func (h *AppointmentApprovedHandler) Topic() string { return domain.TopicAppointmentApproved }

func (h *AppointmentApprovedHandler) Handle(ctx context.Context, payload []byte) error {
	var event domain.AppointmentStatusEvent
	if err := decodeEvent(h.Topic(), payload, &event); err != nil {
		return err
	}

	formatted, err := domain.FormatDateTime(event.DateTime)
	if err != nil {
		return fmt.Errorf("%s: %w", h.Topic(), err)
	}

	message := fmt.Sprintf("Your doctor approved your appointment on %s.", formatted)
	if event.DoctorName != "" {
		message = fmt.Sprintf("Dr. %s approved your appointment on %s.", event.DoctorName, formatted)
	}

	return h.Dispatch.Execute(ctx, usecase.DispatchInput{
		Notification: domain.CreateNotificationInput{
			UserID:        event.PatientID,
			Type:          domain.NotificationAppointmentApproved,
			Title:         "Appointment Approved",
			Message:       message,
			AppointmentID: event.AppointmentID,
		},
		ExtraEvent: domain.EventAppointmentStatusUpdated,
		ExtraPayload: domain.AppointmentStatusUpdate{
			ID:     event.AppointmentID,
			Status: domain.AppointmentStatusApproved,
		},
	})
}

var _ port.TopicHandler = (*AppointmentApprovedHandler)(nil)
