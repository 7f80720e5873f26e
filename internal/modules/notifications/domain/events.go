package domain

import (
	"errors"
	"fmt"
	"time"
)

// Topics published by the appointments service. Each carries a JSON payload.
const (
	TopicAppointmentCreated   = "appointment.created"
	TopicAppointmentApproved  = "appointment.approved"
	TopicAppointmentRejected  = "appointment.rejected"
	TopicAppointmentCancelled = "appointment.cancelled"
)

// AppointmentCreatedEvent announces a new appointment request made by a patient.
type AppointmentCreatedEvent struct {
	AppointmentID string `json:"appointmentId"`
	DoctorID      string `json:"doctorId"`
	PatientID     string `json:"patientId"`
	DateTime      string `json:"dateTime"`
	PatientName   string `json:"patientName,omitempty"`
}

func (e *AppointmentCreatedEvent) Validate() error {
	if e.AppointmentID == "" {
		return errors.New("missing appointmentId")
	}
	if e.DoctorID == "" {
		return errors.New("missing doctorId")
	}
	if e.PatientID == "" {
		return errors.New("missing patientId")
	}
	return validateDateTime(e.DateTime)
}

// AppointmentStatusEvent announces an approval, rejection or cancellation of an
// existing appointment. DoctorName is optional and absent on cancellations.
type AppointmentStatusEvent struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	DateTime      string `json:"dateTime"`
	DoctorName    string `json:"doctorName,omitempty"`
}

func (e *AppointmentStatusEvent) Validate() error {
	if e.AppointmentID == "" {
		return errors.New("missing appointmentId")
	}
	if e.PatientID == "" {
		return errors.New("missing patientId")
	}
	return validateDateTime(e.DateTime)
}

func validateDateTime(raw string) error {
	if raw == "" {
		return errors.New("missing dateTime")
	}
	if _, err := time.Parse(time.RFC3339, raw); err != nil {
		return fmt.Errorf("invalid dateTime %q: %w", raw, err)
	}
	return nil
}
