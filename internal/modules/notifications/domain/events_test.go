package domain

import "testing"

func TestAppointmentCreatedEventValidate(t *testing.T) {
	t.Parallel()

	valid := AppointmentCreatedEvent{
		AppointmentID: "appt-1",
		DoctorID:      "doc-1",
		PatientID:     "pat-1",
		DateTime:      "2025-12-02T12:00:00Z",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(e *AppointmentCreatedEvent)
	}{
		{name: "missing appointmentId", mutate: func(e *AppointmentCreatedEvent) { e.AppointmentID = "" }},
		{name: "missing doctorId", mutate: func(e *AppointmentCreatedEvent) { e.DoctorID = "" }},
		{name: "missing patientId", mutate: func(e *AppointmentCreatedEvent) { e.PatientID = "" }},
		{name: "missing dateTime", mutate: func(e *AppointmentCreatedEvent) { e.DateTime = "" }},
		{name: "bad dateTime", mutate: func(e *AppointmentCreatedEvent) { e.DateTime = "02/12/2025" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			event := valid
			tt.mutate(&event)
			if err := event.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestAppointmentStatusEventValidate(t *testing.T) {
	t.Parallel()

	valid := AppointmentStatusEvent{
		AppointmentID: "appt-1",
		PatientID:     "pat-1",
		DateTime:      "2025-12-02T12:00:00Z",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Doctor name is optional on every status event.
	named := valid
	named.DoctorName = "House"
	if err := named.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(e *AppointmentStatusEvent)
	}{
		{name: "missing appointmentId", mutate: func(e *AppointmentStatusEvent) { e.AppointmentID = "" }},
		{name: "missing patientId", mutate: func(e *AppointmentStatusEvent) { e.PatientID = "" }},
		{name: "missing dateTime", mutate: func(e *AppointmentStatusEvent) { e.DateTime = "" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			event := valid
			tt.mutate(&event)
			if err := event.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
