package domain

import (
	"encoding/json"
	"time"
)

// Event names carried on frames pushed to connected clients.
const (
	EventNotification             = "notification"
	EventAppointmentNew           = "appointmentNew"
	EventAppointmentStatusUpdated = "appointmentStatusUpdated"
)

// Appointment statuses surfaced to client dashboards.
const (
	AppointmentStatusPending   = "PENDING"
	AppointmentStatusApproved  = "APPROVED"
	AppointmentStatusRejected  = "REJECTED"
	AppointmentStatusCancelled = "CANCELLED"
)

// Envelope is the unit published on the backplane so every instance can apply
// a multicast to its locally connected room members.
type Envelope struct {
	Room  string          `json:"room"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// PushMessage is the frame written to a websocket connection.
type PushMessage struct {
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// AppointmentSnapshot is pushed alongside a creation notification so the
// recipient's dashboard can show the pending request without a refetch.
type AppointmentSnapshot struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	DateTime  string `json:"dateTime"`
	Status    string `json:"status"`
}

// AppointmentStatusUpdate is pushed when an appointment changes state.
type AppointmentStatusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
