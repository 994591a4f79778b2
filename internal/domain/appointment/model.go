package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. Scheduled is the only non-terminal state.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Sort orders for listings.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Appointment maps to the appointment table. Patient and doctor names (and
// the patient email) are captured at booking time so listings render without
// extra lookups. Appointments are never deleted, only status-transitioned.
type Appointment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientID    string    `db:"patient_id" json:"patientId"`
	PatientName  string    `db:"patient_name" json:"patientName"`
	PatientEmail *string   `db:"patient_email" json:"patientEmail,omitempty"`
	DoctorID     string    `db:"doctor_id" json:"doctorId"`
	DoctorName   string    `db:"doctor_name" json:"doctorName"`
	DateTime     time.Time `db:"date_time" json:"dateTime"`
	Reason       string    `db:"reason" json:"reason"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
