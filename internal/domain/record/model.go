package record

import (
	"time"

	"github.com/google/uuid"
)

// Record kinds. Every record is exactly one of these; the per-kind fields
// below are nullable columns on a single table.
const (
	TypeConsultation = "consultation"
	TypeLabResult    = "lab_result"
	TypeAllergyNote  = "allergy_note"
)

// Allergy severities.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Record maps to the medical_record table. Records are immutable once
// created. Date is the clinical date: for consultations it is the visit date
// chosen by the doctor, which may lie in the past.
type Record struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID string    `db:"patient_id" json:"patient_id"`
	Type      string    `db:"record_type" json:"type"`
	Date      time.Time `db:"date" json:"date"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`

	// consultation
	DoctorID     *string `db:"doctor_id" json:"doctorId,omitempty"`
	DoctorName   *string `db:"doctor_name" json:"doctorName,omitempty"`
	Diagnosis    *string `db:"diagnosis" json:"diagnosis,omitempty"`
	Prescription *string `db:"prescription" json:"prescription,omitempty"`

	// lab_result
	TestName      *string `db:"test_name" json:"testName,omitempty"`
	ResultSummary *string `db:"result_summary" json:"resultSummary,omitempty"`

	// allergy_note
	Allergen *string `db:"allergen" json:"allergen,omitempty"`
	Reaction *string `db:"reaction" json:"reaction,omitempty"`
	Severity *string `db:"severity" json:"severity,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
