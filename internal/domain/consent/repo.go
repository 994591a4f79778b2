package consent

import (
	"context"
)

// Repository persists the patient -> doctor sharing relation. Add and Remove
// are idempotent so callers can retry after an ambiguous failure.
type Repository interface {
	Add(ctx context.Context, patientID, doctorID string) error
	Remove(ctx context.Context, patientID, doctorID string) error
	Exists(ctx context.Context, patientID, doctorID string) (bool, error)
	ListDoctorIDs(ctx context.Context, patientID string) ([]string, error)
}
