package record

import (
	"context"
)

type Repository interface {
	Insert(ctx context.Context, r *Record) error
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Record, int, error)
}
