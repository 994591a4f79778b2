package identity

import (
	"context"
)

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByUID(ctx context.Context, uid string) (*Doctor, error)
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
}

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByUID(ctx context.Context, uid string) (*Patient, error)
}
