package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID, order string, limit, offset int) ([]*Appointment, int, error)
	ListByDoctor(ctx context.Context, doctorID, order string, limit, offset int) ([]*Appointment, int, error)
	// The upcoming variants return every appointment strictly after from,
	// earliest first and unpaginated: the reminder and upcoming feeds must
	// see the whole future set, not a page of it.
	ListUpcomingByPatient(ctx context.Context, patientID string, from time.Time) ([]*Appointment, error)
	ListUpcomingByDoctor(ctx context.Context, doctorID string, from time.Time) ([]*Appointment, error)
	// TransitionFromScheduled atomically moves the appointment from
	// scheduled to the given status. It fails ErrNotFound for an unknown id
	// and ErrInvalidTransition when the appointment already left scheduled;
	// two concurrent callers resolve to a single winner.
	TransitionFromScheduled(ctx context.Context, id uuid.UUID, to string) error
}
