package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arogya/arogya/internal/domain/identity"
)

var (
	// ErrPastDateTime is returned when a booking instant lies before now
	// minus the clock-skew tolerance.
	ErrPastDateTime = errors.New("appointment time is in the past")
	// ErrInvalidTransition is returned when cancel or complete is applied
	// to an appointment that already left the scheduled state.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotFound is returned for an unknown appointment id.
	ErrNotFound = errors.New("appointment not found")
	// ErrUnknownDoctor is returned when a booking names a doctor that does
	// not exist.
	ErrUnknownDoctor = errors.New("unknown doctor")
	// ErrEmptyReason is returned when a booking carries a blank reason.
	ErrEmptyReason = errors.New("reason is required")
)

// DefaultClockSkew is how far in the past a booking instant may lie and
// still be accepted, absorbing client/server clock drift.
const DefaultClockSkew = 60 * time.Second

// Directory resolves user uids to profiles; satisfied by identity.Service.
type Directory interface {
	GetDoctor(ctx context.Context, uid string) (*identity.Doctor, error)
	GetPatient(ctx context.Context, uid string) (*identity.Patient, error)
}

type Service struct {
	repo      Repository
	directory Directory
	clockSkew time.Duration
	logger    zerolog.Logger

	now func() time.Time // overridden in tests
}

func NewService(repo Repository, directory Directory, clockSkew time.Duration, logger zerolog.Logger) *Service {
	if clockSkew <= 0 {
		clockSkew = DefaultClockSkew
	}
	return &Service{
		repo:      repo,
		directory: directory,
		clockSkew: clockSkew,
		logger:    logger,
		now:       time.Now,
	}
}

// BookingRequest carries the booking parameters. DateTime is the resolved
// instant; tolerant text parsing happens at the transport layer.
type BookingRequest struct {
	PatientID string
	DoctorID  string
	DateTime  time.Time
	Reason    string
}

// Book validates the request and creates a scheduled appointment. All
// checks run before anything is persisted.
func (s *Service) Book(ctx context.Context, req BookingRequest) (*Appointment, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrEmptyReason
	}
	if req.DateTime.Before(s.now().Add(-s.clockSkew)) {
		return nil, ErrPastDateTime
	}

	doctor, err := s.directory.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return nil, ErrUnknownDoctor
		}
		return nil, err
	}
	patient, err := s.directory.GetPatient(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	a := &Appointment{
		PatientID:    patient.UID,
		PatientName:  patient.Name,
		PatientEmail: patient.Email,
		DoctorID:     doctor.UID,
		DoctorName:   doctor.Name,
		DateTime:     req.DateTime,
		Reason:       strings.TrimSpace(req.Reason),
		Status:       StatusScheduled,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("appointment", a.ID.String()).
		Str("patient", a.PatientID).
		Str("doctor", a.DoctorID).
		Time("at", a.DateTime).
		Msg("appointment booked")
	return a, nil
}

// Get returns the appointment with the given id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// Cancel moves a scheduled appointment to cancelled. Terminal states are
// never reverted.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.TransitionFromScheduled(ctx, id, StatusCancelled); err != nil {
		return err
	}
	s.logger.Info().Str("appointment", id.String()).Msg("appointment cancelled")
	return nil
}

// Complete moves a scheduled appointment to completed.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.TransitionFromScheduled(ctx, id, StatusCompleted); err != nil {
		return err
	}
	s.logger.Info().Str("appointment", id.String()).Msg("appointment completed")
	return nil
}

// ListForUser returns the user's appointments as patient or doctor, sorted
// by dateTime in the given order (descending when order is empty).
func (s *Service) ListForUser(ctx context.Context, uid, role, order string, limit, offset int) ([]*Appointment, int, error) {
	switch order {
	case "":
		order = OrderDesc
	case OrderAsc, OrderDesc:
	default:
		return nil, 0, fmt.Errorf("invalid order %q", order)
	}

	switch role {
	case identity.RolePatient:
		return s.repo.ListByPatient(ctx, uid, order, limit, offset)
	case identity.RoleDoctor:
		return s.repo.ListByDoctor(ctx, uid, order, limit, offset)
	default:
		return nil, 0, fmt.Errorf("invalid role %q", role)
	}
}

// UpcomingForUser returns every appointment of the user strictly after
// from, earliest first. Unlike ListForUser it never paginates: the upcoming
// and reminder feeds are computed over the complete future set.
func (s *Service) UpcomingForUser(ctx context.Context, uid, role string, from time.Time) ([]*Appointment, error) {
	switch role {
	case identity.RolePatient:
		return s.repo.ListUpcomingByPatient(ctx, uid, from)
	case identity.RoleDoctor:
		return s.repo.ListUpcomingByDoctor(ctx, uid, from)
	default:
		return nil, fmt.Errorf("invalid role %q", role)
	}
}
