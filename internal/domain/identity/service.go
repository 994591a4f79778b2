package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arogya/arogya/pkg/aadhaar"
)

var (
	// ErrNotFound is returned when no profile exists for a uid.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalidAadhaar is returned when patient registration carries an
	// Aadhaar number that fails structural validation.
	ErrInvalidAadhaar = errors.New("invalid aadhaar number")
	// ErrAlreadyExists is returned when a uid is already registered.
	ErrAlreadyExists = errors.New("profile already exists")
)

type Service struct {
	doctors  DoctorRepository
	patients PatientRepository
	logger   zerolog.Logger
}

func NewService(doctors DoctorRepository, patients PatientRepository, logger zerolog.Logger) *Service {
	return &Service{doctors: doctors, patients: patients, logger: logger}
}

func (s *Service) RegisterDoctor(ctx context.Context, uid, name string, email *string) (*Doctor, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := s.checkUnregistered(ctx, uid); err != nil {
		return nil, err
	}
	d := &Doctor{UID: uid, Name: strings.TrimSpace(name), Email: email}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Info().Str("uid", uid).Msg("doctor registered")
	return d, nil
}

func (s *Service) RegisterPatient(ctx context.Context, uid, name string, email *string, aadhaarID string) (*Patient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if res := aadhaar.Validate(aadhaarID); res != aadhaar.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAadhaar, res.Message())
	}
	if err := s.checkUnregistered(ctx, uid); err != nil {
		return nil, err
	}
	p := &Patient{UID: uid, Name: strings.TrimSpace(name), Email: email, Aadhaar: aadhaarID}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().Str("uid", uid).Msg("patient registered")
	return p, nil
}

// checkUnregistered rejects a uid that already holds a profile in either
// table. A uid is exactly one of doctor or patient, never both; without
// this probe a double registration would leave the patient row permanently
// shadowed by the doctor-first lookup in GetProfile.
func (s *Service) checkUnregistered(ctx context.Context, uid string) error {
	if _, err := s.doctors.GetByUID(ctx, uid); err == nil {
		return ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if _, err := s.patients.GetByUID(ctx, uid); err == nil {
		return ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// GetProfile resolves a uid to its role-tagged profile. The doctor table is
// probed first, then the patient table.
func (s *Service) GetProfile(ctx context.Context, uid string) (*Profile, error) {
	d, err := s.doctors.GetByUID(ctx, uid)
	if err == nil {
		return &Profile{Role: RoleDoctor, Doctor: d}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	p, err := s.patients.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &Profile{Role: RolePatient, Patient: p}, nil
}

// GetDoctor returns the doctor with the given uid, or ErrNotFound.
func (s *Service) GetDoctor(ctx context.Context, uid string) (*Doctor, error) {
	return s.doctors.GetByUID(ctx, uid)
}

// GetPatient returns the patient with the given uid, or ErrNotFound.
func (s *Service) GetPatient(ctx context.Context, uid string) (*Patient, error) {
	return s.patients.GetByUID(ctx, uid)
}

// ListDoctors returns doctors ordered by name ascending.
func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}
