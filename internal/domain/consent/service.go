package consent

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// ErrAccessDenied is returned whenever a requester may not read a patient's
// records. The same error covers an unknown patient and an absent grant, so
// a denied caller cannot probe which patients exist.
var ErrAccessDenied = errors.New("access denied")

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Grant adds doctorID to the patient's sharing set. Granting twice is a no-op.
func (s *Service) Grant(ctx context.Context, patientID, doctorID string) error {
	if err := s.repo.Add(ctx, patientID, doctorID); err != nil {
		return err
	}
	s.logger.Info().Str("patient", patientID).Str("doctor", doctorID).Msg("consent granted")
	return nil
}

// Revoke removes doctorID from the patient's sharing set. Revoking an absent
// grant is a no-op. Takes effect for all subsequent access checks.
func (s *Service) Revoke(ctx context.Context, patientID, doctorID string) error {
	if err := s.repo.Remove(ctx, patientID, doctorID); err != nil {
		return err
	}
	s.logger.Info().Str("patient", patientID).Str("doctor", doctorID).Msg("consent revoked")
	return nil
}

// CanAccess reports whether requesterID may read patientID's records: the
// patient themself always can, a doctor only with an active grant.
func (s *Service) CanAccess(ctx context.Context, patientID, requesterID string) (bool, error) {
	if patientID == requesterID {
		return true, nil
	}
	return s.repo.Exists(ctx, patientID, requesterID)
}

// Authorize fails with ErrAccessDenied when CanAccess is false.
func (s *Service) Authorize(ctx context.Context, patientID, requesterID string) error {
	ok, err := s.CanAccess(ctx, patientID, requesterID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAccessDenied
	}
	return nil
}

// ListGrants returns the doctor uids the patient currently shares with.
func (s *Service) ListGrants(ctx context.Context, patientID string) ([]string, error) {
	return s.repo.ListDoctorIDs(ctx, patientID)
}
