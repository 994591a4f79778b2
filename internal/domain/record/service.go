package record

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ErrValidation is returned when a record is missing required fields for its
// kind. Nothing is persisted on a validation failure.
var ErrValidation = errors.New("validation failed")

type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Append validates the record against its kind's required fields and
// persists it. The id is assigned on insert. Authorization is the caller's
// concern; the store itself checks nothing.
func (s *Service) Append(ctx context.Context, patientID string, r *Record) (*Record, error) {
	if err := validate(r); err != nil {
		return nil, err
	}
	r.PatientID = patientID
	if err := s.repo.Insert(ctx, r); err != nil {
		return nil, err
	}
	s.logger.Info().Str("patient", patientID).Str("type", r.Type).Msg("record appended")
	return r, nil
}

// List returns the patient's history ordered by date descending; records
// sharing a date come back most-recently-appended first.
func (s *Service) List(ctx context.Context, patientID string, limit, offset int) ([]*Record, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func validate(r *Record) error {
	var missing []string
	need := func(field string, v *string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			missing = append(missing, field)
		}
	}

	switch r.Type {
	case TypeConsultation:
		need("doctorId", r.DoctorID)
		need("doctorName", r.DoctorName)
		need("diagnosis", r.Diagnosis)
		need("prescription", r.Prescription)
	case TypeLabResult:
		need("testName", r.TestName)
		need("resultSummary", r.ResultSummary)
	case TypeAllergyNote:
		need("allergen", r.Allergen)
		need("reaction", r.Reaction)
		need("severity", r.Severity)
		if r.Severity != nil && *r.Severity != "" {
			switch *r.Severity {
			case SeverityMild, SeverityModerate, SeveritySevere:
			default:
				return fmt.Errorf("%w: severity must be mild, moderate or severe", ErrValidation)
			}
		}
	default:
		return fmt.Errorf("%w: unknown record type %q", ErrValidation, r.Type)
	}

	if r.Date.IsZero() {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing fields: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
