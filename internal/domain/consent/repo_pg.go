package consent

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arogya/arogya/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Add(ctx context.Context, patientID, doctorID string) error {
	// ON CONFLICT makes concurrent or repeated grants converge on one row.
	_, err := r.pool.Exec(ctx, `
		INSERT INTO consent (patient_id, doctor_id)
		VALUES ($1, $2)
		ON CONFLICT (patient_id, doctor_id) DO NOTHING`,
		patientID, doctorID)
	if err != nil {
		return db.WrapErr("insert consent", err)
	}
	return nil
}

func (r *repoPG) Remove(ctx context.Context, patientID, doctorID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM consent WHERE patient_id = $1 AND doctor_id = $2`,
		patientID, doctorID)
	if err != nil {
		return db.WrapErr("delete consent", err)
	}
	return nil
}

func (r *repoPG) Exists(ctx context.Context, patientID, doctorID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM consent WHERE patient_id = $1 AND doctor_id = $2
		)`, patientID, doctorID).Scan(&exists)
	if err != nil {
		return false, db.WrapErr("check consent", err)
	}
	return exists, nil
}

func (r *repoPG) ListDoctorIDs(ctx context.Context, patientID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT doctor_id FROM consent WHERE patient_id = $1 ORDER BY granted_at`,
		patientID)
	if err != nil {
		return nil, db.WrapErr("list consents", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, db.WrapErr("scan consent", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, db.WrapErr("iterate consents", err)
	}
	return ids, nil
}
