package record

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arogya/arogya/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const recordCols = `id, patient_id, record_type, date, notes,
	doctor_id, doctor_name, diagnosis, prescription,
	test_name, result_summary,
	allergen, reaction, severity, created_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.PatientID, &r.Type, &r.Date, &r.Notes,
		&r.DoctorID, &r.DoctorName, &r.Diagnosis, &r.Prescription,
		&r.TestName, &r.ResultSummary,
		&r.Allergen, &r.Reaction, &r.Severity, &r.CreatedAt)
	return &r, err
}

func (r *repoPG) Insert(ctx context.Context, rec *Record) error {
	rec.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO medical_record (id, patient_id, record_type, date, notes,
			doctor_id, doctor_name, diagnosis, prescription,
			test_name, result_summary,
			allergen, reaction, severity)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING created_at`,
		rec.ID, rec.PatientID, rec.Type, rec.Date, rec.Notes,
		rec.DoctorID, rec.DoctorName, rec.Diagnosis, rec.Prescription,
		rec.TestName, rec.ResultSummary,
		rec.Allergen, rec.Reaction, rec.Severity).Scan(&rec.CreatedAt)
	if err != nil {
		return db.WrapErr("insert record", err)
	}
	return nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Record, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM medical_record WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, db.WrapErr("count records", err)
	}

	// seq breaks date ties so the most recently appended record sorts first.
	rows, err := r.pool.Query(ctx, `
		SELECT `+recordCols+` FROM medical_record
		WHERE patient_id = $1
		ORDER BY date DESC, seq DESC
		LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, db.WrapErr("list records", err)
	}
	defer rows.Close()

	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, db.WrapErr("scan record", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, db.WrapErr("iterate records", err)
	}
	return items, total, nil
}
