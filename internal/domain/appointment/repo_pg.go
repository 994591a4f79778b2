package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arogya/arogya/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, patient_id, patient_name, patient_email,
	doctor_id, doctor_name, date_time, reason, status, created_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.PatientName, &a.PatientEmail,
		&a.DoctorID, &a.DoctorName, &a.DateTime, &a.Reason, &a.Status, &a.CreatedAt)
	return &a, err
}

func (r *repoPG) Insert(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (id, patient_id, patient_name, patient_email,
			doctor_id, doctor_name, date_time, reason, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		a.ID, a.PatientID, a.PatientName, a.PatientEmail,
		a.DoctorID, a.DoctorName, a.DateTime, a.Reason, a.Status, a.CreatedAt)
	if err != nil {
		return db.WrapErr("insert appointment", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, db.WrapErr("get appointment", err)
	}
	return a, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID, order string, limit, offset int) ([]*Appointment, int, error) {
	return r.list(ctx, "patient_id", patientID, order, limit, offset)
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID, order string, limit, offset int) ([]*Appointment, int, error) {
	return r.list(ctx, "doctor_id", doctorID, order, limit, offset)
}

// list serves both sides; the composite (field, date_time) indexes make the
// ordered scans cheap. field is one of the two fixed column names, never
// caller input.
func (r *repoPG) list(ctx context.Context, field, value, order string, limit, offset int) ([]*Appointment, int, error) {
	dir := "DESC"
	if order == OrderAsc {
		dir = "ASC"
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointment WHERE `+field+` = $1`, value).Scan(&total); err != nil {
		return nil, 0, db.WrapErr("count appointments", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment
		WHERE `+field+` = $1
		ORDER BY date_time `+dir+`
		LIMIT $2 OFFSET $3`, value, limit, offset)
	if err != nil {
		return nil, 0, db.WrapErr("list appointments", err)
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, db.WrapErr("scan appointment", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, db.WrapErr("iterate appointments", err)
	}
	return items, total, nil
}

func (r *repoPG) ListUpcomingByPatient(ctx context.Context, patientID string, from time.Time) ([]*Appointment, error) {
	return r.listUpcoming(ctx, "patient_id", patientID, from)
}

func (r *repoPG) ListUpcomingByDoctor(ctx context.Context, doctorID string, from time.Time) ([]*Appointment, error) {
	return r.listUpcoming(ctx, "doctor_id", doctorID, from)
}

// listUpcoming deliberately has no LIMIT: the future set per user is small
// and the feeds built on it are only correct over the whole set.
func (r *repoPG) listUpcoming(ctx context.Context, field, value string, from time.Time) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment
		WHERE `+field+` = $1 AND date_time > $2
		ORDER BY date_time ASC`, value, from)
	if err != nil {
		return nil, db.WrapErr("list upcoming appointments", err)
	}
	defer rows.Close()

	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, db.WrapErr("scan appointment", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, db.WrapErr("iterate appointments", err)
	}
	return items, nil
}

func (r *repoPG) TransitionFromScheduled(ctx context.Context, id uuid.UUID, to string) error {
	// Compare-and-set: only one of two racing transitions can match the
	// scheduled row.
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointment SET status = $2 WHERE id = $1 AND status = $3`,
		id, to, StatusScheduled)
	if err != nil {
		return db.WrapErr("transition appointment", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a missing row from a lost race / terminal state.
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM appointment WHERE id = $1)`, id).Scan(&exists); err != nil {
		return db.WrapErr("check appointment", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInvalidTransition
}
