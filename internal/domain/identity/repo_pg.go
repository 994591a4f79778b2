package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arogya/arogya/internal/platform/db"
)

// 23505 is the Postgres unique_violation code.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository { return &doctorRepoPG{pool: pool} }

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO doctor (uid, name, email)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		d.UID, d.Name, d.Email).Scan(&d.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return db.WrapErr("insert doctor", err)
	}
	return nil
}

func (r *doctorRepoPG) GetByUID(ctx context.Context, uid string) (*Doctor, error) {
	var d Doctor
	err := r.pool.QueryRow(ctx, `
		SELECT uid, name, email, created_at FROM doctor WHERE uid = $1`, uid).
		Scan(&d.UID, &d.Name, &d.Email, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, db.WrapErr("get doctor", err)
	}
	return &d, nil
}

func (r *doctorRepoPG) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctor`).Scan(&total); err != nil {
		return nil, 0, db.WrapErr("count doctors", err)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT uid, name, email, created_at FROM doctor
		ORDER BY name ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, db.WrapErr("list doctors", err)
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.UID, &d.Name, &d.Email, &d.CreatedAt); err != nil {
			return nil, 0, db.WrapErr("scan doctor", err)
		}
		items = append(items, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, db.WrapErr("iterate doctors", err)
	}
	return items, total, nil
}

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository { return &patientRepoPG{pool: pool} }

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patient (uid, name, email, aadhaar)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		p.UID, p.Name, p.Email, p.Aadhaar).Scan(&p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return db.WrapErr("insert patient", err)
	}
	return nil
}

func (r *patientRepoPG) GetByUID(ctx context.Context, uid string) (*Patient, error) {
	var p Patient
	err := r.pool.QueryRow(ctx, `
		SELECT uid, name, email, aadhaar, created_at FROM patient WHERE uid = $1`, uid).
		Scan(&p.UID, &p.Name, &p.Email, &p.Aadhaar, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, db.WrapErr("get patient", err)
	}
	return &p, nil
}
