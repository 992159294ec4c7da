package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hireline/hireline/internal/domain"
)

// ApplicationRepo persists and loads applications using a minimal pgx pool.
type ApplicationRepo struct{ Pool PgxPool }

// NewApplicationRepo constructs an ApplicationRepo with the given pool.
func NewApplicationRepo(p PgxPool) *ApplicationRepo { return &ApplicationRepo{Pool: p} }

// Create inserts a new application and returns its id.
func (r *ApplicationRepo) Create(ctx domain.Context, a domain.Application) (int64, error) {
	tracer := otel.Tracer("repo.applications")
	ctx, span := tracer.Start(ctx, "applications.Create")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.sql.table", "applications"),
	)
	q := `INSERT INTO applications (cv_path, status, profile_url, user_id, vacancy_id, created_at, updated_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$6) RETURNING id`
	var id int64
	err := r.Pool.QueryRow(ctx, q, a.CVPath, a.Status, a.ProfileURL, a.UserID, a.VacancyID, time.Now().UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("op=application.create: %w", err)
	}
	return id, nil
}

// Get loads an application by id.
func (r *ApplicationRepo) Get(ctx domain.Context, id int64) (domain.Application, error) {
	tracer := otel.Tracer("repo.applications")
	ctx, span := tracer.Start(ctx, "applications.Get")
	defer span.End()
	q := `SELECT id, cv_path, status, profile_url, user_id, vacancy_id, created_at, updated_at
	      FROM applications WHERE id=$1`
	row := r.Pool.QueryRow(ctx, q, id)
	var a domain.Application
	if err := row.Scan(&a.ID, &a.CVPath, &a.Status, &a.ProfileURL, &a.UserID, &a.VacancyID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Application{}, fmt.Errorf("op=application.get: %w", domain.ErrNotFound)
		}
		return domain.Application{}, fmt.Errorf("op=application.get: %w", err)
	}
	return a, nil
}

// ListByUser returns all applications submitted by one user, newest first.
func (r *ApplicationRepo) ListByUser(ctx domain.Context, userID int64) ([]domain.Application, error) {
	tracer := otel.Tracer("repo.applications")
	ctx, span := tracer.Start(ctx, "applications.ListByUser")
	defer span.End()
	q := `SELECT id, cv_path, status, profile_url, user_id, vacancy_id, created_at, updated_at
	      FROM applications WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("op=application.list_by_user: %w", err)
	}
	defer rows.Close()
	var out []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.CVPath, &a.Status, &a.ProfileURL, &a.UserID, &a.VacancyID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("op=application.list_by_user: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=application.list_by_user: %w", err)
	}
	return out, nil
}

// UpdateStatus moves an application to the given lifecycle state.
func (r *ApplicationRepo) UpdateStatus(ctx domain.Context, id int64, status domain.Status) error {
	tracer := otel.Tracer("repo.applications")
	ctx, span := tracer.Start(ctx, "applications.UpdateStatus")
	defer span.End()
	q := `UPDATE applications SET status=$2, updated_at=$3 WHERE id=$1`
	tag, err := r.Pool.Exec(ctx, q, id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("op=application.update_status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=application.update_status: %w", domain.ErrNotFound)
	}
	return nil
}

// UpdateCV replaces the stored CV path.
func (r *ApplicationRepo) UpdateCV(ctx domain.Context, id int64, cvPath string) error {
	tracer := otel.Tracer("repo.applications")
	ctx, span := tracer.Start(ctx, "applications.UpdateCV")
	defer span.End()
	q := `UPDATE applications SET cv_path=$2, updated_at=$3 WHERE id=$1`
	tag, err := r.Pool.Exec(ctx, q, id, cvPath, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("op=application.update_cv: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=application.update_cv: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes an application; dependent results cascade in the schema.
func (r *ApplicationRepo) Delete(ctx domain.Context, id int64) error {
	tracer := otel.Tracer("repo.applications")
	ctx, span := tracer.Start(ctx, "applications.Delete")
	defer span.End()
	tag, err := r.Pool.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("op=application.delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("op=application.delete: %w", domain.ErrNotFound)
	}
	return nil
}
