package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"

	"github.com/hireline/hireline/internal/domain"
)

// VacancyRepo persists and loads vacancies with their weighted skills.
type VacancyRepo struct{ Pool PgxPool }

// NewVacancyRepo constructs a VacancyRepo with the given pool.
func NewVacancyRepo(p PgxPool) *VacancyRepo { return &VacancyRepo{Pool: p} }

// Create inserts a vacancy and its skills in one transaction and returns the
// vacancy id.
func (r *VacancyRepo) Create(ctx domain.Context, v domain.Vacancy) (int64, error) {
	tracer := otel.Tracer("repo.vacancies")
	ctx, span := tracer.Start(ctx, "vacancies.Create")
	defer span.End()

	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("op=vacancy.create: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := `INSERT INTO vacancies (name, description, city, weekly_hours, required_experience, salary, open_time, close_time, is_active, user_id)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id`
	var id int64
	err = tx.QueryRow(ctx, q, v.Name, v.Description, v.City, v.WeeklyHours, v.RequiredExperience,
		v.Salary, v.OpenTime, v.CloseTime, v.IsActive, v.UserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("op=vacancy.create: %w", err)
	}

	for _, s := range v.Skills {
		_, err = tx.Exec(ctx,
			`INSERT INTO skills (vacancy_id, name, weight, details) VALUES ($1,$2,$3,$4)`,
			id, s.Name, s.Weight, s.Details)
		if err != nil {
			return 0, fmt.Errorf("op=vacancy.create_skill: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("op=vacancy.create: %w", err)
	}
	return id, nil
}

// Get loads a vacancy by id with its skills fully materialized.
func (r *VacancyRepo) Get(ctx domain.Context, id int64) (domain.Vacancy, error) {
	tracer := otel.Tracer("repo.vacancies")
	ctx, span := tracer.Start(ctx, "vacancies.Get")
	defer span.End()

	q := `SELECT id, name, description, city, weekly_hours, required_experience, salary, open_time, close_time, is_active, user_id
	      FROM vacancies WHERE id=$1`
	row := r.Pool.QueryRow(ctx, q, id)
	var v domain.Vacancy
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &v.City, &v.WeeklyHours, &v.RequiredExperience,
		&v.Salary, &v.OpenTime, &v.CloseTime, &v.IsActive, &v.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vacancy{}, fmt.Errorf("op=vacancy.get: %w", domain.ErrNotFound)
		}
		return domain.Vacancy{}, fmt.Errorf("op=vacancy.get: %w", err)
	}

	rows, err := r.Pool.Query(ctx,
		`SELECT id, vacancy_id, name, weight, details FROM skills WHERE vacancy_id=$1 ORDER BY id`, id)
	if err != nil {
		return domain.Vacancy{}, fmt.Errorf("op=vacancy.get_skills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.VacancyID, &s.Name, &s.Weight, &s.Details); err != nil {
			return domain.Vacancy{}, fmt.Errorf("op=vacancy.get_skills: %w", err)
		}
		v.Skills = append(v.Skills, s)
	}
	if err := rows.Err(); err != nil {
		return domain.Vacancy{}, fmt.Errorf("op=vacancy.get_skills: %w", err)
	}
	return v, nil
}
