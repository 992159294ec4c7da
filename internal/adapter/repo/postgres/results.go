package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"

	"github.com/hireline/hireline/internal/domain"
)

// PreInterviewRepo persists CV-screening outcomes.
type PreInterviewRepo struct{ Pool PgxPool }

// NewPreInterviewRepo constructs a PreInterviewRepo with the given pool.
func NewPreInterviewRepo(p PgxPool) *PreInterviewRepo { return &PreInterviewRepo{Pool: p} }

// Create inserts a pre-interview result and returns its id.
func (r *PreInterviewRepo) Create(ctx domain.Context, res domain.PreInterviewResult) (int64, error) {
	tracer := otel.Tracer("repo.pre_interview")
	ctx, span := tracer.Start(ctx, "pre_interview.Create")
	defer span.End()
	q := `INSERT INTO pre_interview_results (application_id, is_recommended, score, reason, created_at)
	      VALUES ($1,$2,$3,$4,$5) RETURNING id`
	var id int64
	err := r.Pool.QueryRow(ctx, q, res.ApplicationID, res.IsRecommended, res.Score, res.Reason, time.Now().UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("op=pre_interview.create: %w", err)
	}
	return id, nil
}

// GetByApplication loads the screening result for one application.
func (r *PreInterviewRepo) GetByApplication(ctx domain.Context, applicationID int64) (domain.PreInterviewResult, error) {
	tracer := otel.Tracer("repo.pre_interview")
	ctx, span := tracer.Start(ctx, "pre_interview.GetByApplication")
	defer span.End()
	q := `SELECT id, application_id, is_recommended, score, reason, created_at
	      FROM pre_interview_results WHERE application_id=$1`
	row := r.Pool.QueryRow(ctx, q, applicationID)
	var res domain.PreInterviewResult
	if err := row.Scan(&res.ID, &res.ApplicationID, &res.IsRecommended, &res.Score, &res.Reason, &res.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PreInterviewResult{}, fmt.Errorf("op=pre_interview.get: %w", domain.ErrNotFound)
		}
		return domain.PreInterviewResult{}, fmt.Errorf("op=pre_interview.get: %w", err)
	}
	return res, nil
}

// PostInterviewRepo persists interview-scoring outcomes.
type PostInterviewRepo struct{ Pool PgxPool }

// NewPostInterviewRepo constructs a PostInterviewRepo with the given pool.
func NewPostInterviewRepo(p PgxPool) *PostInterviewRepo { return &PostInterviewRepo{Pool: p} }

// Create inserts a post-interview result and returns its id.
func (r *PostInterviewRepo) Create(ctx domain.Context, res domain.PostInterviewResult) (int64, error) {
	tracer := otel.Tracer("repo.post_interview")
	ctx, span := tracer.Start(ctx, "post_interview.Create")
	defer span.End()
	q := `INSERT INTO post_interview_results
	      (application_id, is_recommended, score, interview_summary, candidate_response, summary, emotional_analysis, candidate_roadmap, created_at)
	      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`
	var id int64
	err := r.Pool.QueryRow(ctx, q, res.ApplicationID, res.IsRecommended, res.Score,
		res.InterviewSummary, res.CandidateResponse, res.Summary, res.EmotionalAnalysis, res.CandidateRoadmap,
		time.Now().UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("op=post_interview.create: %w", err)
	}
	return id, nil
}

// GetByApplication loads the interview result for one application.
func (r *PostInterviewRepo) GetByApplication(ctx domain.Context, applicationID int64) (domain.PostInterviewResult, error) {
	tracer := otel.Tracer("repo.post_interview")
	ctx, span := tracer.Start(ctx, "post_interview.GetByApplication")
	defer span.End()
	q := `SELECT id, application_id, is_recommended, score, interview_summary, candidate_response, summary, emotional_analysis, candidate_roadmap, created_at
	      FROM post_interview_results WHERE application_id=$1`
	row := r.Pool.QueryRow(ctx, q, applicationID)
	var res domain.PostInterviewResult
	if err := row.Scan(&res.ID, &res.ApplicationID, &res.IsRecommended, &res.Score,
		&res.InterviewSummary, &res.CandidateResponse, &res.Summary, &res.EmotionalAnalysis, &res.CandidateRoadmap,
		&res.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PostInterviewResult{}, fmt.Errorf("op=post_interview.get: %w", domain.ErrNotFound)
		}
		return domain.PostInterviewResult{}, fmt.Errorf("op=post_interview.get: %w", err)
	}
	return res, nil
}

// SkillResultRepo persists per-skill interview scores.
type SkillResultRepo struct{ Pool PgxPool }

// NewSkillResultRepo constructs a SkillResultRepo with the given pool.
func NewSkillResultRepo(p PgxPool) *SkillResultRepo { return &SkillResultRepo{Pool: p} }

// BulkCreate inserts all skill results for one application atomically.
func (r *SkillResultRepo) BulkCreate(ctx domain.Context, applicationID int64, results []domain.SkillResult) error {
	tracer := otel.Tracer("repo.skill_results")
	ctx, span := tracer.Start(ctx, "skill_results.BulkCreate")
	defer span.End()

	if len(results) == 0 {
		return nil
	}
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("op=skill_result.bulk_create: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	for _, res := range results {
		_, err = tx.Exec(ctx,
			`INSERT INTO skill_results (application_id, skill_id, score, weight, created_at) VALUES ($1,$2,$3,$4,$5)`,
			applicationID, res.SkillID, res.Score, res.Weight, now)
		if err != nil {
			return fmt.Errorf("op=skill_result.bulk_create: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("op=skill_result.bulk_create: %w", err)
	}
	return nil
}

// ListByApplication returns all skill results for one application.
func (r *SkillResultRepo) ListByApplication(ctx domain.Context, applicationID int64) ([]domain.SkillResult, error) {
	tracer := otel.Tracer("repo.skill_results")
	ctx, span := tracer.Start(ctx, "skill_results.ListByApplication")
	defer span.End()
	q := `SELECT id, application_id, skill_id, score, weight, created_at
	      FROM skill_results WHERE application_id=$1 ORDER BY id`
	rows, err := r.Pool.Query(ctx, q, applicationID)
	if err != nil {
		return nil, fmt.Errorf("op=skill_result.list: %w", err)
	}
	defer rows.Close()
	var out []domain.SkillResult
	for rows.Next() {
		var res domain.SkillResult
		if err := rows.Scan(&res.ID, &res.ApplicationID, &res.SkillID, &res.Score, &res.Weight, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("op=skill_result.list: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=skill_result.list: %w", err)
	}
	return out, nil
}
