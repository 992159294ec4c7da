package postgres

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/hireline/hireline/internal/domain"
)

// InterviewMessageRepo persists the append-only interview transcript.
type InterviewMessageRepo struct{ Pool PgxPool }

// NewInterviewMessageRepo constructs an InterviewMessageRepo with the given pool.
func NewInterviewMessageRepo(p PgxPool) *InterviewMessageRepo { return &InterviewMessageRepo{Pool: p} }

// Append stores one transcript entry and returns its id.
func (r *InterviewMessageRepo) Append(ctx domain.Context, m domain.InterviewMessage) (int64, error) {
	tracer := otel.Tracer("repo.interview_messages")
	ctx, span := tracer.Start(ctx, "interview_messages.Append")
	defer span.End()
	q := `INSERT INTO interview_messages (application_id, role, message, created_at)
	      VALUES ($1,$2,$3,$4) RETURNING id`
	var id int64
	err := r.Pool.QueryRow(ctx, q, m.ApplicationID, m.Role, m.Message, time.Now().UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("op=interview_message.append: %w", err)
	}
	return id, nil
}

// ListByApplication returns the transcript in original append order.
func (r *InterviewMessageRepo) ListByApplication(ctx domain.Context, applicationID int64) ([]domain.InterviewMessage, error) {
	tracer := otel.Tracer("repo.interview_messages")
	ctx, span := tracer.Start(ctx, "interview_messages.ListByApplication")
	defer span.End()
	q := `SELECT id, application_id, role, message, created_at
	      FROM interview_messages WHERE application_id=$1 ORDER BY id`
	rows, err := r.Pool.Query(ctx, q, applicationID)
	if err != nil {
		return nil, fmt.Errorf("op=interview_message.list: %w", err)
	}
	defer rows.Close()
	var out []domain.InterviewMessage
	for rows.Next() {
		var m domain.InterviewMessage
		if err := rows.Scan(&m.ID, &m.ApplicationID, &m.Role, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("op=interview_message.list: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=interview_message.list: %w", err)
	}
	return out, nil
}
