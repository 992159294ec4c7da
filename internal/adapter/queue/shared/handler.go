// Package shared provides the stage dispatch logic used by queue consumers.
package shared

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/hireline/hireline/internal/adapter/observability"
	"github.com/hireline/hireline/internal/domain"
)

// StageRunner executes one assessment stage for one application.
type StageRunner interface {
	Run(ctx domain.Context, applicationID int64) error
}

// StageHandler routes assessment tasks to the pre- or post-interview stage,
// guarded by the stage lock so concurrent deliveries of the same task cannot
// run the stage twice at once.
type StageHandler struct {
	Pre  StageRunner
	Post StageRunner
	Lock domain.StageLock
}

// NewStageHandler constructs a StageHandler.
func NewStageHandler(pre, post StageRunner, lock domain.StageLock) *StageHandler {
	return &StageHandler{Pre: pre, Post: post, Lock: lock}
}

// Handle runs the stage named by the task. A task whose lock is already held
// is skipped without error; redelivery after the holder finishes is safe
// because completed stages leave the application in a state the stage
// preconditions reject.
func (h *StageHandler) Handle(ctx domain.Context, task domain.AssessmentTask) error {
	tracer := otel.Tracer("queue.handler")
	ctx, span := tracer.Start(ctx, "HandleAssessment")
	defer span.End()

	var runner StageRunner
	switch task.Stage {
	case domain.StagePreInterview:
		runner = h.Pre
	case domain.StagePostInterview:
		runner = h.Post
	default:
		return fmt.Errorf("%w: unknown stage %q", domain.ErrInvalidArgument, task.Stage)
	}

	ok, err := h.Lock.Acquire(ctx, task.Stage, task.ApplicationID)
	if err != nil {
		return fmt.Errorf("acquire stage lock: %w", err)
	}
	if !ok {
		slog.Info("stage already running, skipping",
			slog.String("stage", string(task.Stage)),
			slog.Int64("application_id", task.ApplicationID))
		return nil
	}
	defer func() {
		_ = h.Lock.Release(ctx, task.Stage, task.ApplicationID)
	}()

	stage := string(task.Stage)
	observability.StartAssessment(stage)
	if err := runner.Run(ctx, task.ApplicationID); err != nil {
		observability.FailAssessment(stage)
		return err
	}
	observability.CompleteAssessment(stage)
	return nil
}
