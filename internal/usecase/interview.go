package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hireline/hireline/internal/domain"
	"github.com/hireline/hireline/internal/prompt"
)

// InterviewService manages the live interview surface: transcript appends,
// the realtime interviewer brief, and handing the finished interview to the
// post-interview stage.
type InterviewService struct {
	Apps      domain.ApplicationRepository
	Vacancies domain.VacancyRepository
	Messages  domain.InterviewMessageRepository
	Extractor domain.TextExtractor
	Queue     domain.Queue
}

// NewInterviewService constructs an InterviewService with its dependencies.
func NewInterviewService(apps domain.ApplicationRepository, vacs domain.VacancyRepository, msgs domain.InterviewMessageRepository, ex domain.TextExtractor, q domain.Queue) InterviewService {
	return InterviewService{Apps: apps, Vacancies: vacs, Messages: msgs, Extractor: ex, Queue: q}
}

// Append stores one transcript message. The first append for an approved
// application moves it into in_interview; appends outside an active
// interview window are conflicts.
func (s InterviewService) Append(ctx domain.Context, applicationID int64, role, message string) (domain.InterviewMessage, error) {
	if role != domain.RoleUser && role != domain.RoleAssistant {
		return domain.InterviewMessage{}, fmt.Errorf("%w: role %q", domain.ErrInvalidArgument, role)
	}
	if message == "" {
		return domain.InterviewMessage{}, fmt.Errorf("%w: empty message", domain.ErrInvalidArgument)
	}
	app, err := s.Apps.Get(ctx, applicationID)
	if err != nil {
		return domain.InterviewMessage{}, fmt.Errorf("op=interview.append: %w", err)
	}
	if app.Status != domain.StatusApprovedForInterview && app.Status != domain.StatusInInterview {
		return domain.InterviewMessage{}, fmt.Errorf("op=interview.append: %w: status %s", domain.ErrConflict, app.Status)
	}
	m := domain.InterviewMessage{
		ApplicationID: applicationID,
		Role:          role,
		Message:       message,
		CreatedAt:     time.Now().UTC(),
	}
	id, err := s.Messages.Append(ctx, m)
	if err != nil {
		return domain.InterviewMessage{}, fmt.Errorf("op=interview.append: %w", err)
	}
	m.ID = id
	if app.Status == domain.StatusApprovedForInterview {
		if err := s.Apps.UpdateStatus(ctx, applicationID, domain.StatusInInterview); err != nil {
			return domain.InterviewMessage{}, fmt.Errorf("op=interview.append.status: %w", err)
		}
	}
	return m, nil
}

// Transcript returns the interview transcript in append order.
func (s InterviewService) Transcript(ctx domain.Context, applicationID int64) ([]domain.InterviewMessage, error) {
	if _, err := s.Apps.Get(ctx, applicationID); err != nil {
		return nil, fmt.Errorf("op=interview.transcript: %w", err)
	}
	return s.Messages.ListByApplication(ctx, applicationID)
}

// Finish hands the application to the post-interview stage.
func (s InterviewService) Finish(ctx domain.Context, applicationID int64) error {
	app, err := s.Apps.Get(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("op=interview.finish: %w", err)
	}
	if app.Status != domain.StatusApprovedForInterview && app.Status != domain.StatusInInterview {
		return fmt.Errorf("op=interview.finish: %w: status %s", domain.ErrConflict, app.Status)
	}
	if _, err := s.Queue.EnqueueAssessment(ctx, domain.AssessmentTask{
		Stage:         domain.StagePostInterview,
		ApplicationID: applicationID,
	}); err != nil {
		return fmt.Errorf("op=interview.finish.enqueue: %w", err)
	}
	slog.Info("interview finished, post-interview assessment enqueued",
		slog.Int64("application_id", applicationID))
	return nil
}

// SessionPrompt assembles the system prompt the voice client hands to the
// live interview session broker.
func (s InterviewService) SessionPrompt(ctx domain.Context, applicationID int64) (string, error) {
	app, err := s.Apps.Get(ctx, applicationID)
	if err != nil {
		return "", fmt.Errorf("op=interview.prompt: %w", err)
	}
	vac, err := s.Vacancies.Get(ctx, app.VacancyID)
	if err != nil {
		return "", fmt.Errorf("op=interview.prompt: %w", err)
	}
	cvText, err := s.Extractor.ExtractText(ctx, app.CVPath)
	if err != nil {
		return "", fmt.Errorf("op=interview.prompt.extract: %w", err)
	}
	return prompt.RealtimeInterviewer(prompt.VacancyBlock(vac), cvText), nil
}
