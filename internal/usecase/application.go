package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hireline/hireline/internal/domain"
)

// ApplicationService handles candidate application intake and reads.
type ApplicationService struct {
	Apps      domain.ApplicationRepository
	Vacancies domain.VacancyRepository
	Converter domain.FileConverter
	Queue     domain.Queue
}

// NewApplicationService constructs an ApplicationService with its dependencies.
func NewApplicationService(apps domain.ApplicationRepository, vacs domain.VacancyRepository, conv domain.FileConverter, q domain.Queue) ApplicationService {
	return ApplicationService{Apps: apps, Vacancies: vacs, Converter: conv, Queue: q}
}

// Submit normalizes the saved upload to PDF, creates the application in
// pending status, and enqueues the screening stage. The enqueue failure path
// leaves the application pending; re-triggering the stage is safe.
func (s ApplicationService) Submit(ctx domain.Context, cvPath string, vacancyID, userID int64, profileURL *string) (domain.Application, error) {
	if cvPath == "" {
		return domain.Application{}, fmt.Errorf("%w: cv required", domain.ErrInvalidArgument)
	}
	if _, err := s.Vacancies.Get(ctx, vacancyID); err != nil {
		return domain.Application{}, fmt.Errorf("op=application.submit: %w", err)
	}
	pdfPath, err := s.Converter.ConvertToPDF(ctx, cvPath)
	if err != nil {
		return domain.Application{}, fmt.Errorf("op=application.convert: %w", err)
	}
	now := time.Now().UTC()
	app := domain.Application{
		CVPath:     pdfPath,
		Status:     domain.StatusPending,
		ProfileURL: profileURL,
		UserID:     userID,
		VacancyID:  vacancyID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	id, err := s.Apps.Create(ctx, app)
	if err != nil {
		return domain.Application{}, fmt.Errorf("op=application.create: %w", err)
	}
	app.ID = id
	if _, err := s.Queue.EnqueueAssessment(ctx, domain.AssessmentTask{
		Stage:         domain.StagePreInterview,
		ApplicationID: id,
	}); err != nil {
		return domain.Application{}, fmt.Errorf("op=application.enqueue: %w", err)
	}
	slog.Info("application submitted",
		slog.Int64("application_id", id),
		slog.Int64("vacancy_id", vacancyID))
	return app, nil
}

// Get returns one application.
func (s ApplicationService) Get(ctx domain.Context, id int64) (domain.Application, error) {
	return s.Apps.Get(ctx, id)
}

// ListByUser returns the user's applications.
func (s ApplicationService) ListByUser(ctx domain.Context, userID int64) ([]domain.Application, error) {
	return s.Apps.ListByUser(ctx, userID)
}

// Delete removes an application and its dependent results.
func (s ApplicationService) Delete(ctx domain.Context, id int64) error {
	return s.Apps.Delete(ctx, id)
}
