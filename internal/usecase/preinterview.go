// Package usecase contains application business logic services.
package usecase

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/hireline/hireline/internal/adapter/observability"
	"github.com/hireline/hireline/internal/domain"
	"github.com/hireline/hireline/internal/prompt"
)

// PreInterviewService runs the screening stage of the assessment pipeline:
// load application and vacancy, gather profile signals, ship the CV to the
// scoring engine, persist the judgment, and move the application status.
type PreInterviewService struct {
	Apps        domain.ApplicationRepository
	Vacancies   domain.VacancyRepository
	Pre         domain.PreInterviewRepository
	AI          domain.ScoringClient
	Signals     domain.SignalCollector
	Attachments domain.AttachmentLoader
}

// NewPreInterviewService constructs a PreInterviewService with its dependencies.
func NewPreInterviewService(apps domain.ApplicationRepository, vacs domain.VacancyRepository, pre domain.PreInterviewRepository, ai domain.ScoringClient, sig domain.SignalCollector, att domain.AttachmentLoader) PreInterviewService {
	return PreInterviewService{Apps: apps, Vacancies: vacs, Pre: pre, AI: ai, Signals: sig, Attachments: att}
}

// Run executes the screening stage for one application. The judgment row is
// created before the status moves; a failure anywhere leaves the status
// untouched so the stage can be retriggered safely.
func (s PreInterviewService) Run(ctx domain.Context, applicationID int64) error {
	app, err := s.Apps.Get(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("op=preinterview.application: %w", err)
	}
	// Screening only runs on fresh applications. A redelivered task for an
	// application that already advanced must not regress its status.
	if app.Status != domain.StatusPending {
		return fmt.Errorf("op=preinterview.run: %w: status %s", domain.ErrConflict, app.Status)
	}
	vac, err := s.Vacancies.Get(ctx, app.VacancyID)
	if err != nil {
		return fmt.Errorf("op=preinterview.vacancy: %w", err)
	}

	// Signal collection and CV loading are independent; overlap them. Any
	// signal failure degrades to absent signals, never a stage failure.
	var (
		stats *domain.GithubStats
		wg    sync.WaitGroup
	)
	if url := profileGithubURL(app.ProfileURL); url != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st, cerr := s.Signals.Collect(ctx, url)
			if cerr != nil {
				slog.Warn("github signal collection failed",
					slog.Int64("application_id", app.ID),
					slog.Any("error", cerr))
				return
			}
			stats = st
		}()
	}
	att, attErr := s.Attachments.LoadAttachment(app.CVPath)
	wg.Wait()
	if attErr != nil {
		return fmt.Errorf("op=preinterview.attachment: %w", attErr)
	}

	raw, err := s.AI.ScoreJSON(ctx, domain.ScoreRequest{
		System:      prompt.PreInterviewSystem,
		User:        prompt.PreInterviewInstruction(vac, stats),
		Attachments: []domain.Attachment{att},
		SchemaName:  PreInterviewSchemaName,
		Schema:      PreInterviewSchema,
	})
	if err != nil {
		return fmt.Errorf("op=preinterview.score: %w", err)
	}
	var out PreJudgment
	if err := decodeStrict(raw, &out); err != nil {
		return fmt.Errorf("op=preinterview.judgment: %w", err)
	}

	if _, err := s.Pre.Create(ctx, domain.PreInterviewResult{
		ApplicationID: app.ID,
		IsRecommended: out.IsRecommended,
		Score:         out.Score,
		Reason:        out.Reason,
	}); err != nil {
		return fmt.Errorf("op=preinterview.persist: %w", err)
	}
	observability.ObserveScreeningScore(out.Score)

	next := domain.NextAfterScreening(out.IsRecommended)
	if err := s.Apps.UpdateStatus(ctx, app.ID, next); err != nil {
		return fmt.Errorf("op=preinterview.status: %w", err)
	}
	slog.Info("pre-interview assessment complete",
		slog.Int64("application_id", app.ID),
		slog.Bool("is_recommended", out.IsRecommended),
		slog.Float64("score", out.Score),
		slog.String("status", string(next)))
	return nil
}

// profileGithubURL returns the profile URL when it plausibly points at
// GitHub, empty otherwise. Non-GitHub profiles skip signal collection
// entirely and the stage proceeds without signals.
func profileGithubURL(u *string) string {
	if u == nil {
		return ""
	}
	if !strings.Contains(strings.ToLower(*u), "github") {
		return ""
	}
	return *u
}
