package usecase

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hireline/hireline/internal/adapter/observability"
	"github.com/hireline/hireline/internal/domain"
	"github.com/hireline/hireline/internal/prompt"
)

// PostInterviewService runs the post-interview stage: score the interview
// transcript against the vacancy's skill table, persist the judgment and the
// per-skill rows, and settle the application into a terminal status.
type PostInterviewService struct {
	Apps         domain.ApplicationRepository
	Vacancies    domain.VacancyRepository
	Pre          domain.PreInterviewRepository
	Post         domain.PostInterviewRepository
	SkillResults domain.SkillResultRepository
	Messages     domain.InterviewMessageRepository
	AI           domain.ScoringClient
	Attachments  domain.AttachmentLoader
}

// NewPostInterviewService constructs a PostInterviewService with its dependencies.
func NewPostInterviewService(apps domain.ApplicationRepository, vacs domain.VacancyRepository, pre domain.PreInterviewRepository, post domain.PostInterviewRepository, sr domain.SkillResultRepository, msgs domain.InterviewMessageRepository, ai domain.ScoringClient, att domain.AttachmentLoader) PostInterviewService {
	return PostInterviewService{Apps: apps, Vacancies: vacs, Pre: pre, Post: post, SkillResults: sr, Messages: msgs, AI: ai, Attachments: att}
}

// Run executes the post-interview stage for one application. All persistence
// (judgment row, skill rows) happens before the status moves; a failure
// anywhere leaves the status untouched.
func (s PostInterviewService) Run(ctx domain.Context, applicationID int64) error {
	app, err := s.Apps.Get(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("op=postinterview.application: %w", err)
	}
	if app.Status != domain.StatusApprovedForInterview && app.Status != domain.StatusInInterview {
		return fmt.Errorf("op=postinterview.run: %w: status %s", domain.ErrConflict, app.Status)
	}
	vac, err := s.Vacancies.Get(ctx, app.VacancyID)
	if err != nil {
		return fmt.Errorf("op=postinterview.vacancy: %w", err)
	}
	msgs, err := s.Messages.ListByApplication(ctx, app.ID)
	if err != nil {
		return fmt.Errorf("op=postinterview.transcript: %w", err)
	}
	pre, err := s.Pre.GetByApplication(ctx, app.ID)
	if err != nil {
		return fmt.Errorf("op=postinterview.preresult: %w", err)
	}
	att, err := s.Attachments.LoadAttachment(app.CVPath)
	if err != nil {
		return fmt.Errorf("op=postinterview.attachment: %w", err)
	}

	raw, err := s.AI.ScoreJSON(ctx, domain.ScoreRequest{
		System:      prompt.PostInterviewSystem,
		User:        prompt.PostInterviewInstruction(vac, msgs, pre),
		Attachments: []domain.Attachment{att},
		SchemaName:  PostInterviewSchemaName,
		Schema:      PostInterviewSchema,
	})
	if err != nil {
		return fmt.Errorf("op=postinterview.score: %w", err)
	}
	var out PostJudgment
	if err := decodeStrict(raw, &out); err != nil {
		return fmt.Errorf("op=postinterview.judgment: %w", err)
	}

	// Echoed skill identities must come from the vacancy's own skill set;
	// an invented id means the engine broke the contract.
	known := make(map[int64]bool, len(vac.Skills))
	for _, sk := range vac.Skills {
		known[sk.ID] = true
	}
	for _, ss := range out.SkillScores {
		if !known[ss.SkillID] {
			return fmt.Errorf("op=postinterview.judgment: %w: unknown skill_id %d", domain.ErrSchemaInvalid, ss.SkillID)
		}
	}

	score := aggregateScore(out.SkillScores)

	if _, err := s.Post.Create(ctx, domain.PostInterviewResult{
		ApplicationID:     app.ID,
		IsRecommended:     out.IsRecommended,
		Score:             score,
		InterviewSummary:  out.InterviewSummary,
		CandidateResponse: out.CandidateResponse,
		Summary:           out.Summary,
		EmotionalAnalysis: out.EmotionalAnalysis,
		CandidateRoadmap:  out.CandidateRoadmap,
	}); err != nil {
		return fmt.Errorf("op=postinterview.persist: %w", err)
	}
	observability.ObserveInterviewScore(score)

	results := make([]domain.SkillResult, 0, len(out.SkillScores))
	for _, ss := range out.SkillScores {
		results = append(results, domain.SkillResult{
			ApplicationID: app.ID,
			SkillID:       ss.SkillID,
			Score:         ss.Score,
			Weight:        ss.Weight,
		})
	}
	if err := s.SkillResults.BulkCreate(ctx, app.ID, results); err != nil {
		return fmt.Errorf("op=postinterview.skillresults: %w", err)
	}

	next := domain.NextAfterInterview(out.IsRecommended)
	if err := s.Apps.UpdateStatus(ctx, app.ID, next); err != nil {
		return fmt.Errorf("op=postinterview.status: %w", err)
	}
	slog.Info("post-interview assessment complete",
		slog.Int64("application_id", app.ID),
		slog.Bool("is_recommended", out.IsRecommended),
		slog.Float64("score", score),
		slog.Int("skills_scored", len(out.SkillScores)),
		slog.String("status", string(next)))
	return nil
}

// aggregateScore computes the weighted sum over the echoed entries. An empty
// list or a degenerate sum narrows to the 0.0 fallback; the weighted sum is
// taken over the echoed weights, never re-fetched from the vacancy.
func aggregateScore(scores []SkillScore) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	total := 0.0
	for _, s := range scores {
		total += s.Score * s.Weight
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0.0
	}
	return total
}
