package usecase

import (
	"fmt"

	"github.com/hireline/hireline/internal/domain"
)

// ResultService reads assessment outcomes.
type ResultService struct {
	Apps         domain.ApplicationRepository
	Pre          domain.PreInterviewRepository
	Post         domain.PostInterviewRepository
	SkillResults domain.SkillResultRepository
	Messages     domain.InterviewMessageRepository
}

// NewResultService constructs a ResultService with its dependencies.
func NewResultService(apps domain.ApplicationRepository, pre domain.PreInterviewRepository, post domain.PostInterviewRepository, sr domain.SkillResultRepository, msgs domain.InterviewMessageRepository) ResultService {
	return ResultService{Apps: apps, Pre: pre, Post: post, SkillResults: sr, Messages: msgs}
}

// PostInterviewView bundles the post-interview judgment with its per-skill
// rows and the transcript it was scored over.
type PostInterviewView struct {
	Result      domain.PostInterviewResult
	SkillScores []domain.SkillResult
	Transcript  []domain.InterviewMessage
}

// PreResult returns the screening judgment for an application.
func (s ResultService) PreResult(ctx domain.Context, applicationID int64) (domain.PreInterviewResult, error) {
	if _, err := s.Apps.Get(ctx, applicationID); err != nil {
		return domain.PreInterviewResult{}, fmt.Errorf("op=result.pre: %w", err)
	}
	return s.Pre.GetByApplication(ctx, applicationID)
}

// PostResult returns the post-interview judgment with skill rows and transcript.
func (s ResultService) PostResult(ctx domain.Context, applicationID int64) (PostInterviewView, error) {
	if _, err := s.Apps.Get(ctx, applicationID); err != nil {
		return PostInterviewView{}, fmt.Errorf("op=result.post: %w", err)
	}
	res, err := s.Post.GetByApplication(ctx, applicationID)
	if err != nil {
		return PostInterviewView{}, fmt.Errorf("op=result.post: %w", err)
	}
	skills, err := s.SkillResults.ListByApplication(ctx, applicationID)
	if err != nil {
		return PostInterviewView{}, fmt.Errorf("op=result.post.skills: %w", err)
	}
	msgs, err := s.Messages.ListByApplication(ctx, applicationID)
	if err != nil {
		return PostInterviewView{}, fmt.Errorf("op=result.post.transcript: %w", err)
	}
	return PostInterviewView{Result: res, SkillScores: skills, Transcript: msgs}, nil
}
