package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/domain"
	"github.com/hireline/hireline/internal/domain/mocks"
	"github.com/hireline/hireline/internal/usecase"
)

func TestPreResult(t *testing.T) {
	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Get(mock.Anything, int64(7)).Return(domain.Application{ID: 7}, nil)
	pre := mocks.NewPreInterviewRepository(t)
	pre.EXPECT().GetByApplication(mock.Anything, int64(7)).Return(domain.PreInterviewResult{
		ApplicationID: 7,
		IsRecommended: true,
		Score:         0.72,
	}, nil)

	svc := usecase.ResultService{Apps: apps, Pre: pre}
	res, err := svc.PreResult(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, res.IsRecommended)
	assert.InDelta(t, 0.72, res.Score, 1e-9)
}

func TestPreResultUnknownApplication(t *testing.T) {
	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Get(mock.Anything, int64(7)).Return(domain.Application{}, domain.ErrNotFound)

	svc := usecase.ResultService{Apps: apps}
	_, err := svc.PreResult(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostResultBundlesView(t *testing.T) {
	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Get(mock.Anything, int64(7)).Return(domain.Application{ID: 7}, nil)
	post := mocks.NewPostInterviewRepository(t)
	post.EXPECT().GetByApplication(mock.Anything, int64(7)).Return(domain.PostInterviewResult{
		ApplicationID: 7,
		Score:         0.64,
	}, nil)
	skills := mocks.NewSkillResultRepository(t)
	skills.EXPECT().ListByApplication(mock.Anything, int64(7)).Return([]domain.SkillResult{
		{SkillID: 1, Score: 0.8, Weight: 0.6},
		{SkillID: 2, Score: 0.4, Weight: 0.4},
	}, nil)
	msgs := mocks.NewInterviewMessageRepository(t)
	msgs.EXPECT().ListByApplication(mock.Anything, int64(7)).Return([]domain.InterviewMessage{
		{ID: 1, Role: domain.RoleAssistant, Message: "расскажите о себе"},
	}, nil)

	svc := usecase.ResultService{Apps: apps, Post: post, SkillResults: skills, Messages: msgs}
	view, err := svc.PostResult(context.Background(), 7)
	require.NoError(t, err)
	assert.InDelta(t, 0.64, view.Result.Score, 1e-9)
	assert.Len(t, view.SkillScores, 2)
	assert.Len(t, view.Transcript, 1)
}

func TestPostResultNotScoredYet(t *testing.T) {
	apps := mocks.NewApplicationRepository(t)
	apps.EXPECT().Get(mock.Anything, int64(7)).Return(domain.Application{ID: 7}, nil)
	post := mocks.NewPostInterviewRepository(t)
	post.EXPECT().GetByApplication(mock.Anything, int64(7)).Return(domain.PostInterviewResult{}, domain.ErrNotFound)

	svc := usecase.ResultService{Apps: apps, Post: post}
	_, err := svc.PostResult(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
