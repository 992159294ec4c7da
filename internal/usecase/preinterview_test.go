package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/adapter/observability"
	"github.com/hireline/hireline/internal/domain"
	domainmocks "github.com/hireline/hireline/internal/domain/mocks"
	"github.com/hireline/hireline/internal/usecase"
)

type preDeps struct {
	apps    *domainmocks.ApplicationRepository
	vacs    *domainmocks.VacancyRepository
	pre     *domainmocks.PreInterviewRepository
	ai      *domainmocks.ScoringClient
	signals *domainmocks.SignalCollector
	att     *domainmocks.AttachmentLoader
}

func newPreDeps(t *testing.T) (usecase.PreInterviewService, preDeps) {
	d := preDeps{
		apps:    domainmocks.NewApplicationRepository(t),
		vacs:    domainmocks.NewVacancyRepository(t),
		pre:     domainmocks.NewPreInterviewRepository(t),
		ai:      domainmocks.NewScoringClient(t),
		signals: domainmocks.NewSignalCollector(t),
		att:     domainmocks.NewAttachmentLoader(t),
	}
	svc := usecase.NewPreInterviewService(d.apps, d.vacs, d.pre, d.ai, d.signals, d.att)
	return svc, d
}

func preApplication(profileURL *string) domain.Application {
	return domain.Application{
		ID:         11,
		CVPath:     "files/cv.pdf",
		Status:     domain.StatusPending,
		ProfileURL: profileURL,
		VacancyID:  7,
	}
}

func preVacancy() domain.Vacancy {
	return domain.Vacancy{ID: 7, Name: "Backend Engineer", City: "Berlin"}
}

func strPtr(s string) *string { return &s }

func TestPreInterviewRunRecommended(t *testing.T) {
	t.Parallel()
	svc, d := newPreDeps(t)

	d.apps.EXPECT().Get(mock.Anything, int64(11)).Return(preApplication(nil), nil).Once()
	d.vacs.EXPECT().Get(mock.Anything, int64(7)).Return(preVacancy(), nil).Once()
	d.att.EXPECT().LoadAttachment("files/cv.pdf").Return(domain.Attachment{Filename: "CV.pdf", MIME: "application/pdf"}, nil).Once()
	d.ai.EXPECT().ScoreJSON(mock.Anything, mock.MatchedBy(func(req domain.ScoreRequest) bool {
		return req.SchemaName == usecase.PreInterviewSchemaName &&
			strings.Contains(req.User, "No info found") &&
			len(req.Attachments) == 1
	})).Return(json.RawMessage(`{"is_recommended":true,"score":0.82,"reason":"strong CV"}`), nil).Once()
	d.pre.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r domain.PreInterviewResult) bool {
		return r.ApplicationID == 11 && r.IsRecommended && r.Score == 0.82 && r.Reason == "strong CV"
	})).Return(int64(1), nil).Once()
	d.apps.EXPECT().UpdateStatus(mock.Anything, int64(11), domain.StatusApprovedForInterview).Return(nil).Once()

	require.NoError(t, svc.Run(context.Background(), 11))
}

func TestPreInterviewRunNotRecommended(t *testing.T) {
	t.Parallel()
	svc, d := newPreDeps(t)

	d.apps.EXPECT().Get(mock.Anything, int64(11)).Return(preApplication(nil), nil).Once()
	d.vacs.EXPECT().Get(mock.Anything, int64(7)).Return(preVacancy(), nil).Once()
	d.att.EXPECT().LoadAttachment("files/cv.pdf").Return(domain.Attachment{}, nil).Once()
	d.ai.EXPECT().ScoreJSON(mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"is_recommended":false,"score":0.2,"reason":"insufficient experience"}`), nil).Once()
	d.pre.EXPECT().Create(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	d.apps.EXPECT().UpdateStatus(mock.Anything, int64(11), domain.StatusRejectedForInterview).Return(nil).Once()

	require.NoError(t, svc.Run(context.Background(), 11))
}

func TestPreInterviewScoreOutOfRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
	}{
		{"above one", `{"is_recommended":true,"score":1.5,"reason":"x"}`},
		{"below zero", `{"is_recommended":false,"score":-0.1,"reason":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newPreDeps(t)
			d.apps.EXPECT().Get(mock.Anything, int64(11)).Return(preApplication(nil), nil).Once()
			d.vacs.EXPECT().Get(mock.Anything, int64(7)).Return(preVacancy(), nil).Once()
			d.att.EXPECT().LoadAttachment("files/cv.pdf").Return(domain.Attachment{}, nil).Once()
			d.ai.EXPECT().ScoreJSON(mock.Anything, mock.Anything).Return(json.RawMessage(tt.body), nil).Once()
			// No Create, no UpdateStatus: out-of-range scores are rejected,
			// never clamped, and nothing is persisted.
			err := svc.Run(context.Background(), 11)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrSchemaInvalid)
		})
	}
}

func TestPreInterviewSignalFailureDegradesToAbsent(t *testing.T) {
	t.Parallel()
	svc, d := newPreDeps(t)

	d.apps.EXPECT().Get(mock.Anything, int64(11)).Return(preApplication(strPtr("https://github.com/octocat")), nil).Once()
	d.vacs.EXPECT().Get(mock.Anything, int64(7)).Return(preVacancy(), nil).Once()
	d.signals.EXPECT().Collect(mock.Anything, "https://github.com/octocat").Return(nil, errors.New("upstream 500")).Once()
	d.att.EXPECT().LoadAttachment("files/cv.pdf").Return(domain.Attachment{}, nil).Once()
	d.ai.EXPECT().ScoreJSON(mock.Anything, mock.MatchedBy(func(req domain.ScoreRequest) bool {
		return strings.Contains(req.User, "No info found")
	})).Return(json.RawMessage(`{"is_recommended":true,"score":0.7,"reason":"ok"}`), nil).Once()
	d.pre.EXPECT().Create(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	d.apps.EXPECT().UpdateStatus(mock.Anything, int64(11), domain.StatusApprovedForInterview).Return(nil).Once()

	require.NoError(t, svc.Run(context.Background(), 11))
}

func TestPreInterviewNonGithubProfileSkipsCollection(t *testing.T) {
	t.Parallel()
	svc, d := newPreDeps(t)

	// Collector has no expectations: a non-GitHub profile URL must never
	// reach it, and the stage still completes.
	d.apps.EXPECT().Get(mock.Anything, int64(11)).Return(preApplication(strPtr("https://gitlab.com/someone")), nil).Once()
	d.vacs.EXPECT().Get(mock.Anything, int64(7)).Return(preVacancy(), nil).Once()
	d.att.EXPECT().LoadAttachment("files/cv.pdf").Return(domain.Attachment{}, nil).Once()
	d.ai.EXPECT().ScoreJSON(mock.Anything, mock.MatchedBy(func(req domain.ScoreRequest) bool {
		return strings.Contains(req.User, "No info found")
	})).Return(json.RawMessage(`{"is_recommended":true,"score":0.6,"reason":"ok"}`), nil).Once()
	d.pre.EXPECT().Create(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	d.apps.EXPECT().UpdateStatus(mock.Anything, int64(11), domain.StatusApprovedForInterview).Return(nil).Once()

	require.NoError(t, svc.Run(context.Background(), 11))
}

func TestPreInterviewSignalsIncludedWhenCollected(t *testing.T) {
	t.Parallel()
	svc, d := newPreDeps(t)

	stats := &domain.GithubStats{
		FullName: "The Octocat",
		Rank:     "B+",
		Stats:    []domain.Stat{{Name: "Total Commits", Value: "48"}},
	}
	d.apps.EXPECT().Get(mock.Anything, int64(11)).Return(preApplication(strPtr("https://github.com/octocat/")), nil).Once()
	d.vacs.EXPECT().Get(mock.Anything, int64(7)).Return(preVacancy(), nil).Once()
	d.signals.EXPECT().Collect(mock.Anything, "https://github.com/octocat/").Return(stats, nil).Once()
	d.att.EXPECT().LoadAttachment("files/cv.pdf").Return(domain.Attachment{}, nil).Once()
	d.ai.EXPECT().ScoreJSON(mock.Anything, mock.MatchedBy(func(req domain.ScoreRequest) bool {
		return strings.Contains(req.User, "Total Commits: 48")
	})).Return(json.RawMessage(`{"is_recommended":true,"score":0.75,"reason":"active contributor"}`), nil).Once()
	d.pre.EXPECT().Create(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	d.apps.EXPECT().UpdateStatus(mock.Anything, int64(11), domain.StatusApprovedForInterview).Return(nil).Once()

	require.NoError(t, svc.Run(context.Background(), 11))
}

func TestPreInterviewScoreFailureNothingPersisted(t *testing.T) {
	t.Parallel()
	svc, d := newPreDeps(t)

	d.apps.EXPECT().Get(mock.Anything, int64(11)).Return(preApplication(nil), nil).Once()
	d.vacs.EXPECT().Get(mock.Anything, int64(7)).Return(preVacancy(), nil).Once()
	d.att.EXPECT().LoadAttachment("files/cv.pdf").Return(domain.Attachment{}, nil).Once()
	d.ai.EXPECT().ScoreJSON(mock.Anything, mock.Anything).Return(nil, domain.ErrUpstreamTimeout).Once()

	err := svc.Run(context.Background(), 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamTimeout)
}

func TestPreInterviewApplicationMissing(t *testing.T) {
	t.Parallel()
	svc, d := newPreDeps(t)

	d.apps.EXPECT().Get(mock.Anything, int64(99)).Return(domain.Application{}, domain.ErrNotFound).Once()

	err := svc.Run(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPreInterviewRunRejectsAdvancedApplication(t *testing.T) {
	t.Parallel()
	for _, status := range []domain.Status{
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusApprovedForInterview,
		domain.StatusRejectedForInterview,
		domain.StatusInInterview,
	} {
		t.Run(string(status), func(t *testing.T) {
			t.Parallel()
			svc, d := newPreDeps(t)

			app := preApplication(nil)
			app.Status = status
			// Only the load may happen; a redelivered task must neither score
			// again nor move the status backwards.
			d.apps.EXPECT().Get(mock.Anything, int64(11)).Return(app, nil).Once()

			err := svc.Run(context.Background(), 11)
			require.ErrorIs(t, err, domain.ErrConflict)
		})
	}
}

func histogramSamples(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestPreInterviewRunRecordsScreeningScore(t *testing.T) {
	svc, d := newPreDeps(t)

	d.apps.EXPECT().Get(mock.Anything, int64(11)).Return(preApplication(nil), nil).Once()
	d.vacs.EXPECT().Get(mock.Anything, int64(7)).Return(preVacancy(), nil).Once()
	d.att.EXPECT().LoadAttachment("files/cv.pdf").Return(domain.Attachment{}, nil).Once()
	d.ai.EXPECT().ScoreJSON(mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"is_recommended":true,"score":0.75,"reason":"ok"}`), nil).Once()
	d.pre.EXPECT().Create(mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	d.apps.EXPECT().UpdateStatus(mock.Anything, int64(11), domain.StatusApprovedForInterview).Return(nil).Once()

	before := histogramSamples(t, observability.ScreeningScoreHistogram)
	require.NoError(t, svc.Run(context.Background(), 11))
	after := histogramSamples(t, observability.ScreeningScoreHistogram)
	assert.GreaterOrEqual(t, after, before+1)
}
