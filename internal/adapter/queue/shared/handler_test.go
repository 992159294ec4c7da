package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/domain"
	"github.com/hireline/hireline/internal/domain/mocks"
)

type runnerSpy struct {
	calls []int64
	err   error
}

func (r *runnerSpy) Run(_ domain.Context, applicationID int64) error {
	r.calls = append(r.calls, applicationID)
	return r.err
}

func TestStageHandler_DispatchesPreInterview(t *testing.T) {
	pre := &runnerSpy{}
	post := &runnerSpy{}
	lock := mocks.NewStageLock(t)
	lock.EXPECT().Acquire(mock.Anything, domain.StagePreInterview, int64(7)).Return(true, nil).Once()
	lock.EXPECT().Release(mock.Anything, domain.StagePreInterview, int64(7)).Return(nil).Once()

	h := NewStageHandler(pre, post, lock)
	err := h.Handle(t.Context(), domain.AssessmentTask{Stage: domain.StagePreInterview, ApplicationID: 7})
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, pre.calls)
	assert.Empty(t, post.calls)
}

func TestStageHandler_DispatchesPostInterview(t *testing.T) {
	pre := &runnerSpy{}
	post := &runnerSpy{}
	lock := mocks.NewStageLock(t)
	lock.EXPECT().Acquire(mock.Anything, domain.StagePostInterview, int64(9)).Return(true, nil).Once()
	lock.EXPECT().Release(mock.Anything, domain.StagePostInterview, int64(9)).Return(nil).Once()

	h := NewStageHandler(pre, post, lock)
	err := h.Handle(t.Context(), domain.AssessmentTask{Stage: domain.StagePostInterview, ApplicationID: 9})
	require.NoError(t, err)
	assert.Empty(t, pre.calls)
	assert.Equal(t, []int64{9}, post.calls)
}

func TestStageHandler_SkipsWhenLockHeld(t *testing.T) {
	pre := &runnerSpy{}
	lock := mocks.NewStageLock(t)
	lock.EXPECT().Acquire(mock.Anything, domain.StagePreInterview, int64(7)).Return(false, nil).Once()

	h := NewStageHandler(pre, &runnerSpy{}, lock)
	err := h.Handle(t.Context(), domain.AssessmentTask{Stage: domain.StagePreInterview, ApplicationID: 7})
	require.NoError(t, err)
	assert.Empty(t, pre.calls, "held lock means no run")
}

func TestStageHandler_ReleasesLockOnFailure(t *testing.T) {
	pre := &runnerSpy{err: errors.New("scoring failed")}
	lock := mocks.NewStageLock(t)
	lock.EXPECT().Acquire(mock.Anything, domain.StagePreInterview, int64(7)).Return(true, nil).Once()
	lock.EXPECT().Release(mock.Anything, domain.StagePreInterview, int64(7)).Return(nil).Once()

	h := NewStageHandler(pre, &runnerSpy{}, lock)
	err := h.Handle(t.Context(), domain.AssessmentTask{Stage: domain.StagePreInterview, ApplicationID: 7})
	require.Error(t, err)
}

func TestStageHandler_UnknownStage(t *testing.T) {
	lock := mocks.NewStageLock(t)
	h := NewStageHandler(&runnerSpy{}, &runnerSpy{}, lock)

	err := h.Handle(t.Context(), domain.AssessmentTask{Stage: "mystery", ApplicationID: 7})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestStageHandler_LockErrorPropagates(t *testing.T) {
	lock := mocks.NewStageLock(t)
	lock.EXPECT().Acquire(mock.Anything, domain.StagePreInterview, int64(7)).Return(false, errors.New("redis down")).Once()

	h := NewStageHandler(&runnerSpy{}, &runnerSpy{}, lock)
	err := h.Handle(t.Context(), domain.AssessmentTask{Stage: domain.StagePreInterview, ApplicationID: 7})
	require.Error(t, err)
}
