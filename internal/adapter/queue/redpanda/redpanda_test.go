package redpanda

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/hireline/hireline/internal/domain"
)

type noopHandler struct{}

func (noopHandler) Handle(_ domain.Context, _ domain.AssessmentTask) error { return nil }

func TestNewProducer_RequiresBrokers(t *testing.T) {
	_, err := NewProducer(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no seed brokers")
}

func TestNewConsumer_RequiresBrokers(t *testing.T) {
	_, err := NewConsumer(nil, "workers", noopHandler{}, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no seed brokers")
}

func TestNewConsumer_RequiresGroupID(t *testing.T) {
	_, err := NewConsumerWithTopic([]string{"localhost:19092"}, "", "tx", noopHandler{}, 4, "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group ID")
}

type failingHandler struct{}

func (failingHandler) Handle(_ domain.Context, _ domain.AssessmentTask) error {
	return errors.New("stage blew up")
}

type markerSpy struct {
	marked []*kgo.Record
}

func (m *markerSpy) MarkCommitRecords(rs ...*kgo.Record) {
	m.marked = append(m.marked, rs...)
}

func taskRecord(t *testing.T, task domain.AssessmentTask) *kgo.Record {
	t.Helper()
	payload, err := json.Marshal(task)
	require.NoError(t, err)
	return &kgo.Record{
		Topic:   TopicAssessments,
		Value:   payload,
		Headers: []kgo.RecordHeader{{Key: "task_id", Value: []byte("01TEST")}},
	}
}

func TestHandleRecord_MarksHandledRecord(t *testing.T) {
	spy := &markerSpy{}
	c := &Consumer{handler: noopHandler{}, marker: spy}

	rec := taskRecord(t, domain.AssessmentTask{Stage: domain.StagePreInterview, ApplicationID: 7})
	c.handleRecord(context.Background(), rec)

	require.Len(t, spy.marked, 1)
	assert.Same(t, rec, spy.marked[0])
}

func TestHandleRecord_LeavesFailedRecordUnmarked(t *testing.T) {
	spy := &markerSpy{}
	c := &Consumer{handler: failingHandler{}, marker: spy}

	rec := taskRecord(t, domain.AssessmentTask{Stage: domain.StagePostInterview, ApplicationID: 7})
	c.handleRecord(context.Background(), rec)

	assert.Empty(t, spy.marked)
}

func TestHandleRecord_DropsMalformedRecord(t *testing.T) {
	spy := &markerSpy{}
	c := &Consumer{handler: noopHandler{}, marker: spy}

	// Retrying cannot fix a payload that does not parse; it must be marked
	// past, not redelivered forever.
	c.handleRecord(context.Background(), &kgo.Record{Value: []byte("{not json")})

	assert.Len(t, spy.marked, 1)
}
