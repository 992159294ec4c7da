// Package redpanda provides Redpanda/Kafka queue integration for assessment
// tasks. Messages are produced transactionally and consumed with
// read-committed isolation; delivery is at-least-once, with handled offsets
// committed after processing and redeliveries fenced downstream by the stage
// lock and stage status preconditions.
package redpanda

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/oklog/ulid/v2"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/hireline/hireline/internal/adapter/observability"
	"github.com/hireline/hireline/internal/domain"
)

// TopicAssessments is the Kafka topic carrying assessment stage triggers.
const TopicAssessments = "assessment-tasks"

// Producer wraps a transactional Kafka producer and implements domain.Queue.
type Producer struct {
	client *kgo.Client
	topic  string
	// Serializes transactions; the client allows one open transaction at a
	// time per transactional ID.
	txSlot chan struct{}
}

// NewProducer constructs a Producer with exactly-once semantics.
func NewProducer(brokers []string) (*Producer, error) {
	return NewProducerWithOptions(brokers, "hireline-producer", TopicAssessments)
}

// NewProducerWithOptions constructs a Producer with a custom transactional ID
// and topic, which keeps parallel test runs isolated.
func NewProducerWithOptions(brokers []string, transactionalID, topic string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no seed brokers provided")
	}
	slog.Info("creating redpanda producer",
		slog.Any("brokers", brokers),
		slog.String("transactional_id", transactionalID))

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.TransactionalID(transactionalID),
		kgo.RequestRetries(10),
		kgo.ProducerBatchMaxBytes(1000000),
	)
	if err != nil {
		return nil, fmt.Errorf("redpanda client: %w", err)
	}

	if err := createTopicIfNotExists(context.Background(), client, topic, 8, 1); err != nil {
		slog.Warn("failed to create topic, it may already exist",
			slog.String("topic", topic),
			slog.Any("error", err))
	}

	return &Producer{
		client: client,
		topic:  topic,
		txSlot: make(chan struct{}, 1),
	}, nil
}

// EnqueueAssessment publishes one stage trigger inside a transaction and
// returns the generated task id.
func (p *Producer) EnqueueAssessment(ctx domain.Context, task domain.AssessmentTask) (string, error) {
	taskID := ulid.Make().String()
	appID := strconv.FormatInt(task.ApplicationID, 10)

	select {
	case p.txSlot <- struct{}{}:
		defer func() { <-p.txSlot }()
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if err := p.client.BeginTransaction(); err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}

	b, err := json.Marshal(task)
	if err != nil {
		p.abort(ctx)
		return "", fmt.Errorf("marshal task: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		// Application id as key keeps one application's stages ordered.
		Key:   []byte(appID),
		Value: b,
		Headers: []kgo.RecordHeader{
			{Key: "task_id", Value: []byte(taskID)},
			{Key: "stage", Value: []byte(task.Stage)},
			{Key: "application_id", Value: []byte(appID)},
		},
	}

	e := kgo.AbortingFirstErrPromise(p.client)
	p.client.Produce(ctx, record, e.Promise())
	if err := e.Err(); err != nil {
		p.abort(ctx)
		return "", fmt.Errorf("produce: %w", err)
	}

	if err := p.client.EndTransaction(ctx, kgo.TryCommit); err != nil {
		return "", fmt.Errorf("commit transaction: %w", err)
	}

	observability.EnqueueAssessment(string(task.Stage))
	slog.Info("assessment task enqueued",
		slog.String("task_id", taskID),
		slog.String("stage", string(task.Stage)),
		slog.Int64("application_id", task.ApplicationID),
		slog.String("topic", p.topic))
	return taskID, nil
}

func (p *Producer) abort(ctx context.Context) {
	if err := p.client.EndTransaction(ctx, kgo.TryAbort); err != nil {
		slog.Error("failed to abort transaction", slog.Any("error", err))
	}
}

// Ping verifies broker connectivity, used by the readiness endpoint.
func (p *Producer) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Close closes the producer.
func (p *Producer) Close() error {
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
