package redpanda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kotel"
	"go.opentelemetry.io/otel"

	"github.com/hireline/hireline/internal/domain"
)

// TaskHandler processes one assessment task. Implementations must be safe
// for concurrent invocation.
type TaskHandler interface {
	Handle(ctx domain.Context, task domain.AssessmentTask) error
}

// recordMarker marks records as processed so autocommit advances past them.
type recordMarker interface {
	MarkCommitRecords(rs ...*kgo.Record)
}

// Consumer reads assessment tasks from the topic with read-committed
// isolation and dispatches them to the handler with bounded concurrency.
type Consumer struct {
	session        *kgo.GroupTransactSession
	marker         recordMarker
	handler        TaskHandler
	groupID        string
	topic          string
	maxConcurrency int
}

// NewConsumer constructs a Consumer joining the given group.
func NewConsumer(brokers []string, groupID string, handler TaskHandler, maxConcurrency int) (*Consumer, error) {
	return NewConsumerWithTopic(brokers, groupID, "hireline-consumer", handler, maxConcurrency, TopicAssessments)
}

// NewConsumerWithTopic constructs a Consumer on a custom topic and
// transactional ID so tests can isolate themselves.
func NewConsumerWithTopic(brokers []string, groupID, transactionalID string, handler TaskHandler, maxConcurrency int, topic string) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no seed brokers provided")
	}
	if groupID == "" {
		return nil, fmt.Errorf("missing required group ID")
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	tempClient, err := kgo.NewClient(kgo.SeedBrokers(brokers...))
	if err != nil {
		return nil, fmt.Errorf("temp client: %w", err)
	}
	defer tempClient.Close()
	if err := createTopicIfNotExists(context.Background(), tempClient, topic, 8, 1); err != nil {
		slog.Warn("failed to create topic, it may already exist",
			slog.String("topic", topic),
			slog.Any("error", err))
	}

	kotelService := kotel.NewKotel(
		kotel.WithTracer(kotel.NewTracer(
			kotel.TracerProvider(otel.GetTracerProvider()),
		)),
	)

	session, err := kgo.NewGroupTransactSession(
		kgo.SeedBrokers(brokers...),
		kgo.TransactionalID(transactionalID),
		kgo.FetchIsolationLevel(kgo.ReadCommitted()),
		kgo.ConsumerGroup(groupID),
		kgo.ConsumeTopics(topic),
		kgo.RequireStableFetchOffsets(),
		kgo.WithHooks(kotelService.Hooks()...),
		kgo.DialTimeout(10*time.Second),
		kgo.SessionTimeout(30*time.Second),
		kgo.HeartbeatInterval(3*time.Second),
		kgo.RebalanceTimeout(10*time.Second),
		kgo.FetchMaxWait(5*time.Second),
		kgo.AutoCommitMarks(),
		kgo.AutoCommitInterval(1*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("redpanda transactional session: %w", err)
	}

	slog.Info("redpanda consumer created",
		slog.String("group_id", groupID),
		slog.String("topic", topic),
		slog.Int("max_concurrency", maxConcurrency))
	return &Consumer{
		session:        session,
		marker:         session.Client(),
		handler:        handler,
		groupID:        groupID,
		topic:          topic,
		maxConcurrency: maxConcurrency,
	}, nil
}

// Start polls for tasks until ctx is cancelled. Each fetched batch is
// processed concurrently up to the concurrency bound, then waited on before
// the next poll. Only successfully handled records are marked for commit, so
// offsets never advance past unprocessed work.
func (c *Consumer) Start(ctx context.Context) error {
	slog.Info("redpanda consumer starting",
		slog.String("group_id", c.groupID),
		slog.String("topic", c.topic))

	sem := make(chan struct{}, c.maxConcurrency)
	for {
		if ctx.Err() != nil {
			slog.Info("redpanda consumer shutting down")
			return ctx.Err()
		}

		fetches := c.session.PollFetches(ctx)
		if errs := fetches.Errors(); len(errs) > 0 {
			fatal := false
			for _, fe := range errs {
				if ctx.Err() != nil {
					fatal = true
					break
				}
				slog.Error("fetch error",
					slog.String("topic", fe.Topic),
					slog.Int("partition", int(fe.Partition)),
					slog.Any("error", fe.Err))
			}
			if fatal {
				return ctx.Err()
			}
			time.Sleep(2 * time.Second)
			continue
		}

		var wg sync.WaitGroup
		fetches.EachRecord(func(record *kgo.Record) {
			sem <- struct{}{}
			wg.Add(1)
			go func(rec *kgo.Record) {
				defer wg.Done()
				defer func() { <-sem }()
				c.handleRecord(ctx, rec)
			}(record)
		})
		wg.Wait()
	}
}

// errMalformedTask flags payloads that can never succeed; they are marked
// and dropped instead of redelivered.
var errMalformedTask = fmt.Errorf("malformed task payload")

// handleRecord processes one record and marks it for offset commit on
// success. Failed records stay unmarked so a restart redelivers them; the
// stage lock and stage status preconditions make redelivery harmless.
// Malformed payloads are the exception: retrying cannot fix them, so they
// are marked and dropped.
func (c *Consumer) handleRecord(ctx context.Context, rec *kgo.Record) {
	if err := c.processRecord(ctx, rec); err != nil {
		slog.Error("assessment task failed",
			slog.Int64("offset", rec.Offset),
			slog.Int("partition", int(rec.Partition)),
			slog.Any("error", err))
		if !errors.Is(err, errMalformedTask) {
			return
		}
	}
	c.marker.MarkCommitRecords(rec)
}

func (c *Consumer) processRecord(ctx context.Context, record *kgo.Record) error {
	tracer := otel.Tracer("queue.consumer")
	ctx, span := tracer.Start(ctx, "ProcessAssessmentTask")
	defer span.End()

	var task domain.AssessmentTask
	if err := json.Unmarshal(record.Value, &task); err != nil {
		return fmt.Errorf("%w: %v", errMalformedTask, err)
	}

	taskID := ""
	for _, h := range record.Headers {
		if h.Key == "task_id" {
			taskID = string(h.Value)
			break
		}
	}
	lg := slog.With(
		slog.String("task_id", taskID),
		slog.String("stage", string(task.Stage)),
		slog.Int64("application_id", task.ApplicationID))

	lg.Info("processing assessment task")
	if err := c.handler.Handle(ctx, task); err != nil {
		lg.Error("assessment task failed", slog.Any("error", err))
		return err
	}
	lg.Info("assessment task completed")
	return nil
}

// Close closes the consumer session.
func (c *Consumer) Close() error {
	if c.session != nil {
		c.session.Close()
	}
	return nil
}
