// Package redis implements the assessment stage lock on Redis SET NX.
package redis

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hireline/hireline/internal/domain"
)

// StageLock guards against concurrent re-entry of the same assessment stage
// for the same application. The TTL bounds lock leakage when a worker dies
// mid-run.
type StageLock struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStageLock constructs a StageLock with the given lease TTL.
func NewStageLock(rdb *redis.Client, ttl time.Duration) *StageLock {
	return &StageLock{rdb: rdb, ttl: ttl}
}

func lockKey(stage domain.Stage, applicationID int64) string {
	return fmt.Sprintf("assessment:lock:%s:%d", stage, applicationID)
}

// Acquire attempts to take the stage lock. It returns false without error
// when another run already holds it.
func (l *StageLock) Acquire(ctx domain.Context, stage domain.Stage, applicationID int64) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, lockKey(stage, applicationID), "1", l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("op=lock.acquire: %w", err)
	}
	return ok, nil
}

// Release drops the stage lock. Releasing an expired or absent lock is a
// no-op.
func (l *StageLock) Release(ctx domain.Context, stage domain.Stage, applicationID int64) error {
	if err := l.rdb.Del(ctx, lockKey(stage, applicationID)).Err(); err != nil {
		slog.Warn("stage lock release failed",
			slog.String("stage", string(stage)),
			slog.Int64("application_id", applicationID),
			slog.Any("error", err))
		return fmt.Errorf("op=lock.release: %w", err)
	}
	return nil
}
