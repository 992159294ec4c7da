package app

import (
	"context"
	"fmt"
)

// Pinger is the minimal interface for a database pool capable of Ping.
type Pinger interface{ Ping(ctx context.Context) error }

// RedisPingResult is the minimal return type of a Redis client's Ping.
type RedisPingResult interface{ Err() error }

// RedisClient is the minimal Redis surface needed for readiness.
type RedisClient interface {
	Ping(ctx context.Context) RedisPingResult
}

// KafkaPinger is the minimal broker surface needed for readiness.
type KafkaPinger interface{ Ping(ctx context.Context) error }

// BuildReadinessChecks returns the db, redis and kafka readiness checks.
func BuildReadinessChecks(pool Pinger, rdb RedisClient, kafka KafkaPinger) (
	func(ctx context.Context) error,
	func(ctx context.Context) error,
	func(ctx context.Context) error,
) {
	dbCheck := func(ctx context.Context) error {
		if pool == nil {
			return fmt.Errorf("db not configured")
		}
		return pool.Ping(ctx)
	}
	redisCheck := func(ctx context.Context) error {
		if rdb == nil {
			return fmt.Errorf("redis not configured")
		}
		return rdb.Ping(ctx).Err()
	}
	kafkaCheck := func(ctx context.Context) error {
		if kafka == nil {
			return fmt.Errorf("kafka not configured")
		}
		return kafka.Ping(ctx)
	}
	return dbCheck, redisCheck, kafkaCheck
}
