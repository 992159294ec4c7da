package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/app"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type redisStub struct{ err error }

func (r redisStub) Ping(context.Context) app.RedisPingResult { return r }
func (r redisStub) Err() error                               { return r.err }

func TestBuildReadinessChecksNilDeps(t *testing.T) {
	db, redis, kafka := app.BuildReadinessChecks(nil, nil, nil)
	ctx := context.Background()

	require.Error(t, db(ctx))
	require.Error(t, redis(ctx))
	require.Error(t, kafka(ctx))
}

func TestBuildReadinessChecksDelegate(t *testing.T) {
	ok := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("unreachable") })

	db, redis, kafka := app.BuildReadinessChecks(ok, redisStub{}, down)
	ctx := context.Background()

	assert.NoError(t, db(ctx))
	assert.NoError(t, redis(ctx))
	assert.ErrorContains(t, kafka(ctx), "unreachable")
}
