// api/service/rate_limit_test.go
package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexpass/api/config"
	"github.com/flexpass/api/service"
)

func newLimiter(t *testing.T, mr *miniredis.Miniredis, ops map[string]config.OperationLimit) *service.RateLimitService {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return service.NewRateLimitService(client, config.RateLimitConfiguration{Operations: ops})
}

func TestAllow_WithinLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter := newLimiter(t, mr, map[string]config.OperationLimit{
		"password_reset": {MaxAttempts: 3, Window: time.Hour},
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "password_reset", "u1@example.com")
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "password_reset", "u1@example.com")
	require.NoError(t, err)
	assert.False(t, allowed, "attempt past the limit must be denied")
}

func TestAllow_SeparateIdentifiers(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter := newLimiter(t, mr, map[string]config.OperationLimit{
		"password_reset": {MaxAttempts: 1, Window: time.Hour},
	})

	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "password_reset", "a@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)

	// A different identifier has its own counter.
	allowed, err = limiter.Allow(ctx, "password_reset", "b@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "password_reset", "a@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestAllow_WindowResets(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter := newLimiter(t, mr, map[string]config.OperationLimit{
		"password_reset": {MaxAttempts: 2, Window: time.Minute},
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "password_reset", "u1@example.com")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "password_reset", "u1@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Once the window expires the counter restarts at 1.
	mr.FastForward(2 * time.Minute)

	allowed, err = limiter.Allow(ctx, "password_reset", "u1@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)

	count, err := mr.Get("rate_limit:password_reset:u1@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", count)
}

func TestAllow_UnclassifiedOperation_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter := newLimiter(t, mr, map[string]config.OperationLimit{})

	// Even with the store down, unclassified operations pass.
	mr.Close()

	allowed, err := limiter.Allow(context.Background(), "unknown_op", "u1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllow_StoreError_FailsClosed(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter := newLimiter(t, mr, map[string]config.OperationLimit{
		"password_reset": {MaxAttempts: 3, Window: time.Hour},
	})
	mr.Close()

	allowed, err := limiter.Allow(context.Background(), "password_reset", "u1@example.com")
	require.Error(t, err)
	assert.False(t, allowed)
}

func TestAllow_ConcurrentColdKey_ExactlyNAllowed(t *testing.T) {
	const (
		maxAttempts = 5
		callers     = 20
	)

	mr := miniredis.RunT(t)
	limiter := newLimiter(t, mr, map[string]config.OperationLimit{
		"password_reset": {MaxAttempts: maxAttempts, Window: time.Hour},
	})

	var (
		wg          sync.WaitGroup
		allowedCnt  int64
		deniedCnt   int64
		unexpectedE int64
	)
	start := make(chan struct{})

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			allowed, err := limiter.Allow(context.Background(), "password_reset", "u1@example.com")
			switch {
			case err != nil:
				atomic.AddInt64(&unexpectedE, 1)
			case allowed:
				atomic.AddInt64(&allowedCnt, 1)
			default:
				atomic.AddInt64(&deniedCnt, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	// The server-side INCR hands every caller a distinct count: exactly N
	// allowed, K-N denied, regardless of who sets the TTL first.
	assert.EqualValues(t, 0, unexpectedE)
	assert.EqualValues(t, maxAttempts, allowedCnt)
	assert.EqualValues(t, callers-maxAttempts, deniedCnt)
}

func TestLimit_ExposesConfiguredBound(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter := newLimiter(t, mr, map[string]config.OperationLimit{
		"password_reset": {MaxAttempts: 3, Window: time.Hour},
	})

	limit, ok := limiter.Limit("password_reset")
	require.True(t, ok)
	assert.Equal(t, 3, limit.MaxAttempts)
	assert.Equal(t, time.Hour, limit.Window)

	_, ok = limiter.Limit("unknown_op")
	assert.False(t, ok)
}
