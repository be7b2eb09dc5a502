// api/service/rate_limit.go
package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/flexpass/api/config"
	logger "github.com/flexpass/api/logging"
)

// IRateLimitService bounds how often a named sensitive operation may run per
// identifier within a fixed window.
type IRateLimitService interface {
	Allow(ctx context.Context, operation, identifier string) (bool, error)
	Limit(operation string) (config.OperationLimit, bool)
}

type RateLimitService struct {
	redisClient *redis.Client
	operations  map[string]config.OperationLimit
}

func NewRateLimitService(redisClient *redis.Client, cfg config.RateLimitConfiguration) *RateLimitService {
	return &RateLimitService{
		redisClient: redisClient,
		operations:  cfg.Operations,
	}
}

func counterKey(operation, identifier string) string {
	return fmt.Sprintf("rate_limit:%s:%s", operation, identifier)
}

// Allow reports whether the operation may proceed for the identifier.
//
// Operations absent from the configured table are permitted without a store
// round trip. For configured operations any store error denies the call
// (fail closed); this asymmetry is deliberate: an unclassified operation was
// never meant to be bounded, while a classified one must not slip through on
// outage. The server-side INCR is the sole source of truth for the count —
// the TTL bookkeeping only scopes the window, so a redundant EXPIRE from a
// concurrent racer on a fresh key is harmless.
func (s *RateLimitService) Allow(ctx context.Context, operation, identifier string) (bool, error) {
	limit, classified := s.operations[operation]
	if !classified {
		return true, nil
	}

	key := counterKey(operation, identifier)

	// INCR and TTL must reach the server in one batched round trip so no
	// other client's command interleaves between them.
	pipe := s.redisClient.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	if ttl.Val() < 0 {
		// Fresh key, no expiry set yet.
		if err := s.redisClient.Expire(ctx, key, limit.Window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	count := incr.Val()
	allowed := count <= int64(limit.MaxAttempts)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit.MaxAttempts),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

// Limit exposes the configured bound for an operation, for response headers.
func (s *RateLimitService) Limit(operation string) (config.OperationLimit, bool) {
	limit, ok := s.operations[operation]
	return limit, ok
}
