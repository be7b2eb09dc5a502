// api/service/access_cache.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/flexpass/api/config"
	"github.com/flexpass/api/dao"
	flexpass_errors "github.com/flexpass/api/errors"
	logger "github.com/flexpass/api/logging"
	"github.com/flexpass/api/model"
)

// IAccessCacheService answers "may subject S act in tenant T, and as what
// role", consulting the persistence gateway at most once per TTL window.
type IAccessCacheService interface {
	Resolve(ctx context.Context, subject string, tenantID uint) (model.AccessDecision, error)
	ResolveIdentity(ctx context.Context, subject string) (*model.Identity, error)
}

// cacheEntry is the serialized form of an AccessDecision. Negative entries
// have Granted=false and carry nothing else.
type cacheEntry struct {
	Granted  bool            `json:"granted"`
	Identity *model.Identity `json:"identity,omitempty"`
	Tenant   *model.Tenant   `json:"tenant,omitempty"`
	Role     string          `json:"role,omitempty"`
	CachedAt time.Time       `json:"cached_at"`
}

type AccessCacheService struct {
	redisClient *redis.Client
	identities  dao.IIdentityDAO
	tenants     dao.ITenantDAO
	memberships dao.IMembershipDAO
	ttl         time.Duration
	negativeTTL time.Duration
}

func NewAccessCacheService(
	redisClient *redis.Client,
	identities dao.IIdentityDAO,
	tenants dao.ITenantDAO,
	memberships dao.IMembershipDAO,
	cfg config.AuthConfiguration,
) *AccessCacheService {
	return &AccessCacheService{
		redisClient: redisClient,
		identities:  identities,
		tenants:     tenants,
		memberships: memberships,
		ttl:         cfg.CacheTTL,
		negativeTTL: cfg.NegativeCacheTTL,
	}
}

func accessKey(subject string, tenantID uint) string {
	return fmt.Sprintf("tenant_auth:%s:%d", subject, tenantID)
}

func identityKey(subject string) string {
	return fmt.Sprintf("identity_auth:%s", subject)
}

// Resolve returns the access decision for (subject, tenant). A cache read
// failure is fatal to the caller (fail closed): tenant isolation is never
// silently bypassed because Redis is down. Cache writes are best-effort.
func (s *AccessCacheService) Resolve(ctx context.Context, subject string, tenantID uint) (model.AccessDecision, error) {
	key := accessKey(subject, tenantID)

	val, err := s.redisClient.Get(ctx, key).Result()
	switch {
	case err == nil:
		var entry cacheEntry
		if jsonErr := json.Unmarshal([]byte(val), &entry); jsonErr != nil {
			logger.Warn("Discarding unreadable access cache entry",
				zap.String("key", key), zap.Error(jsonErr))
			break // treat as a miss
		}
		if !entry.Granted {
			return model.Denied(), nil
		}
		return model.GrantedDecision(entry.Identity, entry.Tenant, entry.Role), nil
	case errors.Is(err, redis.Nil):
		// miss
	default:
		return model.Denied(), fmt.Errorf("%w: %v", flexpass_errors.ErrCacheUnavailable, err)
	}

	return s.resolveAuthoritative(ctx, subject, tenantID, key)
}

// resolveAuthoritative performs the three gateway lookups sequentially,
// short-circuiting on the first miss.
func (s *AccessCacheService) resolveAuthoritative(ctx context.Context, subject string, tenantID uint, key string) (model.AccessDecision, error) {
	identity, err := s.identities.GetBySubject(ctx, subject)
	if errors.Is(err, flexpass_errors.ErrIdentityNotFound) {
		s.writeEntry(ctx, key, cacheEntry{Granted: false, CachedAt: time.Now()}, s.negativeTTL)
		return model.Denied(), nil
	}
	if err != nil {
		return model.Denied(), err
	}

	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if errors.Is(err, flexpass_errors.ErrTenantNotFound) {
		s.writeEntry(ctx, key, cacheEntry{Granted: false, CachedAt: time.Now()}, s.negativeTTL)
		return model.Denied(), nil
	}
	if err != nil {
		return model.Denied(), err
	}

	membership, err := s.memberships.GetByIdentityAndTenant(ctx, identity.ID, tenant.ID)
	if errors.Is(err, flexpass_errors.ErrMembershipNotFound) {
		s.writeEntry(ctx, key, cacheEntry{Granted: false, CachedAt: time.Now()}, s.negativeTTL)
		return model.Denied(), nil
	}
	if err != nil {
		return model.Denied(), err
	}

	decision := model.GrantedDecision(identity, tenant, membership.Role)
	s.writeEntry(ctx, key, cacheEntry{
		Granted:  true,
		Identity: identity,
		Tenant:   tenant,
		Role:     membership.Role,
		CachedAt: time.Now(),
	}, s.ttl)
	return decision, nil
}

// writeEntry stores a cache entry. The decision has already been computed
// from the authoritative source, so a failed write is logged and swallowed.
func (s *AccessCacheService) writeEntry(ctx context.Context, key string, entry cacheEntry, ttl time.Duration) {
	data, err := json.Marshal(entry)
	if err != nil {
		logger.Error("Failed to marshal access cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.redisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Warn("Failed to write access cache entry",
			zap.String("key", key), zap.Error(err))
	}
}

// ResolveIdentity memoizes the identity lookup for paths that carry no
// tenant check. This path only enriches the request context, so it fails
// open: cache or gateway trouble degrades to an unpopulated context rather
// than an error, and a missing identity row is tolerated.
func (s *AccessCacheService) ResolveIdentity(ctx context.Context, subject string) (*model.Identity, error) {
	key := identityKey(subject)

	val, err := s.redisClient.Get(ctx, key).Result()
	if err == nil {
		var identity model.Identity
		if jsonErr := json.Unmarshal([]byte(val), &identity); jsonErr == nil {
			return &identity, nil
		}
		logger.Warn("Discarding unreadable identity cache entry", zap.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("Identity cache read failed, falling through to gateway",
			zap.String("key", key), zap.Error(err))
	}

	identity, err := s.identities.GetBySubject(ctx, subject)
	if errors.Is(err, flexpass_errors.ErrIdentityNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Warn("Identity lookup failed on tenant-exempt path",
			zap.String("subject", subject), zap.Error(err))
		return nil, nil
	}

	if data, jsonErr := json.Marshal(identity); jsonErr == nil {
		if setErr := s.redisClient.Set(ctx, key, data, s.ttl).Err(); setErr != nil {
			logger.Warn("Failed to write identity cache entry",
				zap.String("key", key), zap.Error(setErr))
		}
	}
	return identity, nil
}
