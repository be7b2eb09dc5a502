// api/middleware/tenant_auth.go
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flexpass/api/audit"
	"github.com/flexpass/api/config"
	flexpass_errors "github.com/flexpass/api/errors"
	logger "github.com/flexpass/api/logging"
	"github.com/flexpass/api/model"
	"github.com/flexpass/api/service"
	"github.com/flexpass/api/util"
)

// TenantHeader names the header carrying the tenant id on tenant-checked
// paths.
const TenantHeader = "X-Tenant-ID"

const requestAuthKey = "flexpass.requestAuth"

// pathClassifier matches request paths against the two configured exemption
// sets. The sets are independent; a path may be in neither, either, or both.
type pathClassifier struct {
	tenantExempt []string
	authExempt   []string
}

func newPathClassifier(cfg config.AuthConfiguration) *pathClassifier {
	return &pathClassifier{
		tenantExempt: cfg.TenantExemptPaths,
		authExempt:   cfg.AuthExemptPaths,
	}
}

func matchesPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (pc *pathClassifier) tenantCheckRequired(path string) bool {
	return !matchesPrefix(path, pc.tenantExempt)
}

func (pc *pathClassifier) authRequired(path string) bool {
	return !matchesPrefix(path, pc.authExempt)
}

// setRequestAuth populates the request's auth context. Called at most once
// per request, by TenantAccess only.
func setRequestAuth(c *gin.Context, rc *model.RequestAuthContext) {
	c.Set(requestAuthKey, rc)
}

// RequestAuth returns the resolved auth context for this request, if one was
// populated. Downstream handlers treat it as read-only.
func RequestAuth(c *gin.Context) (*model.RequestAuthContext, bool) {
	v, exists := c.Get(requestAuthKey)
	if !exists {
		return nil, false
	}
	rc, ok := v.(*model.RequestAuthContext)
	if !ok || rc == nil {
		return nil, false
	}
	return rc, true
}

func clearRequestAuth(c *gin.Context) {
	c.Set(requestAuthKey, (*model.RequestAuthContext)(nil))
}

// TenantAccess is the per-request access resolver. It classifies the path,
// extracts and validates the tenant header, verifies the bearer credential,
// resolves tenant membership through the access cache, and populates the
// request auth context exactly once. The context is discarded on every exit
// path, including handler panics.
func TenantAccess(
	cfg config.AuthConfiguration,
	verifier TokenVerifier,
	access service.IAccessCacheService,
	bus *util.EventBus,
) gin.HandlerFunc {
	classifier := newPathClassifier(cfg)

	return func(c *gin.Context) {
		defer clearRequestAuth(c)

		path := c.Request.URL.Path
		tenantRequired := classifier.tenantCheckRequired(path)
		authRequired := classifier.authRequired(path)

		// Tenant header validation is local and cheap; it runs before any
		// network call.
		var tenantID uint64
		if tenantRequired {
			raw := c.GetHeader(TenantHeader)
			if raw == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": flexpass_errors.ErrTenantHeaderMissing.Error()})
				c.Abort()
				return
			}
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				publishAuthEvent(c, bus, audit.EventInvalidTenantHeader, "", 0, raw)
				c.JSON(http.StatusBadRequest, gin.H{
					"error":  flexpass_errors.ErrTenantHeaderInvalid.Error(),
					"header": raw,
				})
				c.Abort()
				return
			}
			tenantID = parsed
		}

		var subject string
		if authRequired {
			s, err := verifier.Verify(c.Request.Context(), c.GetHeader("Authorization"))
			if err != nil {
				// Verifier rejections pass through unchanged; this layer
				// adds no authentication error kinds of its own.
				if authErr, ok := flexpass_errors.AsAuthenticationError(err); ok {
					c.JSON(authErr.Status, gin.H{"error": authErr.Message})
				} else {
					c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				}
				c.Abort()
				return
			}
			subject = s
		}

		switch {
		case subject != "" && tenantRequired:
			decision, err := access.Resolve(c.Request.Context(), subject, uint(tenantID))
			if errors.Is(err, flexpass_errors.ErrCacheUnavailable) {
				// Fail closed: tenant isolation is never bypassed because
				// the cache store is down.
				logger.Error("Access cache unreachable, denying request",
					zap.String("subject", subject), zap.Uint64("tenant", tenantID), zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": flexpass_errors.ErrCacheUnavailable.Error()})
				c.Abort()
				return
			}
			if err != nil {
				util.RespondWithError(c, http.StatusInternalServerError, "access resolution failed", err)
				c.Abort()
				return
			}
			if !decision.Granted {
				publishAuthEvent(c, bus, audit.EventAccessDenied, subject, uint(tenantID), "")
				c.JSON(http.StatusForbidden, gin.H{"error": flexpass_errors.ErrAccessDenied.Error()})
				c.Abort()
				return
			}
			setRequestAuth(c, &model.RequestAuthContext{
				Identity: decision.Identity,
				Tenant:   decision.Tenant,
				Role:     decision.Role,
			})

		case subject != "":
			// Tenant-exempt path: enrich with the local identity when one
			// exists. A subject without a local record proceeds with an
			// empty context.
			identity, err := access.ResolveIdentity(c.Request.Context(), subject)
			if err == nil && identity != nil {
				setRequestAuth(c, &model.RequestAuthContext{Identity: identity})
			}
		}

		c.Next()
	}
}

func publishAuthEvent(c *gin.Context, bus *util.EventBus, eventType string, subject string, tenantID uint, detail string) {
	if bus == nil {
		return
	}
	bus.Publish(c.Request.Context(), eventType, audit.AuthEvent{
		Timestamp: time.Now(),
		Type:      eventType,
		Subject:   subject,
		TenantID:  tenantID,
		Path:      c.Request.URL.Path,
		ClientIP:  c.ClientIP(),
		Detail:    detail,
	})
}
