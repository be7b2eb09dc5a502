// api/audit/model.go
package audit

import "time"

// Event types published on the bus and indexed for review.
const (
	EventAccessDenied        = "auth.access_denied"
	EventInvalidTenantHeader = "auth.invalid_tenant_header"
	EventRateLimited         = "auth.rate_limited"
)

// AuthEvent records one rejected request on the access path.
type AuthEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Subject   string    `json:"subject,omitempty"`
	TenantID  uint      `json:"tenant_id,omitempty"`
	Path      string    `json:"path"`
	ClientIP  string    `json:"client_ip"`
	Detail    string    `json:"detail,omitempty"`
}
