// api/model/request_context.go
package model

// RequestAuthContext carries the resolved identity, tenant and role for the
// lifetime of one request. It is created empty, populated at most once by
// the access middleware, read-only to downstream handlers, and discarded
// unconditionally when the request completes.
type RequestAuthContext struct {
	Identity *Identity `json:"identity,omitempty"`
	Tenant   *Tenant   `json:"tenant,omitempty"`
	Role     string    `json:"role,omitempty"`
}

// Populated reports whether the context carries a resolved identity.
func (rc *RequestAuthContext) Populated() bool {
	return rc != nil && rc.Identity != nil
}
