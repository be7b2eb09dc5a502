// api/model/access.go
package model

// AccessDecision is the answer to "may subject S act in tenant T, and as
// what role". A denied decision carries no identity, tenant or role; there
// is no partially granted state.
type AccessDecision struct {
	Granted  bool      `json:"granted"`
	Identity *Identity `json:"identity,omitempty"`
	Tenant   *Tenant   `json:"tenant,omitempty"`
	Role     string    `json:"role,omitempty"`
}

// Denied is the canonical denial.
func Denied() AccessDecision {
	return AccessDecision{Granted: false}
}

// GrantedDecision assembles a positive decision.
func GrantedDecision(identity *Identity, tenant *Tenant, role string) AccessDecision {
	return AccessDecision{
		Granted:  true,
		Identity: identity,
		Tenant:   tenant,
		Role:     role,
	}
}
