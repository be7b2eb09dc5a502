// api/model/identity.go
package model

import "time"

// Identity is the local record for an externally verified caller. Subject is
// the stable identifier minted by the identity provider; it is never
// constructed inside this service.
type Identity struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Subject   string    `json:"subject" gorm:"uniqueIndex;size:255"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tenant is a gym: an isolated customer organization.
type Tenant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:128"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Membership roles within a tenant.
const (
	RoleOwner   = "OWNER"
	RoleTrainer = "TRAINER"
	RoleMember  = "MEMBER"
)

// Membership links an identity to a tenant at a role.
type Membership struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	IdentityID uint      `json:"identity_id" gorm:"index:idx_membership_pair,unique"`
	TenantID   uint      `json:"tenant_id" gorm:"index:idx_membership_pair,unique"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TenantScoped marks entities that carry a tenant id and must always be
// filtered by it. Query helpers dispatch on this capability instead of
// probing struct fields at runtime.
type TenantScoped interface {
	ScopedTenantID() uint
}

func (m Membership) ScopedTenantID() uint { return m.TenantID }
