// api/dao/scope.go
package dao

import (
	"gorm.io/gorm"

	"github.com/flexpass/api/model"
)

// TenantScope returns a gorm scope filtering rows to one tenant. Apply it to
// every query over a model.TenantScoped entity; entities without the
// capability are tenant-global and must not be filtered.
func TenantScope(tenantID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// IsTenantScoped reports whether the entity carries a tenant id. Dispatch is
// a static type assertion on the capability interface, not a reflective
// probe of struct fields.
func IsTenantScoped(entity any) bool {
	_, ok := entity.(model.TenantScoped)
	return ok
}
