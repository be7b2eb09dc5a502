// api/dao/tenant_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	flexpass_errors "github.com/flexpass/api/errors"
	"github.com/flexpass/api/model"
)

// ITenantDAO looks up a tenant by its id.
type ITenantDAO interface {
	GetByID(ctx context.Context, tenantID uint) (*model.Tenant, error)
}

type TenantDAO struct {
	DB *gorm.DB
}

func NewTenantDAO(db *gorm.DB) *TenantDAO {
	return &TenantDAO{DB: db}
}

func (dao *TenantDAO) GetByID(ctx context.Context, tenantID uint) (*model.Tenant, error) {
	var tenant model.Tenant
	err := dao.DB.WithContext(ctx).First(&tenant, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, flexpass_errors.ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}
	return &tenant, nil
}
