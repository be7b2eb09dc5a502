// api/dao/membership_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	flexpass_errors "github.com/flexpass/api/errors"
	"github.com/flexpass/api/model"
)

// IMembershipDAO looks up the membership linking an identity to a tenant.
type IMembershipDAO interface {
	GetByIdentityAndTenant(ctx context.Context, identityID, tenantID uint) (*model.Membership, error)
}

type MembershipDAO struct {
	DB *gorm.DB
}

func NewMembershipDAO(db *gorm.DB) *MembershipDAO {
	return &MembershipDAO{DB: db}
}

func (dao *MembershipDAO) GetByIdentityAndTenant(ctx context.Context, identityID, tenantID uint) (*model.Membership, error) {
	var membership model.Membership
	err := dao.DB.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("identity_id = ?", identityID).
		First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, flexpass_errors.ErrMembershipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up membership: %w", err)
	}
	return &membership, nil
}
