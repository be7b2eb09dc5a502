// api/dao/identity_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	flexpass_errors "github.com/flexpass/api/errors"
	"github.com/flexpass/api/model"
)

// IIdentityDAO looks up the local identity record for a verified subject.
type IIdentityDAO interface {
	GetBySubject(ctx context.Context, subject string) (*model.Identity, error)
}

type IdentityDAO struct {
	DB *gorm.DB
}

func NewIdentityDAO(db *gorm.DB) *IdentityDAO {
	return &IdentityDAO{DB: db}
}

func (dao *IdentityDAO) GetBySubject(ctx context.Context, subject string) (*model.Identity, error) {
	var identity model.Identity
	err := dao.DB.WithContext(ctx).Where("subject = ?", subject).First(&identity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, flexpass_errors.ErrIdentityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}
	return &identity, nil
}
