// api/dao/dao_test.go
package dao_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/flexpass/api/dao"
	flexpass_errors "github.com/flexpass/api/errors"
	"github.com/flexpass/api/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.Identity{}, &model.Tenant{}, &model.Membership{}))
	return gdb
}

func seed(t *testing.T, gdb *gorm.DB) (*model.Identity, *model.Tenant, *model.Membership) {
	t.Helper()
	identity := &model.Identity{Subject: "u1", Email: "u1@example.com", FullName: "Uma One"}
	require.NoError(t, gdb.Create(identity).Error)

	tenant := &model.Tenant{Name: "Iron Temple", Slug: "iron-temple", Active: true}
	require.NoError(t, gdb.Create(tenant).Error)

	membership := &model.Membership{IdentityID: identity.ID, TenantID: tenant.ID, Role: model.RoleTrainer}
	require.NoError(t, gdb.Create(membership).Error)

	return identity, tenant, membership
}

func TestIdentityDAO_GetBySubject(t *testing.T) {
	gdb := newTestDB(t)
	identity, _, _ := seed(t, gdb)
	idao := dao.NewIdentityDAO(gdb)

	got, err := idao.GetBySubject(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, identity.ID, got.ID)
	assert.Equal(t, "u1@example.com", got.Email)

	_, err = idao.GetBySubject(context.Background(), "ghost")
	assert.ErrorIs(t, err, flexpass_errors.ErrIdentityNotFound)
}

func TestTenantDAO_GetByID(t *testing.T) {
	gdb := newTestDB(t)
	_, tenant, _ := seed(t, gdb)
	tdao := dao.NewTenantDAO(gdb)

	got, err := tdao.GetByID(context.Background(), tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "iron-temple", got.Slug)

	_, err = tdao.GetByID(context.Background(), tenant.ID+100)
	assert.ErrorIs(t, err, flexpass_errors.ErrTenantNotFound)
}

func TestMembershipDAO_GetByIdentityAndTenant(t *testing.T) {
	gdb := newTestDB(t)
	identity, tenant, membership := seed(t, gdb)
	mdao := dao.NewMembershipDAO(gdb)

	got, err := mdao.GetByIdentityAndTenant(context.Background(), identity.ID, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, membership.ID, got.ID)
	assert.Equal(t, model.RoleTrainer, got.Role)
}

func TestMembershipDAO_ScopedToTenant(t *testing.T) {
	gdb := newTestDB(t)
	identity, tenant, _ := seed(t, gdb)
	mdao := dao.NewMembershipDAO(gdb)

	other := &model.Tenant{Name: "Flex Factory", Slug: "flex-factory", Active: true}
	require.NoError(t, gdb.Create(other).Error)

	// The identity belongs to the first tenant only; the scope must keep
	// the membership from leaking into the other tenant's queries.
	_, err := mdao.GetByIdentityAndTenant(context.Background(), identity.ID, other.ID)
	assert.ErrorIs(t, err, flexpass_errors.ErrMembershipNotFound)

	got, err := mdao.GetByIdentityAndTenant(context.Background(), identity.ID, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, got.TenantID)
}

func TestIsTenantScoped(t *testing.T) {
	assert.True(t, dao.IsTenantScoped(model.Membership{}))
	assert.False(t, dao.IsTenantScoped(model.Identity{}))
	assert.False(t, dao.IsTenantScoped(model.Tenant{}))
}
