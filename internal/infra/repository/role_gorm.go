package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/easyscheduler/admin-backend/internal/domain/privilege"
	"github.com/easyscheduler/admin-backend/internal/models"
)

// RoleGormStore loads a role row and exposes its page columns as an explicit
// privilege map.
type RoleGormStore struct {
	db *gorm.DB
}

func NewRoleGormStore(db *gorm.DB) *RoleGormStore {
	return &RoleGormStore{db: db}
}

func (s *RoleGormStore) PrivilegeMap(
	ctx context.Context,
	roleSlug string,
) (map[privilege.Page]privilege.Level, error) {

	var role models.Role
	err := s.db.WithContext(ctx).
		Where("slug = ?", roleSlug).
		First(&role).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, privilege.ErrRoleNotFound
	}
	if err != nil {
		return nil, err
	}

	return map[privilege.Page]privilege.Level{
		privilege.PageAppointments:   privilege.Level(role.Appointments),
		privilege.PageCustomers:      privilege.Level(role.Customers),
		privilege.PageServices:       privilege.Level(role.Services),
		privilege.PageUsers:          privilege.Level(role.Users),
		privilege.PageSystemSettings: privilege.Level(role.SystemSettings),
		privilege.PageUserSettings:   privilege.Level(role.UserSettings),
	}, nil
}

// Compile-time check
var _ privilege.Store = (*RoleGormStore)(nil)
