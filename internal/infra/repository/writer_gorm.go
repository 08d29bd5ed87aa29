package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/easyscheduler/admin-backend/internal/domain/writer"
	"github.com/easyscheduler/admin-backend/internal/models"
)

// settingColumns whitelists the names GetSettingValue/SetSettingValue may
// touch. Anything else is rejected before it reaches SQL.
var settingColumns = map[string]bool{
	"username":      true,
	"password":      true,
	"salt":          true,
	"notifications": true,
}

type WriterGormRepository struct {
	db *gorm.DB
}

func NewWriterGormRepository(db *gorm.DB) *WriterGormRepository {
	return &WriterGormRepository{db: db}
}

// --------------------------------------------------
// Identity resolution (scoped to the writer role)
// --------------------------------------------------

func (r *WriterGormRepository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.id_role").
		Where("users.email = ? AND roles.slug = ?", email, models.RoleWriter).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *WriterGormRepository) FindIDByEmail(
	ctx context.Context,
	email string,
) (uint, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN roles ON roles.id = users.id_role").
		Where("users.email = ? AND roles.slug = ?", email, models.RoleWriter).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// --------------------------------------------------
// Uniqueness pre-checks
// --------------------------------------------------

func (r *WriterGormRepository) UserExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *WriterGormRepository) EmailTakenByOther(
	ctx context.Context,
	email string,
	selfID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.id_role").
		Where("users.email = ? AND roles.slug = ? AND users.id <> ?",
			email, models.RoleWriter, selfID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *WriterGormRepository) UsernameTakenByOther(
	ctx context.Context,
	username string,
	selfID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserSettings{}).
		Where("username = ? AND id_user <> ?", username, selfID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Core fields
// --------------------------------------------------

func (r *WriterGormRepository) WriterRoleID(ctx context.Context) (uint, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).
		Where("slug = ?", models.RoleWriter).
		First(&role).Error; err != nil {
		return 0, err
	}
	return role.ID, nil
}

func (r *WriterGormRepository) InsertUser(
	ctx context.Context,
	u *models.User,
) error {
	return translateUniqueViolation(
		r.db.WithContext(ctx).Create(u).Error,
	)
}

func (r *WriterGormRepository) UpdateUser(
	ctx context.Context,
	u *models.User,
) error {
	return translateUniqueViolation(
		r.db.WithContext(ctx).
			Model(&models.User{}).
			Where("id = ?", u.ID).
			Updates(map[string]any{
				"first_name":    u.FirstName,
				"last_name":     u.LastName,
				"email":         u.Email,
				"mobile_number": u.MobileNumber,
				"phone_number":  u.PhoneNumber,
				"address":       u.Address,
				"city":          u.City,
				"state":         u.State,
				"zip_code":      u.ZipCode,
				"notes":         u.Notes,
			}).Error,
	)
}

// DeleteUser removes the user row together with its settings and provider
// associations. Returns false when the id matches nothing.
func (r *WriterGormRepository) DeleteUser(
	ctx context.Context,
	id uint,
) (bool, error) {

	exists, err := r.UserExists(ctx, id)
	if err != nil || !exists {
		return false, err
	}

	if err := r.db.WithContext(ctx).
		Where("id_user_writer = ?", id).
		Delete(&models.WriterProvider{}).Error; err != nil {
		return false, err
	}

	if err := r.db.WithContext(ctx).
		Where("id_user = ?", id).
		Delete(&models.UserSettings{}).Error; err != nil {
		return false, err
	}

	if err := r.db.WithContext(ctx).
		Delete(&models.User{}, id).Error; err != nil {
		return false, err
	}

	return true, nil
}

func (r *WriterGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *WriterGormRepository) ListUsers(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.User, error) {

	q := r.db.WithContext(ctx).
		Joins("JOIN roles ON roles.id = users.id_role").
		Where("roles.slug = ?", models.RoleWriter)

	if query := strings.ToLower(strings.TrimSpace(filter.Query)); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(users.email) LIKE ?",
			like, like, like,
		)
	}

	var users []models.User
	if err := q.Order("users.last_name ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// --------------------------------------------------
// Provider associations
// --------------------------------------------------

func (r *WriterGormRepository) ProviderIDs(
	ctx context.Context,
	writerID uint,
) ([]uint, error) {

	var links []models.WriterProvider
	if err := r.db.WithContext(ctx).
		Where("id_user_writer = ?", writerID).
		Order("id_user_provider ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.ProviderID)
	}
	return ids, nil
}

// ReplaceProviders swaps the association set wholesale: delete everything for
// the writer, then insert one row per distinct id. Callers run this inside
// InTx so readers never see the empty window.
func (r *WriterGormRepository) ReplaceProviders(
	ctx context.Context,
	writerID uint,
	providerIDs []uint,
) error {

	if err := r.db.WithContext(ctx).
		Where("id_user_writer = ?", writerID).
		Delete(&models.WriterProvider{}).Error; err != nil {
		return err
	}

	seen := make(map[uint]bool, len(providerIDs))
	for _, providerID := range providerIDs {
		if seen[providerID] {
			continue
		}
		seen[providerID] = true

		link := models.WriterProvider{
			WriterID:   writerID,
			ProviderID: providerID,
		}
		if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
			return err
		}
	}

	return nil
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *WriterGormRepository) GetSettings(
	ctx context.Context,
	writerID uint,
) (*models.UserSettings, error) {

	var settings models.UserSettings
	err := r.db.WithContext(ctx).
		Where("id_user = ?", writerID).
		First(&settings).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// SaveSettings creates the settings row when missing, then writes the
// non-nil patch fields column by column.
func (r *WriterGormRepository) SaveSettings(
	ctx context.Context,
	writerID uint,
	patch domain.SettingsPatch,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserSettings{}).
		Where("id_user = ?", writerID).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		empty := models.UserSettings{UserID: writerID}
		if err := r.db.WithContext(ctx).Create(&empty).Error; err != nil {
			return err
		}
	}

	values := map[string]any{}
	if patch.Username != nil {
		values["username"] = *patch.Username
	}
	if patch.PasswordDigest != nil {
		values["password"] = *patch.PasswordDigest
	}
	if patch.Salt != nil {
		values["salt"] = *patch.Salt
	}
	if patch.Notifications != nil {
		values["notifications"] = *patch.Notifications
	}
	if len(values) == 0 {
		return nil
	}

	return translateUniqueViolation(
		r.db.WithContext(ctx).
			Model(&models.UserSettings{}).
			Where("id_user = ?", writerID).
			Updates(values).Error,
	)
}

func (r *WriterGormRepository) GetSettingValue(
	ctx context.Context,
	name string,
	writerID uint,
) (string, error) {

	if !settingColumns[name] {
		return "", &domain.InvalidArgumentError{Reason: "unknown setting: " + name}
	}

	settings, err := r.GetSettings(ctx, writerID)
	if err != nil {
		return "", err
	}

	switch name {
	case "username":
		return settings.Username, nil
	case "password":
		return settings.Password, nil
	case "salt":
		return settings.Salt, nil
	case "notifications":
		if settings.Notifications {
			return "true", nil
		}
		return "false", nil
	}
	return "", &domain.InvalidArgumentError{Reason: "unknown setting: " + name}
}

// SetSettingValue writes a single settings column directly, bypassing full
// validation. The settings row must already exist.
func (r *WriterGormRepository) SetSettingValue(
	ctx context.Context,
	name string,
	value any,
	writerID uint,
) error {

	if !settingColumns[name] {
		return &domain.InvalidArgumentError{Reason: "unknown setting: " + name}
	}

	result := r.db.WithContext(ctx).
		Model(&models.UserSettings{}).
		Where("id_user = ?", writerID).
		Update(name, value)

	if result.Error != nil {
		return translateUniqueViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *WriterGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&WriterGormRepository{db: tx})
	})
}

// translateUniqueViolation maps a postgres 23505 to a ValidationError so
// races the advisory pre-checks missed still surface as conflicting input.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &domain.ValidationError{
			Reason: "a record with the same email or username already exists",
		}
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*WriterGormRepository)(nil)
