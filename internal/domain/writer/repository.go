package writer

import (
	"context"

	"github.com/easyscheduler/admin-backend/internal/models"
)

// SettingsPatch carries the settings columns a save wants to write. nil
// fields are left untouched. Password here is always a digest; hashing
// happens before the patch is built.
type SettingsPatch struct {
	Username       *string
	PasswordDigest *string
	Salt           *string
	Notifications  *bool
}

func (p SettingsPatch) IsEmpty() bool {
	return p.Username == nil && p.PasswordDigest == nil && p.Salt == nil && p.Notifications == nil
}

// Repository is the storage contract of the writer record manager. All
// lookups that say "writer" are scoped to the writer role; a matching email
// under another role does not count.
type Repository interface {
	// -------- Identity resolution --------
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindIDByEmail(ctx context.Context, email string) (uint, error)

	// -------- Uniqueness pre-checks --------
	UserExists(ctx context.Context, id uint) (bool, error)
	EmailTakenByOther(ctx context.Context, email string, selfID uint) (bool, error)
	UsernameTakenByOther(ctx context.Context, username string, selfID uint) (bool, error)

	// -------- Core fields --------
	WriterRoleID(ctx context.Context) (uint, error)
	InsertUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id uint) (bool, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context, filter ListFilter) ([]models.User, error)

	// -------- Provider associations (full replace) --------
	ProviderIDs(ctx context.Context, writerID uint) ([]uint, error)
	ReplaceProviders(ctx context.Context, writerID uint, providerIDs []uint) error

	// -------- Settings --------
	GetSettings(ctx context.Context, writerID uint) (*models.UserSettings, error)
	SaveSettings(ctx context.Context, writerID uint, patch SettingsPatch) error
	GetSettingValue(ctx context.Context, name string, writerID uint) (string, error)
	SetSettingValue(ctx context.Context, name string, value any, writerID uint) error

	// InTx runs fn against a transactional view of the repository. Either
	// every write inside fn commits or none do.
	InTx(ctx context.Context, fn func(Repository) error) error
}
