package writer

import (
	"context"
	"sort"
	"strings"

	domain "github.com/easyscheduler/admin-backend/internal/domain/writer"
	"github.com/easyscheduler/admin-backend/internal/models"
)

// fakeRepo is an in-memory Repository for use case tests. Role scoping and
// uniqueness checks behave like the gorm implementation; transactions are
// pass-through.
type fakeRepo struct {
	nextID       uint
	writerRoleID uint
	otherRoleID  uint
	users        map[uint]*models.User
	settings     map[uint]*models.UserSettings
	providers    map[uint][]uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextID:       1,
		writerRoleID: 3,
		otherRoleID:  2,
		users:        map[uint]*models.User{},
		settings:     map[uint]*models.UserSettings{},
		providers:    map[uint][]uint{},
	}
}

// seedUser inserts a user row directly, bypassing the use cases.
func (f *fakeRepo) seedUser(roleID uint, email string) uint {
	id := f.nextID
	f.nextID++
	f.users[id] = &models.User{
		ID:     id,
		RoleID: roleID,
		Email:  email,

		LastName:    "Seeded",
		PhoneNumber: "000",
	}
	return id
}

func (f *fakeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.RoleID == f.writerRoleID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) FindIDByEmail(_ context.Context, email string) (uint, error) {
	for _, u := range f.users {
		if u.Email == email && u.RoleID == f.writerRoleID {
			return u.ID, nil
		}
	}
	return 0, domain.ErrNotFound
}

func (f *fakeRepo) UserExists(_ context.Context, id uint) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeRepo) EmailTakenByOther(_ context.Context, email string, selfID uint) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.RoleID == f.writerRoleID && u.ID != selfID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) UsernameTakenByOther(_ context.Context, username string, selfID uint) (bool, error) {
	for id, s := range f.settings {
		if s.Username == username && id != selfID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) WriterRoleID(_ context.Context) (uint, error) {
	return f.writerRoleID, nil
}

func (f *fakeRepo) InsertUser(_ context.Context, u *models.User) error {
	u.ID = f.nextID
	f.nextID++
	stored := *u
	f.users[u.ID] = &stored
	return nil
}

func (f *fakeRepo) UpdateUser(_ context.Context, u *models.User) error {
	existing, ok := f.users[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := *u
	updated.RoleID = existing.RoleID
	f.users[u.ID] = &updated
	return nil
}

func (f *fakeRepo) DeleteUser(_ context.Context, id uint) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	delete(f.settings, id)
	delete(f.providers, id)
	return true, nil
}

func (f *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) ListUsers(_ context.Context, filter domain.ListFilter) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.RoleID != f.writerRoleID {
			continue
		}
		if q := strings.ToLower(filter.Query); q != "" {
			haystack := strings.ToLower(u.FirstName + " " + u.LastName + " " + u.Email)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) ProviderIDs(_ context.Context, writerID uint) ([]uint, error) {
	ids := append([]uint{}, f.providers[writerID]...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeRepo) ReplaceProviders(_ context.Context, writerID uint, providerIDs []uint) error {
	seen := map[uint]bool{}
	replacement := []uint{}
	for _, id := range providerIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		replacement = append(replacement, id)
	}
	f.providers[writerID] = replacement
	return nil
}

func (f *fakeRepo) GetSettings(_ context.Context, writerID uint) (*models.UserSettings, error) {
	s, ok := f.settings[writerID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeRepo) SaveSettings(_ context.Context, writerID uint, patch domain.SettingsPatch) error {
	s, ok := f.settings[writerID]
	if !ok {
		s = &models.UserSettings{UserID: writerID}
		f.settings[writerID] = s
	}
	if patch.Username != nil {
		s.Username = *patch.Username
	}
	if patch.PasswordDigest != nil {
		s.Password = *patch.PasswordDigest
	}
	if patch.Salt != nil {
		s.Salt = *patch.Salt
	}
	if patch.Notifications != nil {
		s.Notifications = *patch.Notifications
	}
	return nil
}

func (f *fakeRepo) GetSettingValue(_ context.Context, name string, writerID uint) (string, error) {
	s, ok := f.settings[writerID]
	if !ok {
		return "", domain.ErrNotFound
	}
	switch name {
	case "username":
		return s.Username, nil
	case "password":
		return s.Password, nil
	case "salt":
		return s.Salt, nil
	case "notifications":
		if s.Notifications {
			return "true", nil
		}
		return "false", nil
	}
	return "", &domain.InvalidArgumentError{Reason: "unknown setting: " + name}
}

func (f *fakeRepo) SetSettingValue(_ context.Context, name string, value any, writerID uint) error {
	s, ok := f.settings[writerID]
	if !ok {
		return domain.ErrNotFound
	}
	switch name {
	case "username":
		s.Username, _ = value.(string)
	case "password":
		s.Password, _ = value.(string)
	case "salt":
		s.Salt, _ = value.(string)
	case "notifications":
		s.Notifications, _ = value.(bool)
	default:
		return &domain.InvalidArgumentError{Reason: "unknown setting: " + name}
	}
	return nil
}

func (f *fakeRepo) InTx(_ context.Context, fn func(domain.Repository) error) error {
	return fn(f)
}

// Compile-time check
var _ domain.Repository = (*fakeRepo)(nil)
