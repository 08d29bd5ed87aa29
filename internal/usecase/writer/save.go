package writer

import (
	"context"

	"github.com/easyscheduler/admin-backend/internal/audit"
	"github.com/easyscheduler/admin-backend/internal/auth"
	domain "github.com/easyscheduler/admin-backend/internal/domain/writer"
	"github.com/easyscheduler/admin-backend/internal/models"
)

// ======================================================
// USE CASE — SAVE (insert or update)
// ======================================================

type SaveWriter struct {
	repo           domain.Repository
	hasher         *auth.Hasher
	audit          *audit.Dispatcher
	minPasswordLen int
}

func NewSaveWriter(
	repo domain.Repository,
	hasher *auth.Hasher,
	auditDispatcher *audit.Dispatcher,
	minPasswordLen int,
) *SaveWriter {
	return &SaveWriter{
		repo:           repo,
		hasher:         hasher,
		audit:          auditDispatcher,
		minPasswordLen: minPasswordLen,
	}
}

// Execute resolves insert-vs-update (re-attaching by email when no id was
// sent), validates the payload against the resolved record, then persists the
// core fields and synchronizes the provider and settings relations, all
// within one transaction. Returns the saved record id.
func (uc *SaveWriter) Execute(ctx context.Context, p domain.Payload) (uint, error) {

	// --------------------------------------------------
	// 1. Resolve identity (Insert | UpdateByID | UpdateByResolvedEmail)
	// --------------------------------------------------
	resolution, err := domain.ResolveSaveMode(ctx, uc.repo, p)
	if err != nil {
		return 0, err
	}

	// --------------------------------------------------
	// 2. Validate; no mutation happens past a failure here. The resolved id
	// keeps a re-attached payload from colliding with its own row in the
	// uniqueness checks.
	// --------------------------------------------------
	if err := domain.Validate(ctx, uc.repo, p, resolution.ID, uc.minPasswordLen); err != nil {
		return 0, err
	}

	// A present-but-empty settings object is a malformed request; absent
	// settings are fine on update (nothing to write).
	if p.Settings != nil && p.Settings.IsEmpty() {
		return 0, &domain.InvalidArgumentError{Reason: "settings must not be empty"}
	}

	writerID := resolution.ID

	// --------------------------------------------------
	// 3. Persist core fields + sync relations transactionally
	// --------------------------------------------------
	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		user := coreFields(p)

		var patch domain.SettingsPatch

		if resolution.Mode == domain.ModeInsert {
			roleID, err := tx.WriterRoleID(ctx)
			if err != nil {
				return err
			}
			user.RoleID = roleID

			if err := tx.InsertUser(ctx, user); err != nil {
				return err
			}
			writerID = user.ID

			// New accounts get a salt once; it is never rotated afterwards.
			salt := uc.hasher.GenerateSalt()
			patch.Salt = &salt
			if p.Settings != nil && p.Settings.Password != nil {
				digest := uc.hasher.Hash(salt, *p.Settings.Password)
				patch.PasswordDigest = &digest
			}
		} else {
			user.ID = writerID
			if err := tx.UpdateUser(ctx, user); err != nil {
				return err
			}

			if p.Settings != nil && p.Settings.Password != nil {
				salt, err := tx.GetSettingValue(ctx, "salt", writerID)
				if err != nil {
					return err
				}
				digest := uc.hasher.Hash(salt, *p.Settings.Password)
				patch.PasswordDigest = &digest
			}
		}

		if p.Settings != nil {
			if p.Settings.Username != "" {
				patch.Username = &p.Settings.Username
			}
			patch.Notifications = p.Settings.Notifications
		}

		// nil means the client did not send providers at all; the stored
		// set stays as-is. An empty slice clears it.
		if p.Providers != nil {
			if err := tx.ReplaceProviders(ctx, writerID, p.Providers); err != nil {
				return err
			}
		}

		if !patch.IsEmpty() {
			if err := tx.SaveSettings(ctx, writerID, patch); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &writerID,
		Action:   "writer_saved",
		Entity:   "writer",
		EntityID: &writerID,
	})

	return writerID, nil
}

// coreFields strips the providers and settings sub-structures, leaving only
// what belongs on the user row.
func coreFields(p domain.Payload) *models.User {
	return &models.User{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		MobileNumber: p.MobileNumber,
		PhoneNumber:  p.PhoneNumber,
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		ZipCode:      p.ZipCode,
		Notes:        p.Notes,
	}
}
