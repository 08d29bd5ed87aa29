package writer

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// UniquenessChecker is the slice of Repository validation needs. Pre-checks
// here are advisory under concurrency; the storage layer backs them with
// unique constraints.
type UniquenessChecker interface {
	UserExists(ctx context.Context, id uint) (bool, error)
	EmailTakenByOther(ctx context.Context, email string, selfID uint) (bool, error)
	UsernameTakenByOther(ctx context.Context, username string, selfID uint) (bool, error)
}

// Validate runs every save rule before any mutation. The first violation
// aborts; a returned ValidationError guarantees zero side effects. selfID is
// the already-resolved target id of the save (zero on insert) so that a
// payload re-attached by email does not collide with its own stored row. The
// "providers must be a collection" rule of the original payload is enforced
// structurally by the Payload type.
func Validate(ctx context.Context, checks UniquenessChecker, p Payload, selfID uint, minPasswordLen int) error {
	if p.ID != nil {
		exists, err := checks.UserExists(ctx, *p.ID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("writer id %d: %w", *p.ID, ErrNotFound)
		}
	}

	if p.LastName == "" || p.Email == "" || p.PhoneNumber == "" {
		return validationf("last_name, email and phone_number are required")
	}

	if !validEmail(p.Email) {
		return validationf("invalid email address: %s", p.Email)
	}

	if p.Settings != nil && p.Settings.Username != "" {
		taken, err := checks.UsernameTakenByOther(ctx, p.Settings.Username, selfID)
		if err != nil {
			return err
		}
		if taken {
			return validationf("username %q already exists, please select a different one", p.Settings.Username)
		}
	}

	if p.Settings != nil && p.Settings.Password != nil {
		if len(*p.Settings.Password) < minPasswordLen {
			return validationf("password must be at least %d characters long", minPasswordLen)
		}
	}

	taken, err := checks.EmailTakenByOther(ctx, p.Email, selfID)
	if err != nil {
		return err
	}
	if taken {
		return validationf("email %s belongs to another writer record", p.Email)
	}

	return nil
}

// validEmail accepts a bare RFC 5322 address with a dotted domain. Display
// names and lookalike forms are rejected.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}
