package privilege

import (
	"context"
	"errors"

	"github.com/easyscheduler/admin-backend/internal/auth"
)

type Reason string

const (
	ReasonUnauthenticated       Reason = "unauthenticated"
	ReasonInsufficientPrivilege Reason = "insufficient_privilege"
)

// Decision is the outcome of a gate check. RedirectTo is only set when the
// caller asked for redirect signaling; ajax-style callers pass redirect=false
// and handle the denial themselves.
type Decision struct {
	Allowed    bool
	Reason     Reason
	RedirectTo string
}

const (
	LoginPath        = "/user/login"
	NoPrivilegesPath = "/user/no-privileges"
)

// Gate decides whether an actor may view a backend page. It performs exactly
// one store lookup per call; callers that check repeatedly within a request
// should sit behind a caching Store.
type Gate struct {
	store Store
}

func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// Check gates access to page for the given identity. An unknown role slug or
// a page missing from the role's map denies access (fail closed); only a
// store read failure surfaces as an error.
func (g *Gate) Check(ctx context.Context, id auth.Identity, page Page, redirect bool) (Decision, error) {
	if !id.LoggedIn() {
		d := Decision{Allowed: false, Reason: ReasonUnauthenticated}
		if redirect {
			d.RedirectTo = LoginPath
		}
		return d, nil
	}

	privileges, err := g.store.PrivilegeMap(ctx, id.RoleSlug)
	if errors.Is(err, ErrRoleNotFound) {
		privileges = nil
	} else if err != nil {
		return Decision{}, err
	}

	if !privileges[page].Satisfies(LevelView) {
		d := Decision{Allowed: false, Reason: ReasonInsufficientPrivilege}
		if redirect {
			d.RedirectTo = NoPrivilegesPath
		}
		return d, nil
	}

	return Decision{Allowed: true}, nil
}
