package privilege

import (
	"context"
	"errors"
)

// ErrRoleNotFound is returned by a Store when no role matches the slug. The
// gate treats it as an empty privilege map, not as a failure.
var ErrRoleNotFound = errors.New("role not found")

// Store resolves a role slug to its privilege map.
type Store interface {
	PrivilegeMap(ctx context.Context, roleSlug string) (map[Page]Level, error)
}
