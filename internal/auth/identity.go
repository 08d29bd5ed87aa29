package auth

// Identity is the authenticated actor of a request, carried explicitly
// instead of living in ambient session state. A zero Identity means the
// request is anonymous.
type Identity struct {
	UserID   uint   `json:"user_id"`
	RoleSlug string `json:"role_slug"`
	Email    string `json:"user_email"`
}

func (i Identity) LoggedIn() bool {
	return i.UserID != 0
}
