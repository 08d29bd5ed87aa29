package writer

// Payload is an incoming writer save request. Core fields are persisted on
// the user row; Providers and Settings feed the dependent relations.
type Payload struct {
	ID *uint `json:"id,omitempty"`

	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	PhoneNumber  string `json:"phone_number"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Notes        string `json:"notes"`

	// Providers is the full desired provider set. nil leaves the stored
	// associations untouched; an empty non-nil slice clears them.
	Providers []uint `json:"providers,omitempty"`

	Settings *SettingsInput `json:"settings,omitempty"`
}

// SettingsInput is the settings portion of a save payload. Password, when
// present, is plaintext on the wire and replaced by a digest before it
// reaches storage. A pointer so that a present-but-empty password is
// rejected by length validation instead of reading as absent.
type SettingsInput struct {
	Username      string  `json:"username,omitempty"`
	Password      *string `json:"password,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
}

func (s *SettingsInput) IsEmpty() bool {
	return s == nil || (s.Username == "" && s.Password == nil && s.Notifications == nil)
}

// Settings is the public settings shape of a stored writer. Internal linkage
// and secret fields (salt, password digest) never appear here.
type Settings struct {
	Username      string `json:"username"`
	Notifications bool   `json:"notifications"`
}

// Record is the denormalized read shape of a writer: core fields plus the
// provider id set and the public settings.
type Record struct {
	ID uint `json:"id"`

	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	PhoneNumber  string `json:"phone_number"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Notes        string `json:"notes"`

	Providers []uint   `json:"providers"`
	Settings  Settings `json:"settings"`
}

// ListFilter narrows a batch read. Zero value returns every writer.
type ListFilter struct {
	// Query matches case-insensitively against name and email.
	Query string
}
