package models

// UserSettings is the one-to-one settings row of a user account. The row is
// created empty at user-insert time and populated afterwards. Password is
// stored as a (salt, digest) pair only; plaintext never reaches this struct.
type UserSettings struct {
	UserID uint `gorm:"column:id_user;primaryKey" json:"-"`

	Username      string `gorm:"size:100;uniqueIndex:idx_settings_username,where:username <> ''" json:"username"`
	Password      string `gorm:"size:255" json:"-"`
	Salt          string `gorm:"size:255" json:"-"`
	Notifications bool   `gorm:"not null;default:false" json:"notifications"`
}

func (UserSettings) TableName() string { return "user_settings" }
