package models

import "time"

// User is a system account of any role (admin, provider, writer, customer).
// The email uniqueness constraint is scoped per role: the same address may
// exist under different roles, never twice under the same one.
type User struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	RoleID uint `gorm:"column:id_role;not null;index;uniqueIndex:idx_users_email_role" json:"id_role"`
	Role   Role `gorm:"foreignKey:RoleID" json:"-"`

	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:120;not null" json:"last_name"`
	Email        string `gorm:"size:160;not null;uniqueIndex:idx_users_email_role" json:"email"`
	MobileNumber string `gorm:"size:30" json:"mobile_number"`
	PhoneNumber  string `gorm:"size:30;not null" json:"phone_number"`
	Address      string `gorm:"size:200" json:"address"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:100" json:"state"`
	ZipCode      string `gorm:"size:20" json:"zip_code"`
	Notes        string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
