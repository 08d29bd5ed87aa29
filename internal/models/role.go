package models

// Standard role slugs seeded at startup. User rows reference roles by id;
// slugs never change once referenced.
const (
	RoleAdmin    = "admin"
	RoleProvider = "provider"
	RoleWriter   = "writer"
	RoleCustomer = "customer"
)

// Role holds one privilege level column per backend page.
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Slug string `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Name string `gorm:"size:100" json:"name"`

	Appointments   int `gorm:"not null;default:0" json:"appointments"`
	Customers      int `gorm:"not null;default:0" json:"customers"`
	Services       int `gorm:"not null;default:0" json:"services"`
	Users          int `gorm:"not null;default:0" json:"users"`
	SystemSettings int `gorm:"not null;default:0" json:"system_settings"`
	UserSettings   int `gorm:"not null;default:0" json:"user_settings"`
}

func (Role) TableName() string { return "roles" }
