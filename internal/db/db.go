package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/easyscheduler/admin-backend/internal/config"
	"github.com/easyscheduler/admin-backend/internal/domain/privilege"
	"github.com/easyscheduler/admin-backend/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.UserSettings{},
		&models.WriterProvider{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedRoles(db)

	return db
}

// seedRoles inserts the standard roles with their page privilege levels when
// they are missing. Existing rows are left alone so installations can tune
// levels per role.
func seedRoles(db *gorm.DB) {
	view := int(privilege.LevelView)
	full := int(privilege.LevelDelete)

	roles := []models.Role{
		{
			Slug: models.RoleAdmin, Name: "Administrator",
			Appointments: full, Customers: full, Services: full,
			Users: full, SystemSettings: full, UserSettings: full,
		},
		{
			Slug: models.RoleProvider, Name: "Provider",
			Appointments: full, Customers: view, Services: view,
			UserSettings: full,
		},
		{
			Slug: models.RoleWriter, Name: "Writer",
			Appointments: full, Customers: full, Services: view,
			UserSettings: full,
		},
		{
			Slug: models.RoleCustomer, Name: "Customer",
		},
	}

	for _, role := range roles {
		var existing models.Role
		err := db.Where(models.Role{Slug: role.Slug}).
			Attrs(role).
			FirstOrCreate(&existing).Error
		if err != nil {
			log.Fatalf("failed to seed role %s: %v", role.Slug, err)
		}
	}
}
