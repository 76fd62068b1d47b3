package db

import (
	"log"

	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/domain/blueprint"
	"github.com/consite-dev/consite-go/internal/domain/invoice"
	"github.com/consite-dev/consite-go/internal/domain/notification"
	"github.com/consite-dev/consite-go/internal/domain/project"
	"github.com/consite-dev/consite-go/internal/domain/task"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// CreateEnums declares the postgres enum types AutoMigrate depends on. Safe to
// run repeatedly.
func CreateEnums(gormDB *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('admin', 'engineer', 'contractor', 'site_manager', 'worker'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE task_status AS ENUM ('Pending', 'In Progress', 'Completed', 'Verified'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE task_priority AS ENUM ('Low', 'Medium', 'High', 'Urgent'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE invoice_status AS ENUM ('Pending', 'Approved', 'Rejected', 'Paid'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE blueprint_status AS ENUM ('Draft', 'Approved', 'Archived'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE notification_type AS ENUM ('task_assigned', 'task_updated', 'task_completed', 'payment_received', 'system'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE notification_priority AS ENUM ('low', 'medium', 'high', 'urgent'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := gormDB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init(cfg *config.Config) {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	CreateEnums(DB)

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate applies the schema for every entity. Split out so the test harness
// can run it against its own database.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&task.Task{},
		&invoice.Invoice{},
		&blueprint.Blueprint{},
		&notification.Notification{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
