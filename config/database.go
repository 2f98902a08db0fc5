package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nori1432/Laws-sub002/models"
)

var DB *gorm.DB

// ConnectDB opens the Postgres connection from DB_URL and runs the schema
// migration. The process cannot do anything useful without a database, so
// failure here is fatal.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		slog.Error("DB_URL environment variable not set")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Course{},
		&models.Section{},
		&models.Enrollment{},
		&models.Attendance{},
		&models.DeviceRegistration{},
		&models.SubscriptionPayment{},
		&models.Announcement{},
	); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Database connection established")
}
