package database

import (
	"log"
	"os"

	"github.com/pranshu911/jams/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection from DATABASE_DSN and runs
// migrations. Fatal on failure: the service is useless without storage.
func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=jams port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Application{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
