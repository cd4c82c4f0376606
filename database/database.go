package database

import (
	"fmt"
	"log"
	"os"

	"library-service/internal/domain/books"
	"library-service/internal/domain/borrowings"
	"library-service/internal/domain/payments"
	"library-service/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate is split out so tests can run the same schema against an
// in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&books.Book{},
		&borrowings.Borrowing{},
		&payments.Payment{},
	)
}
