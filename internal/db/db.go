package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cecepns/rnstore/internal/models"
)

// MustOpen открывает соединение с БД по строке из .env
func MustOpen(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("DB_DSN is empty (check your .env)")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	return db
}

// Migrate создаёт недостающие таблицы.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.Setting{},
		&models.AdminUser{},
		&models.Banner{},
	)
}
