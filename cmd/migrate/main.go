package main

import (
	"log"

	"promptly-be/internal/config"
	"promptly-be/internal/model"
	"promptly-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	models := []interface{}{
		&model.Category{},
		&model.Prompt{},
		&model.RecycleBinItem{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Driver == "postgres" {
		return database.NewGormDBFromDSN(cfg.Database.Connection)
	}
	return database.NewSQLiteDB(cfg.Database.SQLitePath)
}
