package main

import (
	"context"
	"log"

	"promptly-be/internal/config"
	"promptly-be/internal/repository/unitofwork"
	"promptly-be/internal/seed"
	"promptly-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	if err := seed.Run(context.Background(), uowFactory); err != nil {
		log.Fatalf("Error: Seed failed: %v", err)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Driver == "postgres" {
		return database.NewGormDBFromDSN(cfg.Database.Connection)
	}
	return database.NewSQLiteDB(cfg.Database.SQLitePath)
}
