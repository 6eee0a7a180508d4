package main

import (
	"context"
	"log"

	"promptly-be/internal/bootstrap"
	"promptly-be/internal/config"
	"promptly-be/internal/server"
	"promptly-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := openDatabase(cfg)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	if err := container.CleanupScheduler.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start cleanup scheduler: %v", err)
	}
	defer container.CleanupScheduler.Stop()
	defer container.Bus.Close()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Driver == "postgres" {
		return database.NewGormDBFromDSN(cfg.Database.Connection)
	}
	return database.NewSQLiteDB(cfg.Database.SQLitePath)
}
