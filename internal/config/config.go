// FILE: internal/config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	RecycleBin RecycleBinConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	// Driver selects the backing store: "postgres" for a server deployment,
	// "sqlite" for a single-user embedded database.
	Driver     string
	Connection string
	SQLitePath string
}

type RecycleBinConfig struct {
	// CleanupSchedule is a cron expression for the retention sweep.
	CleanupSchedule string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/promptly.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			SQLitePath: getEnv("SQLITE_PATH", "promptly.db"),
		},
		RecycleBin: RecycleBinConfig{
			CleanupSchedule: getEnv("RECYCLE_BIN_CLEANUP_SCHEDULE", "0 */6 * * *"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
