package testutil

import (
	"time"

	"github.com/ktmtfamily/family-tree-api/internal/config"
)

// PlaceholderPhoto is the default photo URL of NewTestConfig
const PlaceholderPhoto = "https://via.placeholder.com/150"

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "family-tree-api-test",
			Env:  "test",
			Port: 8080,
		},
		Database: config.DatabaseConfig{
			Driver:          config.DriverSQLite,
			SQLitePath:      ":memory:",
			MaxIdleConns:    1,
			MaxOpenConns:    1,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			IsAutoMigrate:   true,
		},
		Mongo: config.MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "FamilyTreeDBTest",
			ConnectTimeout: time.Second,
		},
		Storage: config.StorageConfig{
			Provider:            config.StorageCloudinary,
			PlaceholderPhotoURL: PlaceholderPhoto,
			CloudinaryFolder:    "family_tree_photos",
		},
		Admin: config.AdminConfig{
			Username:        "KTMTFAMILY WEBSITE",
			DefaultPassword: "KTMTPASSWORD",
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
			RequestTimeout:  5 * time.Second,
			MaxUploadBytes:  1 << 20,
		},
	}
}
