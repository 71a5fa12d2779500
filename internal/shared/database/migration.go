package database

import (
	"fmt"
	"log/slog"

	"github.com/ktmtfamily/family-tree-api/internal/config"
	"github.com/ktmtfamily/family-tree-api/internal/model"
	"gorm.io/gorm"
)

// Migrate creates missing tables and columns when DB_AUTO_MIGRATE is set.
// Existing rows are never touched.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Info("database migration started", "driver", cfg.Database.Driver)
	if err := AutoMigrate(db); err != nil {
		return err
	}

	slog.Info("database migration finished")
	return nil
}

// AutoMigrate creates the tables backing every model
func AutoMigrate(db *gorm.DB) error {
	for _, m := range model.All() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("table migrated", "model", fmt.Sprintf("%T", m))
	}
	return nil
}
