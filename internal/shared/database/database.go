package database

import (
	"context"
	"fmt"

	"github.com/ktmtfamily/family-tree-api/internal/config"
)

// Conn is the lifecycle surface shared by every store driver.
type Conn interface {
	Driver() string
	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects the store selected by DB_DRIVER. It returns exactly one of
// *Mongo or *SQL behind Conn.
func Open(ctx context.Context, cfg *config.Config) (Conn, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		return NewMongo(ctx, cfg)
	case config.DriverSQLite, config.DriverOracle:
		return NewSQL(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
