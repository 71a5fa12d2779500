package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ktmtfamily/family-tree-api/internal/config"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	UsersCollection    = "users"
	EventsCollection   = "events"
	SettingsCollection = "settings"
)

// Mongo wraps the driver client and the application database
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewMongo creates the client and pings the server. A failed ping is logged
// and not returned: requests touching the store fail on their own until the
// server becomes reachable.
func NewMongo(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetAppName(cfg.App.Name).
		SetMonitor(newCommandMonitor(cfg))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	m := NewMongoFromClient(client, cfg.Mongo.Database)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()

	if err := m.HealthCheck(pingCtx); err != nil {
		slog.Error("mongo ping failed, continuing without readiness gate",
			"database", cfg.Mongo.Database,
			"error", err,
		)
	} else {
		slog.Info("mongo connected", "database", cfg.Mongo.Database)
	}

	return m, nil
}

// NewMongoFromClient wraps an existing client, used by tests with mock deployments.
func NewMongoFromClient(client *mongo.Client, database string) *Mongo {
	return &Mongo{
		Client: client,
		DB:     client.Database(database),
	}
}

func (m *Mongo) Driver() string {
	return config.DriverMongo
}

// Users returns the member collection
func (m *Mongo) Users() *mongo.Collection {
	return m.DB.Collection(UsersCollection)
}

// Events returns the event collection
func (m *Mongo) Events() *mongo.Collection {
	return m.DB.Collection(EventsCollection)
}

// Settings returns the settings collection
func (m *Mongo) Settings() *mongo.Collection {
	return m.DB.Collection(SettingsCollection)
}

// HealthCheck pings the primary
func (m *Mongo) HealthCheck(ctx context.Context) error {
	if err := m.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

// Close disconnects the client
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	slog.Info("mongo connection closed")
	return nil
}

// newCommandMonitor logs failed and slow commands through slog
func newCommandMonitor(cfg *config.Config) *event.CommandMonitor {
	log := slog.With("component", "mongo")
	slow := cfg.Mongo.SlowThreshold
	verbose := !cfg.IsProduction()

	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, e *event.CommandSucceededEvent) {
			switch {
			case slow > 0 && e.Duration > slow:
				log.WarnContext(ctx, "Slow mongo command detected",
					"command", e.CommandName,
					"database", e.DatabaseName,
					"elapsed", e.Duration.String(),
					"threshold", slow.String(),
				)
			case verbose:
				log.DebugContext(ctx, "mongo command executed",
					"command", e.CommandName,
					"elapsed", e.Duration.String(),
				)
			}
		},
		Failed: func(ctx context.Context, e *event.CommandFailedEvent) {
			log.ErrorContext(ctx, "mongo command failed",
				"command", e.CommandName,
				"database", e.DatabaseName,
				"elapsed", e.Duration.String(),
				"error", e.Failure,
			)
		},
	}
}
