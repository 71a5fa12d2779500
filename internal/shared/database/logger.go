package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ktmtfamily/family-tree-api/internal/config"
	"github.com/ktmtfamily/family-tree-api/internal/shared/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormLogger routes GORM output to the request logger found in ctx
type GormLogger struct {
	level     gormlogger.LogLevel
	slow      time.Duration
	redactSQL bool // member rows carry plain-text passwords
}

func newLogger(cfg *config.Config) gormlogger.Interface {
	l := &GormLogger{
		level: gormlogger.Info,
		slow:  slowQueryThreshold,
	}
	if cfg.IsProduction() {
		l.level = gormlogger.Error
		l.redactSQL = true
	}
	return l
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, data)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, data)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, data)
}

func (l *GormLogger) printf(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, data []interface{}) {
	if l.level < min {
		return
	}
	l.log(ctx).Log(ctx, level, fmt.Sprintf(msg, data...))
}

// Trace reports failed statements, slow statements and, below production,
// every statement at debug level. Record-not-found is an expected outcome
// of the lookups here and is not reported.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := l.slow > 0 && elapsed > l.slow

	var (
		level slog.Level
		msg   string
	)
	switch {
	case failed && l.level >= gormlogger.Error:
		level, msg = slog.LevelError, "SQL statement failed"
	case slow && l.level >= gormlogger.Warn:
		level, msg = slog.LevelWarn, "Slow SQL statement"
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelDebug, "SQL statement executed"
	default:
		return
	}

	sql, rows := fc()
	attrs := []any{"elapsed", elapsed.String(), "rows", rows}
	if !l.redactSQL {
		attrs = append(attrs, "sql", sql)
	}
	if failed {
		attrs = append(attrs, "error", err)
	}

	l.log(ctx).Log(ctx, level, msg, attrs...)
}

func (l *GormLogger) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx).With("component", "gorm")
}
