package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"barcode-scanner/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// Service owns the process-wide connection pool
type Service interface {
	DB() *sql.DB
	// Health pings the database and reports pool statistics
	Health(ctx context.Context) (map[string]string, error)
	Close() error
}

type service struct {
	db     *sql.DB
	logger *zap.Logger
}

// New opens a bounded pgx connection pool and verifies it with a ping.
// Callers block when all MaxOpenConns connections are in use.
func New(cfg config.DatabaseConfig, logger *zap.Logger) (Service, error) {
	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return &service{db: db, logger: logger}, nil
}

// Wrap adapts an already opened pool, used by tests.
func Wrap(db *sql.DB, logger *zap.Logger) Service {
	return &service{db: db, logger: logger}
}

func (s *service) DB() *sql.DB {
	return s.db
}

func (s *service) Health(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	stats := map[string]string{}

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = err.Error()
		s.logger.Error("Database health check failed", zap.Error(err))
		return stats, err
	}

	dbStats := s.db.Stats()
	stats["status"] = "up"
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	return stats, nil
}

func (s *service) Close() error {
	s.logger.Info("Closing database connection pool")
	return s.db.Close()
}
