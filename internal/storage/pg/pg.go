// Package pg implements the storage layer on PostgreSQL.
//
// The storage handle is injected into services explicitly; there is no
// package-level connection state. Identifiers are application-assigned
// opaque uuid strings, never database-assigned primary keys.
package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // Registers the PostgreSQL driver

	"github.com/agora-dev/agora/internal/config"
	"github.com/agora-dev/agora/internal/logger"
)

// Querier is satisfied by both *sql.DB and *sql.Tx, so the same query logic
// works inside and outside transactions.
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

type Storage struct {
	db  *sql.DB
	cfg *config.Config
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db, cfg}, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port,
		cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable. Used by the readiness probe.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withTx executes fn within a transaction. The deferred Rollback is a no-op
// once the transaction has been committed.
func (s *Storage) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
