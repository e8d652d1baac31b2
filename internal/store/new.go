package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"shownotes/internal/config"
	"shownotes/internal/domain"
	"shownotes/internal/logger"
)

// Client is a thin wrapper around a sql.DB handle to the summaries database.
type Client struct {
	db  *sql.DB
	cfg config.DatabaseConfig
}

// NewClient constructs a Postgres client from config. Connect must be
// called before use.
func NewClient(cfg config.DatabaseConfig) *Client {
	return &Client{cfg: cfg}
}

// Connect opens the pool and verifies connectivity.
func (c *Client) Connect(ctx context.Context) error {
	if c.cfg.DSN == "" {
		return fmt.Errorf("postgres DSN is required: %w", domain.ErrStoreUnavailable)
	}

	db, err := sql.Open("pgx", c.cfg.DSN)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}

	if c.cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.cfg.MaxOpenConns)
	}
	if c.cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.cfg.MaxIdleConns)
	}
	if c.cfg.ConnMaxLifeS > 0 {
		db.SetConnMaxLifetime(c.cfg.ConnMaxLife())
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping postgres: %v: %w", err, domain.ErrStoreUnavailable)
	}

	c.db = db
	return nil
}

// Close closes the underlying pool.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// DB exposes the underlying handle.
func (c *Client) DB() *sql.DB {
	return c.db
}

type implRepository struct {
	db     *sql.DB
	logger logger.Logger
}

// NewRepository creates a Repository over an open database handle.
func NewRepository(db *sql.DB, log logger.Logger) Repository {
	return &implRepository{
		db:     db,
		logger: log,
	}
}
