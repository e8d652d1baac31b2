package store

import (
	"context"
	"fmt"
)

// EnsureSchema creates the summaries table when it does not exist yet.
// Safe to run at every startup.
func EnsureSchema(ctx context.Context, c *Client) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS summaries (
			filename       TEXT PRIMARY KEY,
			headline       TEXT,
			summary        TEXT,
			keywords       TEXT,
			mp3_filename   TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			image_filename TEXT
		)`

	if _, err := c.DB().ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create summaries table: %w", err)
	}
	return nil
}
