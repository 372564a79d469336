package db

import (
	"context"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	title TEXT NOT NULL,
	content JSONB NOT NULL,
	progression INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS resumes_owner_idx ON resumes (owner_id, created_at DESC);
`

// EnsureSchema creates the resumes table and indexes if they do not exist.
// Called once at server startup.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
