// Package db provides PostgreSQL persistence for resume snapshots and the
// progression value the wizard gate writes after successful validation.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/resume-builder/internal/types"
)

// ErrResumeNotFound indicates the requested resume does not exist.
var ErrResumeNotFound = errors.New("resume not found")

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateResume inserts a new resume with a title only; the wizard fills in
// everything else incrementally. Returns the stored snapshot.
func (db *DB) CreateResume(ctx context.Context, ownerID uuid.UUID, title string) (*types.Resume, error) {
	r := &types.Resume{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Title:   title,
	}

	content, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (id, owner_id, title, content, progression)
		 VALUES ($1, $2, $3, $4, 0)
		 RETURNING created_at`,
		r.ID, ownerID, title, content,
	).Scan(&r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return r, nil
}

// GetResume loads one resume snapshot.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.Resume, error) {
	var content []byte
	var progression int
	err := db.pool.QueryRow(ctx,
		`SELECT content, progression FROM resumes WHERE id = $1`, id,
	).Scan(&content, &progression)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrResumeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}

	var r types.Resume
	if err := json.Unmarshal(content, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume %s: %w", id, err)
	}
	r.Progression = progression
	return &r, nil
}

// UpdateResume replaces a resume's stored snapshot. The progression column is
// deliberately not touched here: it only moves through UpdateProgression
// after a successful validation pass.
func (db *DB) UpdateResume(ctx context.Context, r *types.Resume) error {
	content, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes SET title = $1, content = $2, updated_at = NOW() WHERE id = $3`,
		r.Title, content, r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume %s: %w", r.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrResumeNotFound
	}
	return nil
}

// UpdateProgression records the overall completion percentage for a resume.
func (db *DB) UpdateProgression(ctx context.Context, id uuid.UUID, progression int) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes SET progression = $1, updated_at = NOW() WHERE id = $2`,
		progression, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update progression for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrResumeNotFound
	}
	return nil
}

// ListResumes returns summaries of an owner's resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, ownerID uuid.UUID) ([]ResumeSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, progression, created_at
		 FROM resumes WHERE owner_id = $1
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var summaries []ResumeSummary
	for rows.Next() {
		var s ResumeSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Progression, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}
	return summaries, nil
}

// DeleteResume removes a resume. Only whole-resume deletion is supported.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrResumeNotFound
	}
	return nil
}
