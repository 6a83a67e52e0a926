package database

import (
	"context"
	"fmt"
)

// schemaStatements bootstraps the tables the service owns. Statements are
// idempotent so startup can run them unconditionally.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		keywords TEXT[] NOT NULL DEFAULT '{}',
		min_experience DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_skill_priorities (
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		position INT NOT NULL,
		skill TEXT NOT NULL,
		priority DOUBLE PRECISION NOT NULL,
		importance_level TEXT NOT NULL,
		PRIMARY KEY (job_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS resumes (
		id UUID PRIMARY KEY,
		filename TEXT NOT NULL,
		stored_path TEXT NOT NULL,
		size_bytes BIGINT NOT NULL DEFAULT 0,
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rankings (
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
		final_score DOUBLE PRECISION NOT NULL,
		tier TEXT NOT NULL,
		document JSONB NOT NULL,
		ranked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (job_id, resume_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rankings_job_score ON rankings (job_id, final_score DESC)`,
}

// EnsureSchema applies the embedded DDL.
func EnsureSchema(ctx context.Context, db DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
