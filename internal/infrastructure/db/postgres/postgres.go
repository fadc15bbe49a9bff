// Package postgres is the persistence gateway: a single pooled connection to
// the relational store plus one repository per entity. Raw store signals are
// classified into the domain error taxonomy here, immediately after each
// data-access call, before any response is constructed.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

const (
	maxConns        = 10
	maxConnIdleTime = 5 * time.Minute
	connectTimeout  = 10 * time.Second
)

// Connect builds the process-scoped pool, verifies connectivity with a ping,
// and applies the schema. The pool is created once at startup and closed once
// at shutdown; it is never re-created per call.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres config: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MaxConnIdleTime = maxConnIdleTime

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if err := migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS admin_users (
		id            BIGSERIAL PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		full_name     TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		phone         TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id             BIGSERIAL PRIMARY KEY,
		company        TEXT NOT NULL UNIQUE,
		contact_person TEXT NOT NULL DEFAULT '',
		email          TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id           BIGSERIAL PRIMARY KEY,
		title        TEXT NOT NULL,
		department   TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		requirements TEXT[] NOT NULL DEFAULT '{}',
		status       TEXT NOT NULL DEFAULT 'Open',
		created_by   TEXT NOT NULL DEFAULT 'Admin',
		client_id    BIGINT REFERENCES clients(id),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		job_id         BIGINT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		resume_url     TEXT NOT NULL DEFAULT '',
		cover_letter   TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL DEFAULT 'Pending',
		ai_parsed_data JSONB,
		admin_notes    TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, job_id)
	)`,
}

func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres migrate: %w", err)
		}
	}
	return nil
}

// Vendor condition codes the gateway cares about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// classify translates a raw store signal into the domain taxonomy. conflict
// is the domain error to use for a unique-constraint violation on the
// statement at hand.
func classify(err error, conflict error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if conflict != nil {
				return conflict
			}
		case codeForeignKeyViolation:
			return domain.Invalid("referenced record does not exist")
		}
	}
	return err
}

// notFound maps the zero-row signal of an id-scoped lookup.
func notFound(err, absent error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return absent
	}
	return err
}
