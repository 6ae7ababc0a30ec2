package database

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/sayed725/express-server/internal/config"
	"github.com/sayed725/express-server/pkg/logger"
)

// Postgres wraps the connection pool. It is constructed once at startup and
// injected into the repositories; there is no package-level pool.
type Postgres struct {
	db *sql.DB
}

// Open connects to Postgres and verifies the connection with a ping.
func Open(ctx context.Context, cfg *config.Config) (*Postgres, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.DBPoolSize)
	db.SetMaxIdleConns(cfg.DBPoolSize / 2)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info(ctx, "Database pool initialized", "max_open", cfg.DBPoolSize)
	return &Postgres{db: db}, nil
}

// DB exposes the underlying pool for the repositories.
func (p *Postgres) DB() *sql.DB {
	return p.db
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	age INT,
	phone TEXT,
	address TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const createTodosTable = `
CREATE TABLE IF NOT EXISTS todos (
	id SERIAL PRIMARY KEY,
	user_id INT REFERENCES users(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	description TEXT,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	due_date DATE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the users and todos tables if they do not exist.
// users must come first: todos.user_id references users.id. Safe to call
// repeatedly; existing rows are untouched.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, createUsersTable); err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, createTodosTable); err != nil {
		return err
	}
	logger.Info(ctx, "Schema ensured")
	return nil
}
