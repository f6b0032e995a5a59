package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/hnh-zeal/petopia-frontend-sub000/config"
)

// Open connects to PostgreSQL through pgx's database/sql driver.
//
// Simple protocol with no statement cache keeps the connection usable behind
// transaction-mode poolers (PgBouncer/PgCat). Without it you may see:
//
//	"prepared statement stmtcache_* does not exist"
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	connCfg.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	connCfg.StatementCacheCapacity = 0
	connCfg.DescriptionCacheCapacity = 0

	db := stdlib.OpenDB(*connCfg)
	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxConnections / 2)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrate creates the session table when it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS console_sessions (
	id           TEXT PRIMARY KEY,
	kind         TEXT NOT NULL,
	access_token TEXT NOT NULL,
	profile      JSONB NOT NULL,
	expires_at   TIMESTAMPTZ,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	if err != nil {
		return fmt.Errorf("failed to migrate sessions table: %w", err)
	}
	return nil
}
