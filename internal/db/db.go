package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kainoa/surftrack/internal/metrics"
	"github.com/kainoa/surftrack/pkg/models"
)

// PoolConfig bounds the shared connection pool. Zero values fall back to the
// documented defaults (max 20 connections, 30s idle timeout, 2s acquisition
// timeout).
type PoolConfig struct {
	MaxOpenConns int
	IdleTimeout  time.Duration
	ConnTimeout  time.Duration
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns: 20,
		IdleTimeout:  30 * time.Second,
		ConnTimeout:  2 * time.Second,
	}
}

func (c PoolConfig) withDefaults() PoolConfig {
	d := DefaultPoolConfig()
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = d.MaxOpenConns
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = d.IdleTimeout
	}
	if c.ConnTimeout <= 0 {
		c.ConnTimeout = d.ConnTimeout
	}
	return c
}

// DB wraps the pooled sql.DB for connection management. It is the only shared
// mutable resource in the process; the pool synchronizes access itself.
type DB struct {
	conn *sql.DB
	cfg  PoolConfig
}

// New opens the pool and verifies connectivity with a bounded ping.
func New(ctx context.Context, dsn string, cfg PoolConfig) (*DB, error) {
	cfg = cfg.withDefaults()

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxOpenConns)
	conn.SetConnMaxIdleTime(cfg.IdleTimeout)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &DB{conn: conn, cfg: cfg}, nil
}

// Close closes the DB connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Exec executes a statement. When the caller's context carries no deadline the
// configured acquisition timeout bounds the call.
func (db *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.cfg.ConnTimeout)
		defer cancel()
	}

	timer := time.Now()
	res, err := db.conn.ExecContext(ctx, query, args...)
	metrics.DBOperationDuration.WithLabelValues(metrics.DBOpExec).Observe(time.Since(timer).Seconds())
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpExec).Inc()
	}
	return res, err
}

// QueryRow executes a query that is expected to return at most one row
func (db *DB) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}

// QueryRows executes a query returning a row set. The caller owns rows.Close.
func (db *DB) QueryRows(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	timer := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.DBOperationDuration.WithLabelValues(metrics.DBOpQuery).Observe(time.Since(timer).Seconds())
	if err != nil {
		metrics.DBOperationErrorsTotal.WithLabelValues(metrics.DBOpQuery).Inc()
	}
	return rows, err
}

// GetConn returns the underlying sql.DB
func (db *DB) GetConn() *sql.DB {
	return db.conn
}

// Health runs a trivial query and reports the result. It never returns an
// error; failures come back as an unhealthy status with the message attached.
func (db *DB) Health(ctx context.Context) models.DatabaseHealth {
	ctx, cancel := context.WithTimeout(ctx, db.cfg.ConnTimeout)
	defer cancel()

	ts := time.Now().UTC().Format(time.RFC3339)
	var one int
	if err := db.conn.QueryRowContext(ctx, `SELECT 1 AS health_check`).Scan(&one); err != nil {
		return models.DatabaseHealth{Status: "unhealthy", Timestamp: ts, Error: err.Error()}
	}
	return models.DatabaseHealth{Status: "healthy", Timestamp: ts}
}

// Keepalive pings the pool every idle interval and invokes onFatal after
// three consecutive failures. A connection dying while idle is unrecoverable
// at this layer; the caller is expected to terminate the process rather than
// keep serving in a degraded state.
func (db *DB) Keepalive(ctx context.Context, onFatal func(error)) {
	ticker := time.NewTicker(db.cfg.IdleTimeout)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, db.cfg.ConnTimeout)
			err := db.conn.PingContext(pingCtx)
			cancel()
			if err == nil {
				failures = 0
				continue
			}
			failures++
			if failures >= 3 {
				onFatal(fmt.Errorf("idle connection check failed %d times: %w", failures, err))
				return
			}
		}
	}
}
