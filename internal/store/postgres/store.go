// Package postgres implements store.Store over PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/codechain-indexer/internal/model"
	"github.com/goodnatureofminers/codechain-indexer/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// queries runs statements against either the pool or an open transaction.
type queries struct {
	db      sqlx.ExtContext
	metrics Metrics
}

func (q *queries) observe(operation string, started time.Time, err *error) {
	q.metrics.Observe(operation, *err, started)
}

// Store is the pool-backed entry point.
type Store struct {
	queries
	pool *sqlx.DB
}

var _ store.Store = (*Store)(nil)

// Tx is a store.Tx bound to one database transaction.
type Tx struct {
	queries
}

var _ store.Tx = (*Tx)(nil)

// Open connects to dsn and verifies the connection.
func Open(dsn string, metrics Metrics) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return New(db, metrics)
}

// New wraps an open pool.
func New(db *sqlx.DB, metrics Metrics) (*Store, error) {
	if metrics == nil {
		return nil, errors.New("postgres metrics is required")
	}
	return &Store{queries: queries{db: db, metrics: metrics}, pool: db}, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	return s.pool.Close()
}

// WithTx runs fn inside one transaction, rolling back when fn or the commit fails.
func (s *Store) WithTx(ctx context.Context, fn func(store.Tx) error) (err error) {
	defer s.observe("with_tx", time.Now(), &err)

	tx, err := s.pool.BeginTxx(ctx, nil)
	if err != nil {
		return dbError(err, "begin transaction")
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, dbError(rbErr, "rollback"))
		}
	}()

	if err = fn(&Tx{queries: queries{db: tx, metrics: s.metrics}}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return dbError(err, "commit")
	}
	return nil
}

// dbError classifies a driver error: unique violations become model.ErrAlreadyExists,
// foreign key violations model.ErrNotFound and everything else model.ErrDB.
func dbError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w: %w", msg, model.ErrAlreadyExists, err)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", msg, model.ErrNotFound, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", msg, model.ErrDB, err)
}
