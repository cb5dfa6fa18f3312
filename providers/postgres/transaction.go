package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Transaction option shortcuts mirroring the usual PostgreSQL
// characteristics. Pass the result to WithTransaction or
// pgx.Conn.BeginTx.

// ReadCommitted returns options for a read-committed read-write
// transaction, the PostgreSQL default.
func ReadCommitted() pgx.TxOptions {
	return pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
}

// RepeatableRead returns options for a repeatable-read read-write
// transaction.
func RepeatableRead() pgx.TxOptions {
	return pgx.TxOptions{IsoLevel: pgx.RepeatableRead}
}

// Serializable returns options for a serializable read-write
// transaction.
func Serializable() pgx.TxOptions {
	return pgx.TxOptions{IsoLevel: pgx.Serializable}
}

// ReadOnly marks the transaction read only.
func ReadOnly(options pgx.TxOptions) pgx.TxOptions {
	options.AccessMode = pgx.ReadOnly
	return options
}

// Beginner starts transactions. *pgx.Conn and pgx.Tx (savepoints) both
// satisfy it.
type Beginner interface {
	BeginTx(ctx context.Context, options pgx.TxOptions) (pgx.Tx, error)
}

// WithTransaction begins a transaction, runs fn and commits. When fn
// returns an error the transaction is rolled back and the error
// returned.
func WithTransaction(ctx context.Context, db Beginner, options pgx.TxOptions, fn func(pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, options)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (while handling: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
