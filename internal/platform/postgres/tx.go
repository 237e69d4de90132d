// Copyright (c) 2026 Fyyur. All rights reserved.

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxBeginner is satisfied by *pgxpool.Pool and pgx.Tx.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

/*
WithTx runs fn inside a transaction.

The transaction commits when fn returns nil and rolls back otherwise, so a
failed multi-statement write (venue cascade delete, record update) leaves no
partial state behind. Errors from fn are returned unchanged so callers can
still classify them.
*/
func WithTx(ctx context.Context, db TxBeginner, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin transaction: %w", err)
	}
	// Rollback after a successful commit is a no-op returning pgx.ErrTxClosed.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit transaction: %w", err)
	}
	return nil
}
