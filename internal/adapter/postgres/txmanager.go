package postgres

import (
	"context"
	"fmt"
)

// TxManager runs callbacks inside a database transaction carried by the context.
// Nested RunInTx calls reuse the outer transaction.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a database transaction (Read Committed).
// On success it commits. On error from fn it rolls back and returns the error.
// On panic it rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
