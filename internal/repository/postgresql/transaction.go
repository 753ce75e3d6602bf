package postgresql

import (
	"context"
	"fmt"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// txKey keeps the injected transaction private to this package; callers can
// only put one in a context through InjectTx.
type txKey struct{}

// InjectTx returns a context that routes every repository call made with it
// through tx instead of the pool.
func InjectTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// WithTransaction runs fn inside a single transaction. The transaction rolls
// back when fn returns an error or panics, and commits otherwise.
func WithTransaction(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// querier resolves to the transaction injected via InjectTx when one is in
// flight, and to the shared pool otherwise.
func querier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
