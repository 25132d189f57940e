package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"headset-lending-backend/internal/apperrors"
	portsrepo "headset-lending-backend/internal/core/ports/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ensure BaseRepository implements portsrepo.TransactionManager
var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, classifyError("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return classifyError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// Postgres error codes that mean the commit lost a race or the store is
// momentarily unavailable. Callers may retry these.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgTooManyConnections   = "53300"
)

// classifyError maps storage errors onto the application taxonomy: retryable
// contention/availability failures become ErrTransient rejections, everything
// else stays an internal AppError.
func classifyError(message string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable, pgTooManyConnections:
			return apperrors.NewRejection(apperrors.CodeStorageUnavailable, apperrors.ErrTransient, message)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewRejection(apperrors.CodeStorageUnavailable, apperrors.ErrTransient, message)
	}
	return apperrors.NewAppError(500, message, err)
}
