package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	apperrors "task-tracker/internal/errors"
)

// HandleStorageError converts database errors to structured app errors.
// Errors caused by an expired deadline become timeout errors.
func HandleStorageError(ctx context.Context, operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		timeoutErr := apperrors.NewTimeoutError(operation, deadlineOf(ctx))
		timeoutErr.Cause = err
		return timeoutErr
	}
	return apperrors.NewStorageError(operation, err)
}

// RowsAffected reads the affected row count of a result.
func RowsAffected(ctx context.Context, result sql.Result, operation string) (int64, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, HandleStorageError(ctx, operation+": rows affected", err)
	}
	return rows, nil
}

// ExecuteWithLastInsertID executes a query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, db sqlx.ExecerContext, operation string, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleStorageError(ctx, operation, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleStorageError(ctx, operation+": last insert ID", err)
	}

	return id, nil
}

// ExecuteWithRowsAffected executes a query and returns how many rows it touched.
// Zero rows is not an error: positional statements on a missing position are no-ops.
func ExecuteWithRowsAffected(ctx context.Context, db sqlx.ExecerContext, operation string, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleStorageError(ctx, operation, err)
	}

	return RowsAffected(ctx, result, operation)
}

// QuerySingle executes a query that returns at most one row and scans it.
// A missing row yields nil without error.
func QuerySingle[T any](ctx context.Context, db sqlx.QueryerContext, operation string, query string, args ...interface{}) (*T, error) {
	var result T
	if err := sqlx.GetContext(ctx, db, &result, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, HandleStorageError(ctx, operation, err)
	}
	return &result, nil
}

func deadlineOf(ctx context.Context) interface{} {
	if deadline, ok := ctx.Deadline(); ok {
		return deadline
	}
	return nil
}
