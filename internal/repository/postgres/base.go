package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-api/internal/model"
)

// BaseRepository provides common functionality for all repositories. Every
// resource statement goes through insert, exec or selectAll, so each request
// issues exactly one statement.
type BaseRepository struct {
	db *sqlx.DB
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sqlx.DB) BaseRepository {
	return BaseRepository{db: db}
}

// insert runs an INSERT ... RETURNING <pk> and returns the generated id.
func (r *BaseRepository) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// exec runs an UPDATE or DELETE and reports the affected row count.
func (r *BaseRepository) exec(ctx context.Context, query string, args ...any) (model.Result, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Result{}, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return model.Result{}, err
	}
	return model.Result{AffectedRows: rows}, nil
}

func (r *BaseRepository) selectAll(ctx context.Context, dest any, query string) error {
	return r.db.SelectContext(ctx, dest, query)
}

// WithTx executes a function within a transaction
func (r *BaseRepository) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
