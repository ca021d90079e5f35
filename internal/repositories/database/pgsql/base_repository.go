package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// Postgres error codes and constraint names the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	constraintAccountCode   = "accounts_code_key"
	constraintActiveSource  = "journal_entries_active_source_key"
	constraintLineAccount   = "journal_lines_account_id_fkey"
	constraintAccountParent = "accounts_parent_account_id_fkey"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.KindStorage, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return translateError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(apperrors.KindStorage, "failed to rollback transaction", err)
	}
	return nil
}

// translateError maps driver errors onto the ledger's error kinds. Errors that are
// already AppErrors pass through untouched.
func translateError(err error, message string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.Wrap(apperrors.ErrNotFound, err, "%s", message)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintAccountCode:
			return apperrors.Wrap(apperrors.ErrDuplicateCode, err, "%s", message)
		case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintActiveSource:
			return apperrors.Wrap(apperrors.ErrDuplicateSource, err, "%s", message)
		case pgErr.Code == pgUniqueViolation:
			return apperrors.Wrap(apperrors.ErrConflict, err, "%s", message)
		case pgErr.Code == pgForeignKeyViolation && pgErr.ConstraintName == constraintLineAccount:
			return apperrors.Wrap(apperrors.ErrUnknownAccount, err, "%s", message)
		case pgErr.Code == pgForeignKeyViolation && pgErr.ConstraintName == constraintAccountParent:
			return apperrors.Wrap(apperrors.ErrInvalidHierarchy, err, "%s", message)
		}
	}
	return apperrors.NewAppError(apperrors.KindStorage, message, err)
}

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends a condition; each "?" in cond is replaced by the next placeholder.
func (w *whereBuilder) add(cond string, args ...any) {
	for _, arg := range args {
		w.args = append(w.args, arg)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) addDateRange(column string, r domain.DateRange) {
	if !r.From.IsZero() {
		w.add(column+" >= ?", domain.TruncateDate(r.From))
	}
	if !r.To.IsZero() {
		w.add(column+" <= ?", domain.TruncateDate(r.To))
	}
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
