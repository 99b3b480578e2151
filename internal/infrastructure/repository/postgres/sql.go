package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Poolers in transaction mode drop unnamed prepared statements between
// round trips; both errors below are safe to retry once.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "bind message supplies") && strings.Contains(msg, "prepared statement")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "unnamed prepared statement does not exist") ||
		(strings.Contains(msg, "prepared statement") && strings.Contains(msg, "(26000)"))
}

func isRetryableStatementError(err error) bool {
	return isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err)
}

func selectContext(ctx context.Context, db sqlx.QueryerContext, dest any, query string, args ...any) error {
	err := sqlx.SelectContext(ctx, db, dest, query, args...)
	if isRetryableStatementError(err) {
		err = sqlx.SelectContext(ctx, db, dest, query, args...)
	}
	return err
}

func getContext(ctx context.Context, db sqlx.QueryerContext, dest any, query string, args ...any) error {
	err := sqlx.GetContext(ctx, db, dest, query, args...)
	if isRetryableStatementError(err) {
		err = sqlx.GetContext(ctx, db, dest, query, args...)
	}
	return err
}

func nullString(v string) sql.NullString {
	v = strings.TrimSpace(v)
	return sql.NullString{String: v, Valid: v != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}
