package db

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/agrilog/agrilog/internal/shared"
)

// Classify maps driver errors onto the shared error kinds.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return shared.ErrNotFound
	}
	if IsConnectivity(err) {
		return shared.Unavailable(op, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02", "23502", "23514":
			field := pgErr.ColumnName
			if field == "" {
				field = pgErr.ConstraintName
			}
			return shared.Invalid(field, "%s", pgErr.Message)
		case "23505":
			return errors.Join(shared.ErrDuplicate, err)
		case "42P01":
			// undefined table: the schema has not been applied yet
			return shared.Unavailable(op, err)
		}
	}
	return err
}

// IsConnectivity reports whether err means the database could not be reached in time.
func IsConnectivity(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 08: connection exception, 57P01..03: admin shutdown / cannot connect now
		return len(pgErr.Code) == 5 && (pgErr.Code[:2] == "08" || pgErr.Code[:3] == "57P")
	}
	return false
}
