package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrValueOutOfRange is returned when a numeric value does not fit its column
var ErrValueOutOfRange = errors.New("numeric value out of range")

// PostgreSQL SQLSTATE codes
const (
	uniqueViolation      = "23505"
	numericValueOutRange = "22003"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == numericValueOutRange
}
