package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// IsPgUniqueViolation reports whether err carries a unique_violation from
// postgres and, if so, the server's message.
func IsPgUniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.Message, true
	}
	return "", false
}
