package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes worth mapping to domain sentinels. Services already
// pre-check uniqueness and references, but concurrent writers can still hit
// the constraints.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
