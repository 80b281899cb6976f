package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE que los adaptadores traducen a errores de dominio.
const codeUniqueViolation = "23505"

// isUniqueViolation reporta si err proviene de un índice único, p. ej. un
// email o un teléfono repetidos.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
