package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = "Error 1062"
	sqliteUniqueFailed   = "UNIQUE constraint failed"
	postgresDuplicateKey = "duplicate key value"
)

// IsUniqueViolation reports whether err is a unique constraint violation from
// any supported driver. When constraint is non-empty the violation must also
// name it (an index name on postgres/mysql, a table.column pair on sqlite).
func IsUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return constraint == "" || pgErr.ConstraintName == constraint
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return constraint == "" || pqErr.Constraint == constraint
	}

	msg := err.Error()
	matched := strings.Contains(msg, postgresDuplicateKey) ||
		strings.Contains(msg, mysqlDuplicateEntry) ||
		strings.Contains(msg, sqliteUniqueFailed)
	if !matched {
		return false
	}
	return constraint == "" || strings.Contains(msg, constraint)
}
