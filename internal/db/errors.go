package db

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the repositories translate into domain errors.
const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
)

func pqError(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}
	return nil, false
}

func IsUniqueViolation(err error) bool {
	pqErr, ok := pqError(err)
	return ok && string(pqErr.Code) == PgUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	pqErr, ok := pqError(err)
	return ok && string(pqErr.Code) == PgForeignKeyViolation
}

// Constraint returns the violated constraint name, or "" for non-pq errors.
func Constraint(err error) string {
	if pqErr, ok := pqError(err); ok {
		return pqErr.Constraint
	}
	return ""
}
