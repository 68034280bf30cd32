package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

// violatesForeignKey reports whether err is a foreign key violation on the named constraint
// (any constraint when name is empty).
func violatesForeignKey(err error, name string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolation {
		return false
	}
	return name == "" || pgErr.ConstraintName == name
}
