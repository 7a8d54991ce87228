package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound indicates the requested entity does not exist
var ErrNotFound = errors.New("not found")

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, used to surface duplicate usernames and emails distinctly.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
