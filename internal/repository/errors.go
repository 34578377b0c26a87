package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a requested record is not found in the repository.
// This abstracts away the underlying storage implementation (SQL, NoSQL, etc.)
// from the service layer.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint
// (team name, seeding per team, spirit score per match and team pair, admin username).
var ErrDuplicate = errors.New("record already exists")

// isUniqueViolation reports whether err is a SQLite UNIQUE or PRIMARY KEY constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// mapInsertError converts uniqueness failures to ErrDuplicate
func mapInsertError(err error) error {
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
