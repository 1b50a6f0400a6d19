package database

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound marks lookups whose subject does not exist; handlers map it
// to a 404 instead of a 500.
var ErrNotFound = errors.New("not found")

func nullTimeToPointer(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}

func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}
	return page, size
}
