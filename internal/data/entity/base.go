package entity

import (
	"strings"
	"time"
)

type Base struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

// EqualRole compares two role names case-insensitively.
func EqualRole(a, b string) bool {
	return strings.EqualFold(a, b)
}
