package store

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Scope is one filter clause. A list query ANDs every scope it is
// given; absent query parameters contribute no scope.
type Scope = func(*gorm.DB) *gorm.DB

// Equal filters on exact column equality.
func Equal(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// Search matches records where any of the named columns contains text,
// case-insensitively. This is the one OR in the filter table.
func Search(text string, columns ...string) Scope {
	pattern := "%" + strings.ToLower(text) + "%"
	return func(db *gorm.DB) *gorm.DB {
		conds := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		// Parenthesized so the OR stays inside this one clause when
		// other filters AND onto the query.
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

// From keeps records with column >= t (inclusive lower bound).
func From(column string, t time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ?", t)
	}
}

// Until keeps records with column <= t (inclusive upper bound).
func Until(column string, t time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" <= ?", t)
	}
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a date or date-time query parameter. Unparseable
// input is a ValidationError.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, Validationf("invalid date %q", s)
}
