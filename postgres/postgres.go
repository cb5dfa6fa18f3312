// Package postgres provides the PostgreSQL placeholder dialect for agrum.
package postgres

import "strconv"

// Dialect renders PostgreSQL positional placeholders ($1, $2, …).
type Dialect struct{}

// New creates a new PostgreSQL dialect.
func New() Dialect { return Dialect{} }

// Placeholder returns the placeholder for the 1-based position.
func (Dialect) Placeholder(position int) string {
	return "$" + strconv.Itoa(position)
}
