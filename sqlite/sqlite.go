// Package sqlite provides the SQLite placeholder dialect for agrum.
package sqlite

// Dialect renders SQLite ordinal placeholders (?).
type Dialect struct{}

// New creates a new SQLite dialect.
func New() Dialect { return Dialect{} }

// Placeholder returns the placeholder for the 1-based position.
func (Dialect) Placeholder(int) string { return "?" }
