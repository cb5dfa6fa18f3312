// Package mysql provides the MySQL/MariaDB placeholder dialect for agrum.
package mysql

// Dialect renders MySQL ordinal placeholders (?).
type Dialect struct{}

// New creates a new MySQL dialect.
func New() Dialect { return Dialect{} }

// Placeholder returns the placeholder for the 1-based position. MySQL
// placeholders are ordinal: position only matters for binding order.
func (Dialect) Placeholder(int) string { return "?" }
