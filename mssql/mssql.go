// Package mssql provides the SQL Server placeholder dialect for agrum.
package mssql

import "strconv"

// Dialect renders SQL Server positional placeholders (@p1, @p2, …).
type Dialect struct{}

// New creates a new SQL Server dialect.
func New() Dialect { return Dialect{} }

// Placeholder returns the placeholder for the 1-based position.
func (Dialect) Placeholder(position int) string {
	return "@p" + strconv.Itoa(position)
}
