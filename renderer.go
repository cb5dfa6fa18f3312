package agrum

// Dialect translates generic $? markers into the positional placeholder
// syntax of a target database. Keeping the translation behind this
// interface makes Query.Render a pure text transform unaware of the
// dialect; implementations live in the postgres, mysql, sqlite and mssql
// packages.
type Dialect interface {
	// Placeholder returns the placeholder text for the 1-based position.
	Placeholder(position int) string
}
