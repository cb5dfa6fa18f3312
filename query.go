package agrum

import "strings"

// Query assembles a SQL template, named variables and an ordered
// parameter list into a ready-to-execute statement.
//
// The template may contain {:name:} variable slots and generic $?
// parameter markers. Render resolves the slots and numbers the markers;
// it never mutates the query, so rendering twice yields identical
// output and the same instance serves both inspection and execution.
type Query struct {
	template   string
	variables  map[string]string
	parameters []any
}

// NewQuery stores the raw template text verbatim.
func NewQuery(template string) *Query {
	return &Query{
		template:  template,
		variables: make(map[string]string),
	}
}

// SetVariable records the substitution for every {:name:} occurrence in
// the template. Setting a name twice overwrites the previous value.
// Returns the receiver for chaining.
func (q *Query) SetVariable(name, value string) *Query {
	q.variables[name] = value
	return q
}

// AddParameter appends one positional parameter whose $? marker is
// written literally in the template text.
func (q *Query) AddParameter(value any) *Query {
	q.parameters = append(q.parameters, value)
	return q
}

// SetParameters appends a batch of parameters, typically the ones
// returned by a condition's Expand. The batch continues the positional
// sequence after anything added with AddParameter; numbering is a single
// textual pass at render time, so both sources combine correctly.
func (q *Query) SetParameters(values []any) *Query {
	q.parameters = append(q.parameters, values...)
	return q
}

// Parameters returns a copy of the ordered parameter list.
func (q *Query) Parameters() []any {
	return append([]any(nil), q.parameters...)
}

// Render resolves the final SQL text and parameter list for the given
// dialect.
//
// Every {:name:} slot is substituted, including slots introduced by
// substituted values; a slot with no value fails with an
// UnresolvedVariableError, never with silently empty text. Variables
// never used by the template are ignored. A single left-to-right pass
// then replaces each $? marker with the dialect placeholder for its
// 1-based position, failing with a ParameterCountError when marker and
// parameter counts disagree. Placeholder k binds the k-th returned
// parameter.
func (q *Query) Render(dialect Dialect) (string, []any, error) {
	sql := q.template

	// Substituted values may themselves carry slots; one extra round per
	// variable bounds the fixpoint.
	for range len(q.variables) + 1 {
		replaced := sql
		for name, value := range q.variables {
			replaced = strings.ReplaceAll(replaced, "{:"+name+":}", value)
		}
		if replaced == sql {
			break
		}
		sql = replaced
	}
	if name, ok := findSlot(sql); ok {
		return "", nil, &UnresolvedVariableError{Name: name}
	}

	if markers := strings.Count(sql, Marker); markers != len(q.parameters) {
		return "", nil, &ParameterCountError{
			Expression: sql,
			Markers:    markers,
			Parameters: len(q.parameters),
		}
	}

	var out strings.Builder
	position := 0
	for {
		i := strings.Index(sql, Marker)
		if i < 0 {
			out.WriteString(sql)
			break
		}
		position++
		out.WriteString(sql[:i])
		out.WriteString(dialect.Placeholder(position))
		sql = sql[i+len(Marker):]
	}

	return out.String(), q.Parameters(), nil
}

// findSlot returns the name of the first {:name:} slot left in sql.
// Text opening a brace pair without closing it ("{:" with no ":}" after
// the opener, such as a literal '{:}') is not a slot.
func findSlot(sql string) (string, bool) {
	start := strings.Index(sql, "{:")
	if start < 0 {
		return "", false
	}
	rest := sql[start+2:]
	end := strings.Index(rest, ":}")
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
