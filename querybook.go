package agrum

import (
	"fmt"
	"strings"
)

// Statement templates used by QueryBook. The {:structure:} slot expands
// to the joined column-name list of the entity's Structure, {:values:}
// to one $? marker per column, {:updates:} to `column = $?` assignments.
const (
	SelectTemplate = "select {:projection:} from {:source:} where {:condition:}"
	InsertTemplate = "insert into {:source:} ({:structure:}) values ({:values:}) returning {:projection:}"
	UpdateTemplate = "update {:source:} set {:updates:} where {:condition:} returning {:projection:}"
	DeleteTemplate = "delete from {:source:} where {:condition:} returning {:projection:}"
)

// Assignment is one column update in an update statement.
type Assignment struct {
	Column string
	Value  any
}

// Set is shorthand for an Assignment.
func Set(column string, value any) Assignment {
	return Assignment{Column: column, Value: value}
}

// QueryBook builds the usual statements for one entity type from its
// source relation and definition. Safe to share: every method returns a
// fresh Query and mutates nothing.
type QueryBook[T any] struct {
	Source     string
	Definition EntityDefinition[T]
	Aliases    *SourceAliases
}

// NewQueryBook binds a source relation (table, view, subquery…) to an
// entity definition.
func NewQueryBook[T any](source string, definition EntityDefinition[T]) *QueryBook[T] {
	return &QueryBook[T]{Source: source, Definition: definition}
}

// WithAliases sets the source aliases applied when expanding the
// projection and conditions. Returns the receiver for chaining.
func (b *QueryBook[T]) WithAliases(aliases *SourceAliases) *QueryBook[T] {
	b.Aliases = aliases
	return b
}

// Select builds the book's select statement for the given condition.
func (b *QueryBook[T]) Select(condition *WhereCondition) *Query {
	return b.SelectWith(SelectTemplate, condition)
}

// SelectWith builds a select from a custom template, for joined or
// otherwise hand-written statements. Extra variables used by the
// template are set by the caller on the returned query.
func (b *QueryBook[T]) SelectWith(template string, condition *WhereCondition) *Query {
	text, parameters := condition.Expand(b.Aliases)
	return NewQuery(template).
		SetVariable("projection", b.Definition.Projection.Expand(b.Aliases)).
		SetVariable("source", b.Source).
		SetVariable("condition", text).
		SetParameters(parameters)
}

// Insert builds the book's insert statement. Values bind in structure
// column order, one per column; a count mismatch is a
// ParameterCountError.
func (b *QueryBook[T]) Insert(values ...any) (*Query, error) {
	names := b.Definition.Structure.Names()
	if len(values) != len(names) {
		return nil, &ParameterCountError{
			Expression: InsertTemplate,
			Markers:    len(names),
			Parameters: len(values),
		}
	}

	markers := make([]string, len(names))
	for i := range markers {
		markers[i] = Marker
	}

	return NewQuery(InsertTemplate).
		SetVariable("projection", b.Definition.Projection.Expand(b.Aliases)).
		SetVariable("source", b.Source).
		SetVariable("structure", strings.Join(names, ", ")).
		SetVariable("values", strings.Join(markers, ", ")).
		SetParameters(values), nil
}

// Update builds the book's update statement. Assignment parameters
// precede the condition's in the positional sequence, matching their
// textual order.
func (b *QueryBook[T]) Update(assignments []Assignment, condition *WhereCondition) *Query {
	sets := make([]string, len(assignments))
	query := NewQuery(UpdateTemplate).
		SetVariable("projection", b.Definition.Projection.Expand(b.Aliases)).
		SetVariable("source", b.Source)
	for i, a := range assignments {
		sets[i] = fmt.Sprintf("%s = %s", a.Column, Marker)
		query.AddParameter(a.Value)
	}
	query.SetVariable("updates", strings.Join(sets, ", "))

	text, parameters := condition.Expand(b.Aliases)
	return query.
		SetVariable("condition", text).
		SetParameters(parameters)
}

// Delete builds the book's delete statement.
func (b *QueryBook[T]) Delete(condition *WhereCondition) *Query {
	text, parameters := condition.Expand(b.Aliases)
	return NewQuery(DeleteTemplate).
		SetVariable("projection", b.Definition.Projection.Expand(b.Aliases)).
		SetVariable("source", b.Source).
		SetVariable("condition", text).
		SetParameters(parameters)
}
