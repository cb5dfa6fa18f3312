package agrum

import "fmt"

// Row gives access to one result row by column name. Execution
// collaborators (the providers packages) adapt their driver rows to this
// interface; the core never touches a database itself.
type Row interface {
	Get(column string) (any, error)
}

// HydrateFunc maps one result row to a typed entity value.
type HydrateFunc[T any] func(Row) (T, error)

// EntityDefinition ties together the column shape, the projection and
// the hydration function of one entity type. Because the same definition
// supplies both, the projection a query renders is by construction the
// one whose output columns Hydrate expects.
type EntityDefinition[T any] struct {
	Structure  *Structure
	Projection *Projection
	Hydrate    HydrateFunc[T]
}

// DefaultDefinition builds a definition whose projection is the
// structure's self-projection.
func DefaultDefinition[T any](structure *Structure, hydrate HydrateFunc[T]) EntityDefinition[T] {
	return EntityDefinition[T]{
		Structure:  structure,
		Projection: DefaultProjection(structure),
		Hydrate:    hydrate,
	}
}

// GetColumn fetches a column and asserts its Go type, wrapping failures
// in a HydrationError. A convenience for writing hydration functions.
func GetColumn[V any](row Row, column string) (V, error) {
	var zero V

	raw, err := row.Get(column)
	if err != nil {
		return zero, &HydrationError{Column: column, Err: err}
	}
	value, ok := raw.(V)
	if !ok {
		return zero, &HydrationError{
			Column: column,
			Err:    fmt.Errorf("cannot use %T as %T", raw, zero),
		}
	}

	return value, nil
}
