package agrum

import "fmt"

// ParameterCountError indicates a disagreement between the number of
// generic $? markers in a SQL text and the number of bound parameters.
type ParameterCountError struct {
	Expression string
	Markers    int
	Parameters int
}

func (e *ParameterCountError) Error() string {
	return fmt.Sprintf("expression %q contains %d parameter marker(s) but %d value(s) are bound",
		e.Expression, e.Markers, e.Parameters)
}

// UnresolvedVariableError indicates a {:name:} template slot with no
// value at render time.
type UnresolvedVariableError struct {
	Name string
}

func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("template variable {:%s:} has no value", e.Name)
}

// UnknownAliasError indicates a strict projection redefinition targeting
// an alias the projection does not declare.
type UnknownAliasError struct {
	Alias string
}

func (e *UnknownAliasError) Error() string {
	return fmt.Sprintf("projection declares no field aliased %q", e.Alias)
}

// DuplicateFieldError indicates a repeated field name in a Structure.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("field %q is declared twice", e.Name)
}

// HydrationError indicates a row-to-entity mapping failure: a missing
// column, a type mismatch or a driver fetch error.
type HydrationError struct {
	Column string
	Err    error
}

func (e *HydrationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("hydration failed on column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("hydration failed: %v", e.Err)
}

func (e *HydrationError) Unwrap() error { return e.Err }
