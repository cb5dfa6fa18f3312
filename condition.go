package agrum

import (
	"fmt"
	"strings"
)

// Marker is the generic parameter placeholder written in condition
// expressions and query templates. Query.Render translates every
// occurrence into the target dialect's positional placeholder.
const Marker = "$?"

type conditionKind int

const (
	condNone conditionKind = iota
	condExpression
	condAnd
	condOr
)

// booleanCondition is one node of a condition tree: the identity, a
// literal expression, or the AND/OR combination of two subtrees.
type booleanCondition struct {
	kind  conditionKind
	expr  string
	left  *booleanCondition
	right *booleanCondition
}

func (c *booleanCondition) isNone() bool {
	return c == nil || c.kind == condNone
}

// needsPrecedence reports whether the node must be parenthesized when
// joined under an AND. Lone expressions never are.
func (c *booleanCondition) needsPrecedence() bool {
	return c != nil && c.kind == condOr
}

func (c *booleanCondition) expand(sql *strings.Builder) {
	switch {
	case c.isNone():
		sql.WriteString("true")
	case c.kind == condExpression:
		sql.WriteString(c.expr)
	case c.kind == condAnd:
		expandSide(sql, c.left)
		sql.WriteString(" and ")
		expandSide(sql, c.right)
	default:
		c.left.expand(sql)
		sql.WriteString(" or ")
		c.right.expand(sql)
	}
}

func expandSide(sql *strings.Builder, side *booleanCondition) {
	if side.needsPrecedence() {
		sql.WriteByte('(')
		side.expand(sql)
		sql.WriteByte(')')
		return
	}
	side.expand(sql)
}

// WhereCondition is a composable boolean expression fragment carrying its
// own bound parameter values. Each $? marker in the expression text pairs
// with one value; the pairing is checked at construction and preserved by
// every combination.
type WhereCondition struct {
	condition  *booleanCondition
	parameters []any
}

// MatchAll returns the identity condition. It binds no parameters and
// expands to the tautology "true", so a literal `where` in the
// surrounding template stays syntactically valid.
func MatchAll() *WhereCondition {
	return &WhereCondition{}
}

// TryWhere creates a condition from a SQL boolean expression and the
// values bound to its $? markers. It fails with a ParameterCountError
// when marker and value counts disagree.
func TryWhere(expression string, parameters ...any) (*WhereCondition, error) {
	if markers := strings.Count(expression, Marker); markers != len(parameters) {
		return nil, &ParameterCountError{
			Expression: expression,
			Markers:    markers,
			Parameters: len(parameters),
		}
	}

	return &WhereCondition{
		condition:  &booleanCondition{kind: condExpression, expr: expression},
		parameters: parameters,
	}, nil
}

// Where creates a condition, panicking when marker and value counts
// disagree. Use TryWhere to handle the error instead.
func Where(expression string, parameters ...any) *WhereCondition {
	c, err := TryWhere(expression, parameters...)
	if err != nil {
		panic(err)
	}
	return c
}

// WhereIn creates a `field in ($?, …)` condition with one marker and one
// bound value per element of values. Callers must pass at least one
// value: an empty list renders `field in ()`, which no SQL engine
// accepts.
func WhereIn(field string, values ...any) *WhereCondition {
	markers := make([]string, len(values))
	for i := range markers {
		markers[i] = Marker
	}

	return &WhereCondition{
		condition: &booleanCondition{
			kind: condExpression,
			expr: fmt.Sprintf("%s in (%s)", field, strings.Join(markers, ", ")),
		},
		parameters: values,
	}
}

// AndWhere combines the receiver with other using AND and returns the
// receiver for chaining. Combining with the identity condition on either
// side short-circuits to the other side, with no combinator inserted.
func (c *WhereCondition) AndWhere(other *WhereCondition) *WhereCondition {
	return c.combine(condAnd, other)
}

// OrWhere combines the receiver with other using OR and returns the
// receiver for chaining. The identity condition short-circuits as in
// AndWhere.
func (c *WhereCondition) OrWhere(other *WhereCondition) *WhereCondition {
	return c.combine(condOr, other)
}

func (c *WhereCondition) combine(kind conditionKind, other *WhereCondition) *WhereCondition {
	if other == nil || other.condition.isNone() {
		return c
	}
	if c.condition.isNone() {
		c.condition = other.condition
		c.parameters = other.parameters
		return c
	}

	c.condition = &booleanCondition{kind: kind, left: c.condition, right: other.condition}
	c.parameters = append(c.parameters, other.parameters...)
	return c
}

// Expand renders the tree depth-first left-to-right and returns the
// expression text together with the bound parameters in binding order.
// Source alias tokens are resolved; $? markers stay generic, Query.Render
// numbers them. The binding order of the returned parameters matches the
// textual order of the markers.
func (c *WhereCondition) Expand(aliases *SourceAliases) (string, []any) {
	if c == nil {
		return "true", nil
	}

	var sql strings.Builder
	c.condition.expand(&sql)
	return aliases.Resolve(sql.String()), c.parameters
}
