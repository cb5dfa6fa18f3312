package agrum

import (
	"fmt"
	"strings"
)

// SourceAlias binds an alias token name to the text it stands for.
type SourceAlias struct {
	Name  string
	Value string
}

// Alias is shorthand for a SourceAlias.
func Alias(name, value string) SourceAlias {
	return SourceAlias{Name: name, Value: value}
}

// SourceAliases resolves {:name:} alias tokens in projection and
// condition text, so definitions written against logical source names
// compose into joined queries using the actual table aliases.
type SourceAliases struct {
	aliases []SourceAlias
}

// NewSourceAliases builds the alias set in the given order.
func NewSourceAliases(aliases ...SourceAlias) *SourceAliases {
	return &SourceAliases{aliases: append([]SourceAlias(nil), aliases...)}
}

// Resolve replaces every alias token in text. A nil receiver resolves
// nothing.
func (s *SourceAliases) Resolve(text string) string {
	if s == nil {
		return text
	}
	for _, a := range s.aliases {
		text = strings.ReplaceAll(text, "{:"+a.Name+":}", a.Value)
	}
	return text
}

// ProjectionField binds an output alias to the SQL expression producing
// it. The definition is usually a column name but can be any SQL
// expression, possibly containing source alias tokens.
type ProjectionField struct {
	Alias      string
	Definition string
}

// Projection is the named list of output expressions a query selects for
// one entity type. Rendering order is entry order.
type Projection struct {
	fields []ProjectionField
	strict bool
}

// NewProjection builds a projection from explicit fields.
func NewProjection(fields ...ProjectionField) *Projection {
	return &Projection{fields: append([]ProjectionField(nil), fields...)}
}

// DefaultProjection projects every structure column as itself, in
// structure order.
func DefaultProjection(structure *Structure) *Projection {
	fields := make([]ProjectionField, len(structure.fields))
	for i, f := range structure.fields {
		fields[i] = ProjectionField{Alias: f.Name, Definition: f.Name}
	}
	return &Projection{fields: fields}
}

// Strict makes SetDefinition reject aliases the projection does not
// declare, instead of appending new entries. Returns the receiver for
// chaining.
func (p *Projection) Strict() *Projection {
	p.strict = true
	return p
}

// TrySetDefinition replaces the expression bound to alias, keeping the
// entry's position. An unknown alias appends a new entry, or fails with
// an UnknownAliasError in strict mode.
func (p *Projection) TrySetDefinition(alias, definition string) error {
	for i := range p.fields {
		if p.fields[i].Alias == alias {
			p.fields[i].Definition = definition
			return nil
		}
	}
	if p.strict {
		return &UnknownAliasError{Alias: alias}
	}

	p.fields = append(p.fields, ProjectionField{Alias: alias, Definition: definition})
	return nil
}

// SetDefinition is the chaining form of TrySetDefinition; it panics when
// a strict projection rejects the alias.
func (p *Projection) SetDefinition(alias, definition string) *Projection {
	if err := p.TrySetDefinition(alias, definition); err != nil {
		panic(err)
	}
	return p
}

// Fields returns a copy of the ordered projection entries.
func (p *Projection) Fields() []ProjectionField {
	return append([]ProjectionField(nil), p.fields...)
}

// Expand renders `definition as alias` pairs joined by commas, in entry
// order, with source alias tokens resolved.
func (p *Projection) Expand(aliases *SourceAliases) string {
	parts := make([]string, len(p.fields))
	for i, f := range p.fields {
		parts[i] = fmt.Sprintf("%s as %s", f.Definition, f.Alias)
	}
	return aliases.Resolve(strings.Join(parts, ", "))
}
