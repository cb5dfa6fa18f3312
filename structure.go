package agrum

// FieldType is the declared SQL type of a structure field: either a
// scalar type name, or a composite whose shape is itself a Structure
// (Postgres composite-row columns). Hydration recurses through nested
// shapes.
type FieldType struct {
	sql    string
	nested *Structure
}

// Scalar declares a plain SQL type.
func Scalar(sqlType string) FieldType {
	return FieldType{sql: sqlType}
}

// Nested declares a composite type: sqlType is the SQL name of the
// composite (for example "pommr.company"), structure its column shape.
func Nested(sqlType string, structure *Structure) FieldType {
	return FieldType{sql: sqlType, nested: structure}
}

// SQL returns the declared SQL type name.
func (t FieldType) SQL() string { return t.sql }

// IsNested reports whether the type is a composite.
func (t FieldType) IsNested() bool { return t.nested != nil }

// Structure returns the column shape of a composite type, nil for
// scalars.
func (t FieldType) Structure() *Structure { return t.nested }

// StructureField is one (name, declared type) pair.
type StructureField struct {
	Name string
	Type FieldType
}

// Field is shorthand for a scalar structure field.
func Field(name, sqlType string) StructureField {
	return StructureField{Name: name, Type: Scalar(sqlType)}
}

// Structure is the ordered column shape of an entity or relation.
// Immutable once built; field order drives generated column lists.
type Structure struct {
	fields []StructureField
}

// TryStructure builds a Structure, failing with a DuplicateFieldError
// when a field name repeats.
func TryStructure(fields ...StructureField) (*Structure, error) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			return nil, &DuplicateFieldError{Name: f.Name}
		}
		seen[f.Name] = true
	}

	return &Structure{fields: append([]StructureField(nil), fields...)}, nil
}

// NewStructure builds a Structure, panicking on a duplicate field name.
// Use TryStructure to handle the error instead.
func NewStructure(fields ...StructureField) *Structure {
	s, err := TryStructure(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns a copy of the ordered field list.
func (s *Structure) Fields() []StructureField {
	return append([]StructureField(nil), s.fields...)
}

// Names returns the ordered field names, used to synthesize insert
// column lists.
func (s *Structure) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Field returns the named field and whether the structure declares it.
func (s *Structure) Field(name string) (StructureField, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructureField{}, false
}
