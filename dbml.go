package agrum

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// StructureFromDBML derives a Structure from a DBML table definition,
// one scalar field per column in declaration order.
func StructureFromDBML(table *dbml.Table) (*Structure, error) {
	if table == nil {
		return nil, fmt.Errorf("table cannot be nil")
	}

	fields := make([]StructureField, len(table.Columns))
	for i, column := range table.Columns {
		fields[i] = Field(column.Name, column.Type)
	}

	structure, err := TryStructure(fields...)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", table.Name, err)
	}
	return structure, nil
}
