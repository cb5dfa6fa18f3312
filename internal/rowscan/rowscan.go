// Package rowscan adapts database/sql result rows to the agrum row
// accessor, shared by the database/sql backed providers.
package rowscan

import (
	"database/sql"
	"fmt"
)

// Record is one scanned row, addressable by column name.
type Record struct {
	index  map[string]int
	values []any
}

// Get returns the value of the named column.
func (r *Record) Get(column string) (any, error) {
	i, ok := r.index[column]
	if !ok {
		return nil, fmt.Errorf("no column %q in result row", column)
	}
	return r.values[i], nil
}

// All drains rows into records. The caller still owns rows and must
// close them.
func All(rows *sql.Rows) ([]*Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}

	var records []*Record
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		records = append(records, &Record{index: index, values: values})
	}

	return records, rows.Err()
}
