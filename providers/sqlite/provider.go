// Package sqlite executes agrum queries over database/sql with the pure
// Go modernc.org sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/chanmix51/agrum"
	"github.com/chanmix51/agrum/internal/rowscan"
	sqlitedialect "github.com/chanmix51/agrum/sqlite"
)

// Open opens a SQLite database file; use ":memory:" for an in-memory
// database.
func Open(path string) (*sql.DB, error) {
	return sql.Open("sqlite", path)
}

// Provider fetches entities of one type through a SQLite database.
type Provider[T any] struct {
	db         *sql.DB
	definition agrum.EntityDefinition[T]
}

// NewProvider binds an entity definition to a database handle.
func NewProvider[T any](db *sql.DB, definition agrum.EntityDefinition[T]) *Provider[T] {
	return &Provider[T]{db: db, definition: definition}
}

// Fetch renders the query for SQLite, runs it and hydrates every row.
func (p *Provider[T]) Fetch(ctx context.Context, query *agrum.Query) ([]T, error) {
	text, parameters, err := query.Render(sqlitedialect.New())
	if err != nil {
		return nil, err
	}

	rows, err := p.db.QueryContext(ctx, text, parameters...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	records, err := rowscan.All(rows)
	if err != nil {
		return nil, fmt.Errorf("row fetch failed: %w", err)
	}

	entities := make([]T, 0, len(records))
	for _, record := range records {
		entity, err := p.definition.Hydrate(record)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// FetchOne returns the first entity matching the query, reporting
// whether one was found.
func (p *Provider[T]) FetchOne(ctx context.Context, query *agrum.Query) (T, bool, error) {
	entities, err := p.Fetch(ctx, query)
	if err != nil || len(entities) == 0 {
		var zero T
		return zero, false, err
	}
	return entities[0], true, nil
}
