// Package mysql executes agrum queries over database/sql with the
// go-sql-driver MySQL driver.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/chanmix51/agrum"
	"github.com/chanmix51/agrum/internal/rowscan"
	mysqldialect "github.com/chanmix51/agrum/mysql"
)

// Open connects using a go-sql-driver configuration.
func Open(config *mysql.Config) (*sql.DB, error) {
	connector, err := mysql.NewConnector(config)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql configuration: %w", err)
	}
	return sql.OpenDB(connector), nil
}

// Provider fetches entities of one type through a MySQL database.
type Provider[T any] struct {
	db         *sql.DB
	definition agrum.EntityDefinition[T]
}

// NewProvider binds an entity definition to a database handle.
func NewProvider[T any](db *sql.DB, definition agrum.EntityDefinition[T]) *Provider[T] {
	return &Provider[T]{db: db, definition: definition}
}

// Fetch renders the query for MySQL, runs it and hydrates every row.
func (p *Provider[T]) Fetch(ctx context.Context, query *agrum.Query) ([]T, error) {
	text, parameters, err := query.Render(mysqldialect.New())
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
