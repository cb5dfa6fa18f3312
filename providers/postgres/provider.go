// Package postgres executes agrum queries through pgx and hydrates the
// results into entities.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/chanmix51/agrum"
	pgdialect "github.com/chanmix51/agrum/postgres"
)

// Querier is the subset of pgx a provider needs. *pgx.Conn and pgx.Tx
// both satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Provider fetches entities of one type through a pgx connection.
type Provider[T any] struct {
	db         Querier
	definition agrum.EntityDefinition[T]
}

// NewProvider binds an entity definition to a connection.
func NewProvider[T any](db Querier, definition agrum.EntityDefinition[T]) *Provider[T] {
	return &Provider[T]{db: db, definition: definition}
}

// Fetch renders the query for PostgreSQL, runs it and hydrates every
// row.
func (p *Provider[T]) Fetch(ctx context.Context, query *agrum.Query) ([]T, error) {
	sql, parameters, err := query.Render(pgdialect.New())
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, sql, parameters...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	for i, field := range rows.FieldDescriptions() {
		index[field.Name] = i
	}

	var entities []T
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("row fetch failed: %w", err)
		}
		entity, err := p.definition.Hydrate(&pgxRow{index: index, values: values})
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row fetch failed: %w", err)
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

// pgxRow adapts one pgx row to the agrum row accessor.
type pgxRow struct {
	index  map[string]int
	values []any
}

func (r *pgxRow) Get(column string) (any, error) {
	i, ok := r.index[column]
	if !ok {
		return nil, fmt.Errorf("no column %q in result row", column)
	}
	return r.values[i], nil
}
