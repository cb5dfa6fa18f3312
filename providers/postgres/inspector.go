package postgres

import (
	"context"
	"fmt"

	"github.com/chanmix51/agrum"
)

// DatabaseInfo describes one database of the inspected server.
type DatabaseInfo struct {
	Name        string
	Owner       string
	Encoding    string
	Size        string
	Description string
}

// SchemaInfo describes one schema of the inspected database.
type SchemaInfo struct {
	Name        string
	Relations   int64
	Owner       string
	Description string
}

const databaseListTemplate = `select {:projection:}
from pg_catalog.pg_database as db
where {:condition:}
order by 1`

const schemaListTemplate = `select {:projection:}
from pg_catalog.pg_namespace n
  left join pg_catalog.pg_description d on n.oid = d.objoid
  left join pg_catalog.pg_class c on c.relnamespace = n.oid and c.relkind in ('r', 'v')
  join pg_catalog.pg_roles o on n.nspowner = o.oid
where {:condition:}
group by 1, 3, 4
order by 1`

func databaseInfoDefinition() agrum.EntityDefinition[DatabaseInfo] {
	structure := agrum.NewStructure(
		agrum.Field("name", "text"),
		agrum.Field("owner", "text"),
		agrum.Field("encoding", "text"),
		agrum.Field("size", "text"),
		agrum.Field("description", "text"),
	)
	projection := agrum.DefaultProjection(structure).Strict().
		SetDefinition("name", "db.datname").
		SetDefinition("owner", "pg_catalog.pg_get_userbyid(db.datdba)").
		SetDefinition("encoding", "pg_catalog.pg_encoding_to_char(db.encoding)").
		SetDefinition("size",
			"case when pg_catalog.has_database_privilege(db.datname, 'CONNECT')"+
				" then pg_catalog.pg_size_pretty(pg_catalog.pg_database_size(db.datname))"+
				" else 'No Access' end").
		SetDefinition("description", "pg_catalog.shobj_description(db.oid, 'pg_database')")

	return agrum.EntityDefinition[DatabaseInfo]{
		Structure:  structure,
		Projection: projection,
		Hydrate: func(row agrum.Row) (DatabaseInfo, error) {
			var info DatabaseInfo
			var err error
			if info.Name, err = agrum.GetColumn[string](row, "name"); err != nil {
				return info, err
			}
			if info.Owner, err = agrum.GetColumn[string](row, "owner"); err != nil {
				return info, err
			}
			if info.Encoding, err = agrum.GetColumn[string](row, "encoding"); err != nil {
				return info, err
			}
			if info.Size, err = agrum.GetColumn[string](row, "size"); err != nil {
				return info, err
			}
			if info.Description, err = textOrEmpty(row, "description"); err != nil {
				return info, err
			}
			return info, nil
		},
	}
}

func schemaInfoDefinition() agrum.EntityDefinition[SchemaInfo] {
	structure := agrum.NewStructure(
		agrum.Field("name", "text"),
		agrum.Field("relations", "int"),
		agrum.Field("owner", "text"),
		agrum.Field("description", "text"),
	)
	projection := agrum.DefaultProjection(structure).Strict().
		SetDefinition("name", "n.nspname").
		SetDefinition("relations", "count(c)").
		SetDefinition("owner", "o.rolname").
		SetDefinition("description", "d.description")

	return agrum.EntityDefinition[SchemaInfo]{
		Structure:  structure,
		Projection: projection,
		Hydrate: func(row agrum.Row) (SchemaInfo, error) {
			var info SchemaInfo
			var err error
			if info.Name, err = agrum.GetColumn[string](row, "name"); err != nil {
				return info, err
			}
			if info.Relations, err = agrum.GetColumn[int64](row, "relations"); err != nil {
				return info, err
			}
			if info.Owner, err = agrum.GetColumn[string](row, "owner"); err != nil {
				return info, err
			}
			if info.Description, err = textOrEmpty(row, "description"); err != nil {
				return info, err
			}
			return info, nil
		},
	}
}

// textOrEmpty reads a nullable text column, mapping NULL to "".
func textOrEmpty(row agrum.Row, column string) (string, error) {
	raw, err := row.Get(column)
	if err != nil {
		return "", &agrum.HydrationError{Column: column, Err: err}
	}
	if raw == nil {
		return "", nil
	}
	text, ok := raw.(string)
	if !ok {
		return "", &agrum.HydrationError{Column: column, Err: fmt.Errorf("expected text, got %T", raw)}
	}
	return text, nil
}

// Inspector reads server metadata from the PostgreSQL catalog through
// agrum queries.
type Inspector struct {
	db Querier
}

// NewInspector creates an inspector over the given connection.
func NewInspector(db Querier) *Inspector {
	return &Inspector{db: db}
}

// Databases lists every database visible on the server.
func (i *Inspector) Databases(ctx context.Context) ([]DatabaseInfo, error) {
	return i.databases(ctx, agrum.MatchAll())
}

// Database returns the named database, reporting whether it exists.
func (i *Inspector) Database(ctx context.Context, name string) (DatabaseInfo, bool, error) {
	infos, err := i.databases(ctx, agrum.Where("db.datname = $?", name))
	if err != nil || len(infos) == 0 {
		return DatabaseInfo{}, false, err
	}
	return infos[0], true, nil
}

func (i *Inspector) databases(ctx context.Context, condition *agrum.WhereCondition) ([]DatabaseInfo, error) {
	definition := databaseInfoDefinition()
	text, parameters := condition.Expand(nil)
	query := agrum.NewQuery(databaseListTemplate).
		SetVariable("projection", definition.Projection.Expand(nil)).
		SetVariable("condition", text).
		SetParameters(parameters)

	return NewProvider(i.db, definition).Fetch(ctx, query)
}

// Schemas lists the user schemas of the connected database, excluding
// the pg_catalog namespaces and information_schema.
func (i *Inspector) Schemas(ctx context.Context) ([]SchemaInfo, error) {
	condition := agrum.Where("n.nspname !~ $?", "^pg_").
		AndWhere(agrum.Where("n.nspname != $?", "information_schema"))

	return i.AllSchemas(ctx, condition)
}

// AllSchemas lists the schemas matching the given condition.
func (i *Inspector) AllSchemas(ctx context.Context, condition *agrum.WhereCondition) ([]SchemaInfo, error) {
	definition := schemaInfoDefinition()
	text, parameters := condition.Expand(nil)
	query := agrum.NewQuery(schemaListTemplate).
		SetVariable("projection", definition.Projection.Expand(nil)).
		SetVariable("condition", text).
		SetParameters(parameters)

	return NewProvider(i.db, definition).Fetch(ctx, query)
}
