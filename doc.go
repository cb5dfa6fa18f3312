// Package agrum is a SQL query-construction layer: it assembles
// parameterized, composable SQL fragments and entity shape definitions
// into ready-to-execute SQL text plus an ordered parameter list.
//
// # Conditions
//
// A WhereCondition is a boolean expression tree carrying its own bound
// parameters. Expression text uses the generic $? marker for each value:
//
//	condition := agrum.Where("age > $?", 40).
//		AndWhere(agrum.WhereIn("status", "active", "pending"))
//
// Conditions compose with AndWhere and OrWhere; parenthesization follows
// SQL operator precedence, so an OR subtree joined under AND is wrapped:
//
//	agrum.Where("a").AndWhere(agrum.Where("b").OrWhere(agrum.Where("c")))
//	// expands to: a and (b or c)
//
// # Queries
//
// A Query is a SQL template with {:name:} variable slots and $? parameter
// markers. Render resolves the slots, then numbers every marker
// left-to-right through a Dialect, guaranteeing that placeholder k binds
// the k-th parameter:
//
//	text, parameters := condition.Expand(nil)
//	query := agrum.NewQuery("select {:projection:} from {:source:} where {:condition:}").
//		SetVariable("projection", projection.Expand(nil)).
//		SetVariable("source", "pommr.contact").
//		SetVariable("condition", text).
//		SetParameters(parameters)
//	sql, args, err := query.Render(postgres.New())
//
// Render is pure: the same Query can be inspected in a test and executed
// for real through the same code path.
//
// # Entity shapes
//
// A Structure is the ordered column shape of an entity; a Projection is
// the named list of output expressions a query selects, derived from a
// Structure by default and overridable per alias. An EntityDefinition
// ties both to a hydration function mapping result rows to typed values;
// QueryBook builds the usual select/insert/update/delete statements from
// one.
//
// Placeholder syntax is dialect-specific; the postgres, mysql, sqlite and
// mssql packages provide the translations. Execution lives in the
// providers subpackages, which adapt pgx and database/sql result rows to
// the Row accessor used by hydration.
package agrum
