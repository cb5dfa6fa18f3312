package agrum_test

import (
	"fmt"

	"github.com/chanmix51/agrum"
	"github.com/chanmix51/agrum/postgres"
)

func ExampleWhere() {
	// Combine conditions; OR groups get parenthesized under AND.
	condition := agrum.
		Where("age > $?", 20).
		AndWhere(agrum.Where("status = $?", "active").OrWhere(agrum.Where("vip")))

	sql, parameters := condition.Expand(nil)
	fmt.Println(sql)
	fmt.Println(parameters)

	// Output:
	// age > $? and (status = $? or vip)
	// [20 active]
}

func ExampleQuery_Render() {
	structure := agrum.NewStructure(
		agrum.Field("contact_id", "uuid"),
		agrum.Field("name", "text"),
	)
	text, parameters := agrum.Where("name ~* $?", "^a").Expand(nil)

	sql, bound, err := agrum.NewQuery("select {:projection:} from {:source:} where {:condition:}").
		SetVariable("projection", agrum.DefaultProjection(structure).Expand(nil)).
		SetVariable("source", "pommr.contact").
		SetVariable("condition", text).
		SetParameters(parameters).
		Render(postgres.New())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sql)
	fmt.Println(bound)

	// Output:
	// select contact_id as contact_id, name as name from pommr.contact where name ~* $1
	// [^a]
}

func ExampleQueryBook_Select() {
	type contact struct {
		ContactID string
		Name      string
	}

	structure := agrum.NewStructure(
		agrum.Field("contact_id", "uuid"),
		agrum.Field("name", "text"),
	)
	definition := agrum.DefaultDefinition(structure, func(row agrum.Row) (contact, error) {
		id, err := agrum.GetColumn[string](row, "contact_id")
		if err != nil {
			return contact{}, err
		}
		name, err := agrum.GetColumn[string](row, "name")
		if err != nil {
			return contact{}, err
		}
		return contact{ContactID: id, Name: name}, nil
	})

	book := agrum.NewQueryBook("pommr.contact", definition)
	sql, _, err := book.Select(agrum.MatchAll()).Render(postgres.New())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sql)

	// Output:
	// select contact_id as contact_id, name as name from pommr.contact where true
}
