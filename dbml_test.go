package agrum

import (
	"testing"

	"github.com/zoobzio/dbml"
)

func TestStructureFromDBML(t *testing.T) {
	t.Run("maps columns in declaration order", func(t *testing.T) {
		table := dbml.NewTable("contact")
		table.AddColumn(dbml.NewColumn("contact_id", "uuid"))
		table.AddColumn(dbml.NewColumn("name", "text"))
		table.AddColumn(dbml.NewColumn("born_at", "timestamptz"))

		structure, err := StructureFromDBML(table)
		if err != nil {
			t.Fatalf("StructureFromDBML() error = %v", err)
		}

		names := structure.Names()
		want := []string{"contact_id", "name", "born_at"}
		if len(names) != len(want) {
			t.Fatalf("names = %v, want %v", names, want)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
			}
		}

		field, ok := structure.Field("born_at")
		if !ok {
			t.Fatal("Field(born_at) not found")
		}
		if field.Type.SQL() != "timestamptz" {
			t.Errorf("type = %q, want %q", field.Type.SQL(), "timestamptz")
		}
	})

	t.Run("rejects a nil table", func(t *testing.T) {
		if _, err := StructureFromDBML(nil); err == nil {
			t.Fatal("StructureFromDBML(nil) expected an error")
		}
	})
}
