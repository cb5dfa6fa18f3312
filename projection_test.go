package agrum

import (
	"errors"
	"testing"
)

func testProjection() *Projection {
	return NewProjection(
		ProjectionField{Alias: "test_id", Definition: "{:alias:}.test_id"},
		ProjectionField{Alias: "something", Definition: "something"},
		ProjectionField{Alias: "is_what", Definition: "is_what"},
	)
}

func TestProjectionExpand(t *testing.T) {
	aliases := NewSourceAliases(Alias("alias", "test_alias"))

	want := "test_alias.test_id as test_id, something as something, is_what as is_what"
	if got := testProjection().Expand(aliases); got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestProjectionSetDefinition(t *testing.T) {
	t.Run("appends unknown aliases in open mode", func(t *testing.T) {
		projection := testProjection().
			SetDefinition("how_old", "age({:alias:}.born_at)").
			SetDefinition("is_ok", "{:alias:}.is_ok")
		aliases := NewSourceAliases(Alias("alias", "test_alias"))

		want := "test_alias.test_id as test_id, something as something, is_what as is_what, " +
			"age(test_alias.born_at) as how_old, test_alias.is_ok as is_ok"
		if got := projection.Expand(aliases); got != want {
			t.Errorf("Expand() = %q, want %q", got, want)
		}
	})

	t.Run("replaces a known alias in place", func(t *testing.T) {
		projection := testProjection().
			SetDefinition("something", "initcap({:alias:}.something)")
		aliases := NewSourceAliases(Alias("alias", "test_alias"))

		want := "test_alias.test_id as test_id, initcap(test_alias.something) as something, is_what as is_what"
		if got := projection.Expand(aliases); got != want {
			t.Errorf("Expand() = %q, want %q", got, want)
		}
	})

	t.Run("strict mode rejects unknown aliases", func(t *testing.T) {
		err := testProjection().Strict().TrySetDefinition("unknown", "whatever")
		var aliasErr *UnknownAliasError
		if !errors.As(err, &aliasErr) {
			t.Fatalf("TrySetDefinition() error = %v, want UnknownAliasError", err)
		}
		if aliasErr.Alias != "unknown" {
			t.Errorf("alias = %q, want %q", aliasErr.Alias, "unknown")
		}
	})

	t.Run("strict mode still replaces known aliases", func(t *testing.T) {
		projection := testProjection().Strict()
		if err := projection.TrySetDefinition("something", "upper(something)"); err != nil {
			t.Fatalf("TrySetDefinition() error = %v", err)
		}
		want := "{:alias:}.test_id as test_id, upper(something) as something, is_what as is_what"
		if got := projection.Expand(nil); got != want {
			t.Errorf("Expand() = %q, want %q", got, want)
		}
	})
}

func TestDefaultProjection(t *testing.T) {
	structure := NewStructure(
		Field("contact_id", "uuid"),
		Field("name", "text"),
	)

	want := "contact_id as contact_id, name as name"
	if got := DefaultProjection(structure).Expand(nil); got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestSourceAliasesResolve(t *testing.T) {
	aliases := NewSourceAliases(Alias("company", "co"), Alias("contact", "ct"))

	got := aliases.Resolve("{:company:}.company_id = {:contact:}.company_id")
	if got != "co.company_id = ct.company_id" {
		t.Errorf("Resolve() = %q", got)
	}

	var none *SourceAliases
	if got := none.Resolve("{:left:} untouched"); got != "{:left:} untouched" {
		t.Errorf("nil Resolve() = %q", got)
	}
}
