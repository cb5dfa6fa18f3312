package agrum

import (
	"errors"
	"testing"
)

func expectExpand(t *testing.T, condition *WhereCondition, wantSQL string, wantParams ...any) {
	t.Helper()

	sql, params := condition.Expand(nil)
	if sql != wantSQL {
		t.Errorf("Expand() = %q, want %q", sql, wantSQL)
	}
	if len(params) != len(wantParams) {
		t.Fatalf("Expand() returned %d parameter(s), want %d", len(params), len(wantParams))
	}
	for i := range wantParams {
		if params[i] != wantParams[i] {
			t.Errorf("parameter %d = %v, want %v", i, params[i], wantParams[i])
		}
	}
}

func TestWhereCondition(t *testing.T) {
	t.Run("identity expands to tautology", func(t *testing.T) {
		expectExpand(t, MatchAll(), "true")
	})

	t.Run("expression expands as written", func(t *testing.T) {
		expectExpand(t, Where("something is not null"), "something is not null")
	})

	t.Run("and", func(t *testing.T) {
		expectExpand(t, Where("A").AndWhere(Where("B")), "A and B")
	})

	t.Run("or", func(t *testing.T) {
		expectExpand(t, Where("A").OrWhere(Where("B")), "A or B")
	})

	t.Run("and with identity is the identity law", func(t *testing.T) {
		expectExpand(t, Where("A").AndWhere(MatchAll()), "A")
		expectExpand(t, MatchAll().AndWhere(Where("A")), "A")
	})

	t.Run("or with identity is the identity law", func(t *testing.T) {
		expectExpand(t, Where("A").OrWhere(MatchAll()), "A")
		expectExpand(t, MatchAll().OrWhere(Where("A")), "A")
	})

	t.Run("identity combination binds no parameters", func(t *testing.T) {
		expectExpand(t, Where("balance > $?", 0).AndWhere(MatchAll()), "balance > $?", 0)
	})
}

func TestWhereConditionPrecedence(t *testing.T) {
	t.Run("chained and or needs no parentheses", func(t *testing.T) {
		condition := Where("A").AndWhere(Where("B")).OrWhere(Where("C"))
		expectExpand(t, condition, "A and B or C")
	})

	t.Run("or subtree under and is parenthesized", func(t *testing.T) {
		sub := Where("A").OrWhere(Where("B"))
		condition := Where("C").AndWhere(sub)
		expectExpand(t, condition, "C and (A or B)")
	})

	t.Run("or receiver under and is parenthesized", func(t *testing.T) {
		condition := Where("A").OrWhere(Where("B")).AndWhere(Where("C"))
		expectExpand(t, condition, "(A or B) and C")
	})

	t.Run("both sides parenthesized", func(t *testing.T) {
		condition := Where("A").OrWhere(Where("B")).
			AndWhere(Where("C").OrWhere(Where("D")))
		expectExpand(t, condition, "(A or B) and (C or D)")
	})
}

func TestWhereConditionParameters(t *testing.T) {
	t.Run("single parameter", func(t *testing.T) {
		expectExpand(t, Where("A > $?::int", 0), "A > $?::int", 0)
	})

	t.Run("parameters collect in textual order", func(t *testing.T) {
		condition := Where("A > $?", 0).AndWhere(Where("B = $?", 1))
		expectExpand(t, condition, "A > $? and B = $?", 0, 1)
	})

	t.Run("where in", func(t *testing.T) {
		condition := WhereIn("A", 20, 23, 42)
		expectExpand(t, condition, "A in ($?, $?, $?)", 20, 23, 42)
	})

	t.Run("where in requires values", func(t *testing.T) {
		// Documented contract: an empty list is the caller's mistake and
		// renders an in clause no engine accepts.
		expectExpand(t, WhereIn("A"), "A in ()")
	})

	t.Run("combination keeps marker parameter pairing", func(t *testing.T) {
		condition := Where("A > $?::int", 0).
			OrWhere(Where("B")).
			AndWhere(WhereIn("C", 100, 101, 102))
		expectExpand(t, condition, "(A > $?::int or B) and C in ($?, $?, $?)", 0, 100, 101, 102)
	})

	t.Run("marker count mismatch fails eagerly", func(t *testing.T) {
		_, err := TryWhere("A > $?::int")
		var countErr *ParameterCountError
		if !errors.As(err, &countErr) {
			t.Fatalf("TryWhere() error = %v, want ParameterCountError", err)
		}
		if countErr.Markers != 1 || countErr.Parameters != 0 {
			t.Errorf("error counts = (%d, %d), want (1, 0)", countErr.Markers, countErr.Parameters)
		}
	})

	t.Run("Where panics on mismatch", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Where() did not panic")
			}
		}()
		Where("A = $?")
	})
}

func TestWhereConditionSourceAliases(t *testing.T) {
	aliases := NewSourceAliases(Alias("contact", "ct"))
	condition := Where("{:contact:}.contact_id = $?", 1)

	sql, params := condition.Expand(aliases)
	if sql != "ct.contact_id = $?" {
		t.Errorf("Expand() = %q, want %q", sql, "ct.contact_id = $?")
	}
	if len(params) != 1 {
		t.Errorf("Expand() returned %d parameter(s), want 1", len(params))
	}
}
