package builder

import (
	"testing"
)

func TestSQLBuilder(t *testing.T) {
	t.Run("Select", func(t *testing.T) {
		query := NewSQLBuilder().Select("time_id", "time_nome").From("times").Build()
		expected := "SELECT time_id, time_nome FROM times"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
	})

	t.Run("Select star without columns", func(t *testing.T) {
		query := NewSQLBuilder().From("jogos").Build()
		if query != "SELECT * FROM jogos" {
			t.Errorf("unexpected query %s", query)
		}
	})

	t.Run("OrderBy accumulates", func(t *testing.T) {
		query := NewSQLBuilder().
			Select("id", "lider_id").
			From("colaboradores").
			OrderBy("lider_id ASC").
			OrderBy("id DESC").
			Build()
		expected := "SELECT id, lider_id FROM colaboradores ORDER BY lider_id ASC, id DESC"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
	})

	t.Run("Select replaces columns", func(t *testing.T) {
		query := NewSQLBuilder().Select("a").Select("vendedor", "valor").From("comissoes").Build()
		if query != "SELECT vendedor, valor FROM comissoes" {
			t.Errorf("unexpected query %s", query)
		}
	})
}

func TestQualifiedTable(t *testing.T) {
	if got := QualifiedTable("cantu", "times"); got != `"cantu"."times"` {
		t.Errorf("unexpected %s", got)
	}
	if got := QualifiedTable("", "jogos"); got != `"jogos"` {
		t.Errorf("unexpected %s", got)
	}
	if got := QualifiedTable("odd\"schema", "t"); got != `"odd""schema"."t"` {
		t.Errorf("unexpected %s", got)
	}
}
