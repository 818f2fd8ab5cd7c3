package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("team", "Carlton"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE team = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Carlton" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InWithNoValues(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM players WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("id", "name").
		Values("p1", "Tom De Koning").
		Values("p2", "Harry Sheezel").
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO players (id, name) VALUES ($1, $2), ($3, $4) " +
		"ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != "Harry Sheezel" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("players").
		Columns("id", "name").
		Values("p1").
		ToSQL()
	if err == nil {
		t.Fatal("expected arity error")
	}
}
