package postgres

import (
	"context"
	"strings"
	"testing"
)

func TestNewDefaultsSchema(t *testing.T) {
	a := New("postgres://localhost/db", "")
	if a.Schema != DefaultSchema {
		t.Fatalf("schema = %q", a.Schema)
	}
	if a.StoreID() != "postgres:jobindex" {
		t.Fatalf("store id = %q", a.StoreID())
	}
}

func TestEnsureSchemaRejectsBadName(t *testing.T) {
	a := &Adapter{Schema: `bad"name`}
	err := a.ensureSchema(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "invalid postgres schema name") {
		t.Fatalf("expected schema name error, got %v", err)
	}
}

func TestDialect(t *testing.T) {
	d := Dialect{}
	if got := d.ContainsCI("j.title", "$1"); got != `j.title ILIKE $1 ESCAPE '\'` {
		t.Fatalf("ContainsCI = %s", got)
	}
	if got := d.HasSkill("j.skills", "$2"); !strings.Contains(got, "@>") || !strings.Contains(got, "$2::text") {
		t.Fatalf("HasSkill = %s", got)
	}
	if got := d.JSONValue("$3"); got != "$3::jsonb" {
		t.Fatalf("JSONValue = %s", got)
	}
}
