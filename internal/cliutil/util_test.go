package cliutil

import (
	"path/filepath"
	"testing"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/jobindex/storage"
	"github.com/eqhq/jobindex/jobindex/storage/sqlite"
)

func TestResolveSQLitePath(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"":                                  DefaultSQLiteFile,
		dir:                                 filepath.Join(dir, DefaultSQLiteFile),
		"data" + string(filepath.Separator): filepath.Join("data", DefaultSQLiteFile),
		filepath.Join(dir, "jobs.db"):       filepath.Join(dir, "jobs.db"),
	}
	for in, want := range cases {
		if got := ResolveSQLitePath(in); got != want {
			t.Errorf("ResolveSQLitePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewAdapter(t *testing.T) {
	a, err := NewAdapter(cliopt.GlobalOptions{Backend: "sqlite", SQLitePath: "x.db", SQLiteDriver: sqlite.DriverMattn})
	if err != nil {
		t.Fatal(err)
	}
	if a.Backend() != storage.BackendSQLite || a.(*sqlite.Adapter).DriverName != sqlite.DriverMattn {
		t.Fatalf("unexpected adapter %#v", a)
	}

	if _, err := NewAdapter(cliopt.GlobalOptions{Backend: "postgres"}); err == nil {
		t.Fatal("postgres without DSN should fail")
	}
	a, err = NewAdapter(cliopt.GlobalOptions{Backend: "pg", PostgresDSN: "postgres://localhost/db", PostgresSchema: "jobs"})
	if err != nil || a.Backend() != storage.BackendPostgres {
		t.Fatalf("postgres adapter: %v %v", a, err)
	}
	if _, err := NewAdapter(cliopt.GlobalOptions{Backend: "redis"}); err == nil {
		t.Fatal("unknown backend should fail")
	}
}

func TestParseOutputFormat(t *testing.T) {
	if ParseOutputFormat("json") != FormatJSON || ParseOutputFormat("yaml") != FormatPretty {
		t.Fatal("unexpected format parsing")
	}
}
