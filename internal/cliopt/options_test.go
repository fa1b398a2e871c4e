package cliopt

import (
	"flag"
	"testing"
)

func TestDefaultsFromEnv(t *testing.T) {
	t.Setenv("JOBINDEX_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u@localhost/jobs")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOG_FORMAT", "")

	g := DefaultGlobalOptions()
	if g.Backend != "postgres" || g.PostgresDSN != "postgres://u@localhost/jobs" || g.RedisDB != 3 {
		t.Fatalf("unexpected options: %+v", g)
	}
	if g.LogFormat != "json" || g.PostgresSchema != "jobindex" {
		t.Fatalf("defaults not applied: %+v", g)
	}
}

func TestBadIntFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "two")
	if g := DefaultGlobalOptions(); g.RedisDB != 0 {
		t.Fatalf("RedisDB = %d", g.RedisDB)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("JOBINDEX_SQLITE_PATH", "/tmp/env.db")
	g := DefaultGlobalOptions()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	BindGlobalFlags(fs, &g)
	if err := fs.Parse([]string{"--sqlite-path", "/tmp/flag.db", "--sqlite-driver", "sqlite3"}); err != nil {
		t.Fatal(err)
	}
	if g.SQLitePath != "/tmp/flag.db" || g.SQLiteDriver != "sqlite3" {
		t.Fatalf("flags not applied: %+v", g)
	}
}
