package cliopt

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// GlobalOptions are parsed once at the CLI root and passed to subcommands.
//
// NOTE: This is a separate package to avoid import cycles between the root
// command router and per-command code.
type GlobalOptions struct {
	Backend        string
	SQLitePath     string
	SQLiteDriver   string
	PostgresDSN    string
	PostgresSchema string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	LogLevel  string
	LogFormat string
	Format    string
}

// DefaultGlobalOptions reads defaults from the environment, loading a .env
// file first when one exists. Flags bound with BindGlobalFlags override
// them.
func DefaultGlobalOptions() GlobalOptions {
	_ = godotenv.Load()
	return GlobalOptions{
		Backend:        getEnv("JOBINDEX_BACKEND", "sqlite"),
		SQLitePath:     getEnv("JOBINDEX_SQLITE_PATH", "jobindex.db"),
		SQLiteDriver:   getEnv("JOBINDEX_SQLITE_DRIVER", "sqlite"),
		PostgresDSN:    os.Getenv("DATABASE_URL"),
		PostgresSchema: getEnv("JOBINDEX_PG_SCHEMA", "jobindex"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		Format:         "pretty",
	}
}

func BindGlobalFlags(fs *flag.FlagSet, g *GlobalOptions) {
	fs.StringVar(&g.Backend, "backend", g.Backend, "backend: sqlite|postgres")

	fs.StringVar(&g.SQLitePath, "sqlite-path", g.SQLitePath, "sqlite database file")
	fs.StringVar(&g.SQLiteDriver, "sqlite-driver", g.SQLiteDriver, "sqlite driver: sqlite (pure Go) | sqlite3 (cgo)")

	fs.StringVar(&g.PostgresDSN, "pg-dsn", g.PostgresDSN, "postgres DSN")
	fs.StringVar(&g.PostgresSchema, "pg-schema", g.PostgresSchema, "postgres schema")

	fs.StringVar(&g.RedisAddr, "redis-addr", g.RedisAddr, "redis address host:port for backfill checkpoints")
	fs.StringVar(&g.RedisPassword, "redis-password", g.RedisPassword, "redis password")
	fs.IntVar(&g.RedisDB, "redis-db", g.RedisDB, "redis db number")

	fs.StringVar(&g.LogLevel, "log-level", g.LogLevel, "log level: debug|info|warn|error")
	fs.StringVar(&g.LogFormat, "log-format", g.LogFormat, "log format: json|console")
	fs.StringVar(&g.Format, "format", g.Format, "output format: pretty|json")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
