package cliutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/internal/logging"
	"github.com/eqhq/jobindex/jobindex"
	"github.com/eqhq/jobindex/jobindex/storage"
	"github.com/eqhq/jobindex/jobindex/storage/postgres"
	"github.com/eqhq/jobindex/jobindex/storage/sqlite"
)

type OutputFormat string

const (
	FormatPretty OutputFormat = "pretty"
	FormatJSON   OutputFormat = "json"
)

func ParseOutputFormat(s string) OutputFormat {
	switch OutputFormat(s) {
	case FormatPretty, FormatJSON:
		return OutputFormat(s)
	default:
		return FormatPretty
	}
}

func PrintJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

// Logger builds the process logger from the global options.
func Logger(g cliopt.GlobalOptions) zerolog.Logger {
	return logging.New(g.LogLevel, g.LogFormat)
}

// DefaultSQLiteFile is used when the sqlite path names a directory.
const DefaultSQLiteFile = "jobindex.db"

// ResolveSQLitePath turns the --sqlite-path value into a database file.
// An existing directory or a path ending in a separator gets
// DefaultSQLiteFile appended; anything else is used as given.
func ResolveSQLitePath(p string) string {
	if p == "" {
		return DefaultSQLiteFile
	}
	if strings.HasSuffix(p, string(filepath.Separator)) {
		return filepath.Join(p, DefaultSQLiteFile)
	}
	if fi, err := os.Stat(p); err == nil && fi.IsDir() {
		return filepath.Join(p, DefaultSQLiteFile)
	}
	return p
}

// NewAdapter picks the storage adapter named by g.Backend.
func NewAdapter(g cliopt.GlobalOptions) (storage.Adapter, error) {
	switch strings.ToLower(g.Backend) {
	case "", "sqlite":
		return sqlite.NewWithDriver(ResolveSQLitePath(g.SQLitePath), g.SQLiteDriver), nil
	case "postgres", "pg":
		if g.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres backend needs --pg-dsn or DATABASE_URL")
		}
		return postgres.New(g.PostgresDSN, g.PostgresSchema), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", g.Backend)
	}
}

// OpenEngine opens the engine described by g. mutate may adjust options
// before opening.
func OpenEngine(ctx context.Context, g cliopt.GlobalOptions, mutate func(*jobindex.Options)) (*jobindex.Engine, error) {
	adapter, err := NewAdapter(g)
	if err != nil {
		return nil, err
	}
	opts := jobindex.DefaultOptions()
	opts.Logger = Logger(g)
	if mutate != nil {
		mutate(&opts)
	}
	return jobindex.Open(ctx, adapter, opts)
}
