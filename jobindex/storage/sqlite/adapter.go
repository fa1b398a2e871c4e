package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/eqhq/jobindex/jobindex/storage"
	"github.com/eqhq/jobindex/jobindex/storage/migrations"
	"github.com/eqhq/jobindex/jobindex/storage/sqlbuilder"
)

// Driver names understood by NewWithDriver. The caller registers the
// driver by importing modernc.org/sqlite or github.com/mattn/go-sqlite3.
const (
	DriverModernc = "sqlite"
	DriverMattn   = "sqlite3"
)

type Adapter struct {
	Path       string
	DriverName string
}

func New(path string) *Adapter {
	return &Adapter{Path: path, DriverName: DriverModernc}
}

func NewWithDriver(path, driver string) *Adapter {
	return &Adapter{Path: path, DriverName: driver}
}

func (a *Adapter) Backend() storage.Backend {
	return storage.BackendSQLite
}

func (a *Adapter) PlaceholderStyle() sqlbuilder.PlaceholderStyle {
	return sqlbuilder.PlaceholderQuestion
}

func (a *Adapter) StoreID() string {
	return a.Path
}

func (a *Adapter) SQL() storage.SQL         { return SQLTemplates }
func (a *Adapter) Dialect() storage.Dialect { return Dialect{} }
func (a *Adapter) Close() error             { return nil }

// dsnParams returns the busy-timeout and foreign-key settings in the
// syntax of the configured driver.
func (a *Adapter) dsnParams() string {
	if a.DriverName == DriverMattn {
		return "_busy_timeout=5000&_foreign_keys=on"
	}
	return "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

func (a *Adapter) Connect(ctx context.Context) (*sql.DB, error) {
	dsn := a.Path
	if !strings.Contains(dsn, "?") {
		dsn = dsn + "?" + a.dsnParams()
	} else {
		dsn = dsn + "&" + a.dsnParams()
	}
	db, err := sql.Open(a.DriverName, dsn)
	if err != nil {
		return nil, err
	}
	// One writer at a time; concurrent callers queue on the pool.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	_, _ = db.ExecContext(ctx, "PRAGMA journal_mode=WAL;")
	_, _ = db.ExecContext(ctx, "PRAGMA synchronous=NORMAL;")
	return db, nil
}

func (a *Adapter) Migrate(ctx context.Context, db *sql.DB) error {
	return migrations.Up(ctx, db, goose.DialectSQLite3, "sqlite")
}
