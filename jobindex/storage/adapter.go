package storage

import (
	"context"
	"database/sql"

	"github.com/eqhq/jobindex/jobindex/storage/sqlbuilder"
)

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// Adapter abstracts database-specific operations
type Adapter interface {
	Backend() Backend
	PlaceholderStyle() sqlbuilder.PlaceholderStyle
	StoreID() string

	Connect(ctx context.Context) (*sql.DB, error)
	Close() error

	// Migrate brings the schema up to date.
	Migrate(ctx context.Context, db *sql.DB) error

	SQL() SQL
	Dialect() Dialect
}

// Dialect renders the SQL fragments that differ between backends.
type Dialect interface {
	// ContainsCI is a case-insensitive LIKE of expr against the pattern
	// bound at ph, with backslash as the escape character.
	ContainsCI(expr, ph string) string
	// HasSkill tests whether the JSON skill array in expr holds an element
	// whose slug equals the value bound at ph.
	HasSkill(expr, ph string) string
	// JSONText selects a JSON column as text.
	JSONText(expr string) string
	// JSONValue binds a text parameter as a JSON value.
	JSONValue(ph string) string
	// SkillElements returns a join clause expanding the skill array in expr
	// into one row per element, plus the slug and name expressions of an
	// element.
	SkillElements(expr string) (join, slug, name string)
}

// SQL holds the fixed statements of the write paths. Placeholders follow
// the adapter's style.
type SQL struct {
	// UpsertCompany: slug, name, website, logo_url, description, platform,
	// namespace, created_at, updated_at. Returns id.
	UpsertCompany string
	// UpsertPosting: slug, platform, external_id, company_id, title, url,
	// location, domain, employment_type, experience_level, skills,
	// description, created_at, updated_at. Returns id.
	UpsertPosting string
	// UpdateSkills: skills, updated_at, id.
	UpdateSkills string
	// SelectUnsetSkills: after_id, limit. Yields id, description.
	SelectUnsetSkills string
	// UpsertSkill: name, slug, type_id, type_name, type_slug.
	UpsertSkill string
}

// Builder allocates placeholders while collecting their values
type Builder interface {
	Arg(v any) string
	Args() []any
	Len() int
}
