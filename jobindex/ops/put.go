package ops

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eqhq/jobindex/jobindex/catalog"
	"github.com/eqhq/jobindex/jobindex/description"
	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/storage"
)

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UpsertCompany inserts or updates a company keyed by slug and returns its id.
func UpsertCompany(ctx context.Context, q Querier, sqlt storage.SQL, c model.Company, nowMS int64) (int64, error) {
	if c.Slug == "" {
		return 0, fmt.Errorf("company slug is required")
	}
	createdAt := nowMS
	if !c.CreatedAt.IsZero() {
		createdAt = c.CreatedAt.UnixMilli()
	}
	var id int64
	err := q.QueryRowContext(ctx, sqlt.UpsertCompany,
		c.Slug, c.Name, nullString(c.Website), nullString(c.LogoURL), nullString(c.Description),
		nullString(c.Platform), nullString(c.Namespace), createdAt, nowMS,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert company %s: %w", c.Slug, err)
	}
	return id, nil
}

// UpsertPosting inserts or updates a posting keyed by slug and returns its
// id. created_at is kept on update. A nil Skills slice is stored as unset.
func UpsertPosting(ctx context.Context, q Querier, sqlt storage.SQL, p model.Posting, nowMS int64) (int64, error) {
	if p.Slug == "" {
		return 0, fmt.Errorf("posting slug is required")
	}
	skills, err := encodeSkills(p.Skills)
	if err != nil {
		return 0, fmt.Errorf("encode skills: %w", err)
	}
	desc, err := description.Encode(p.Description)
	if err != nil {
		return 0, fmt.Errorf("encode description: %w", err)
	}
	var descArg any
	if desc != nil {
		descArg = string(desc)
	}
	var companyID any
	if p.CompanyID != 0 {
		companyID = p.CompanyID
	}
	createdAt := nowMS
	if !p.CreatedAt.IsZero() {
		createdAt = p.CreatedAt.UnixMilli()
	}

	var id int64
	err = q.QueryRowContext(ctx, sqlt.UpsertPosting,
		p.Slug, p.Platform, nullString(p.ExternalID), companyID, p.Title, nullString(p.URL),
		p.Location, p.Domain, p.EmploymentType, p.ExperienceLevel, skills, descArg,
		createdAt, nowMS,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert posting %s: %w", p.Slug, err)
	}
	return id, nil
}

// UpdateSkills overwrites the skill set of one posting.
func UpdateSkills(ctx context.Context, q Querier, sqlt storage.SQL, id int64, skills []model.SkillRef, nowMS int64) error {
	if skills == nil {
		skills = []model.SkillRef{}
	}
	v, err := encodeSkills(skills)
	if err != nil {
		return err
	}
	res, err := q.ExecContext(ctx, sqlt.UpdateSkills, v, nowMS, id)
	if err != nil {
		return fmt.Errorf("update skills for %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update skills for %d: no such posting", id)
	}
	return nil
}

// SyncSkills upserts every catalog skill into the skills table in one
// transaction and returns how many were written.
func SyncSkills(ctx context.Context, db *sql.DB, sqlt storage.SQL, cat *catalog.Catalog) (int, error) {
	types := make(map[string]catalog.SkillType)
	for _, t := range cat.SkillTypes() {
		types[t.ID] = t
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	n := 0
	for _, s := range cat.Skills() {
		t := types[s.Type]
		if _, err := tx.ExecContext(ctx, sqlt.UpsertSkill, s.Name, s.Slug(), s.Type, t.UIName, t.Slug); err != nil {
			return 0, fmt.Errorf("upsert skill %s: %w", s.Name, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
