package planner

import (
	"fmt"

	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/storage"
	"github.com/eqhq/jobindex/jobindex/storage/sqlbuilder"
)

// Statement is a ready-to-run query with its arguments.
type Statement struct {
	SQL  string
	Args []any
}

const postingFrom = " FROM jobs j LEFT JOIN companies c ON c.id = j.company_id"

const recentOrder = " ORDER BY j.created_at DESC, j.id DESC"

// PostingColumns is the select list scanned by ops.scanPosting.
func PostingColumns(d storage.Dialect) string {
	return "j.id, j.slug, j.platform, COALESCE(j.external_id, ''), COALESCE(j.url, ''), j.title, " +
		"COALESCE(j.company_id, 0), COALESCE(c.slug, ''), COALESCE(c.name, ''), " +
		"j.location, j.domain, j.employment_type, j.experience_level, " +
		d.JSONText("j.skills") + ", " + d.JSONText("j.description") + ", j.created_at, j.updated_at"
}

// List selects one offset page of matching postings, newest first.
func List(style sqlbuilder.PlaceholderStyle, d storage.Dialect, f model.FilterSet, limit, offset int) Statement {
	b := sqlbuilder.New(style)
	where := Where(b, d, f, model.DimensionNone)
	sql := "SELECT " + PostingColumns(d) + postingFrom + where + recentOrder +
		" LIMIT " + b.Arg(limit) + " OFFSET " + b.Arg(offset)
	return Statement{SQL: sql, Args: b.Args()}
}

// Count counts matching postings under the same predicate as List.
func Count(style sqlbuilder.PlaceholderStyle, d storage.Dialect, f model.FilterSet) Statement {
	pred, args := Predicate(style, d, f, model.DimensionNone)
	sql := "SELECT COUNT(*)" + postingFrom
	if pred != "" {
		sql += " WHERE " + pred
	}
	return Statement{SQL: sql, Args: args}
}

// Facet groups matching postings by dim with dim's own filter left out,
// so every alternative value of the dimension is counted. Empty values are
// not reported.
func Facet(style sqlbuilder.PlaceholderStyle, d storage.Dialect, f model.FilterSet, dim model.Dimension) (Statement, error) {
	col, ok := DimensionColumn(dim)
	if !ok {
		return Statement{}, fmt.Errorf("unknown facet dimension %q", dim)
	}
	pred, args := Predicate(style, d, f, dim)
	clauses := []string{col + " IS NOT NULL", col + " <> ''"}
	if pred != "" {
		clauses = append([]string{pred}, clauses...)
	}
	sql := "SELECT " + col + ", COUNT(*) AS cnt" + postingFrom + whereOf(clauses) +
		" GROUP BY " + col + " ORDER BY cnt DESC, " + col + " ASC"
	return Statement{SQL: sql, Args: args}, nil
}

// Feed selects up to fetch postings with id below cursor (all when cursor is
// nil) in descending id order.
func Feed(style sqlbuilder.PlaceholderStyle, d storage.Dialect, cursor *int64, fetch int) Statement {
	b := sqlbuilder.New(style)
	var where string
	if cursor != nil {
		where = " WHERE j.id < " + b.Arg(*cursor)
	}
	sql := "SELECT " + PostingColumns(d) + postingFrom + where + " ORDER BY j.id DESC LIMIT " + b.Arg(fetch)
	return Statement{SQL: sql, Args: b.Args()}
}

// PostingBySlug selects a single posting.
func PostingBySlug(style sqlbuilder.PlaceholderStyle, d storage.Dialect, slug string) Statement {
	b := sqlbuilder.New(style)
	sql := "SELECT " + PostingColumns(d) + postingFrom + " WHERE j.slug = " + b.Arg(slug)
	return Statement{SQL: sql, Args: b.Args()}
}

// SimilarByDomain selects the newest postings in domain other than excludeID.
func SimilarByDomain(style sqlbuilder.PlaceholderStyle, d storage.Dialect, domain string, excludeID int64, limit int) Statement {
	b := sqlbuilder.New(style)
	where := " WHERE j.domain = " + b.Arg(domain) + " AND j.id <> " + b.Arg(excludeID)
	sql := "SELECT " + PostingColumns(d) + postingFrom + where + recentOrder + " LIMIT " + b.Arg(limit)
	return Statement{SQL: sql, Args: b.Args()}
}

// SimilarByCompany selects the newest postings of a company other than
// excludeID.
func SimilarByCompany(style sqlbuilder.PlaceholderStyle, d storage.Dialect, companyID, excludeID int64, limit int) Statement {
	b := sqlbuilder.New(style)
	where := " WHERE j.company_id = " + b.Arg(companyID) + " AND j.id <> " + b.Arg(excludeID)
	sql := "SELECT " + PostingColumns(d) + postingFrom + where + recentOrder + " LIMIT " + b.Arg(limit)
	return Statement{SQL: sql, Args: b.Args()}
}

// SkillCounts counts matching postings per stored skill slug, most common
// first. top <= 0 means no limit.
func SkillCounts(style sqlbuilder.PlaceholderStyle, d storage.Dialect, f model.FilterSet, top int) Statement {
	b := sqlbuilder.New(style)
	join, slug, name := d.SkillElements(colSkills)
	where := Where(b, d, f, model.DimensionNone)
	sql := "SELECT " + slug + " AS slug, MAX(" + name + ") AS name, COUNT(DISTINCT j.id) AS cnt" +
		postingFrom + " " + join + where +
		" GROUP BY " + slug + " ORDER BY cnt DESC, slug ASC"
	if top > 0 {
		sql += " LIMIT " + b.Arg(top)
	}
	return Statement{SQL: sql, Args: b.Args()}
}
