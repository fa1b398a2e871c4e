// Package planner turns a filter set into parameterized SQL. Filter values
// are always bound, never spliced into the statement text.
package planner

import (
	"strings"

	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/storage"
	"github.com/eqhq/jobindex/jobindex/storage/sqlbuilder"
)

// Column expressions over the aliases used by every statement here:
// jobs j LEFT JOIN companies c.
const (
	colTitle       = "j.title"
	colLocation    = "j.location"
	colCompanyName = "c.name"
	colCompanySlug = "c.slug"
	colSkills      = "j.skills"
)

// DimensionColumn returns the jobs column behind a facet dimension.
func DimensionColumn(d model.Dimension) (string, bool) {
	switch d {
	case model.DimensionDomain:
		return "j.domain", true
	case model.DimensionEmploymentType:
		return "j.employment_type", true
	case model.DimensionExperienceLevel:
		return "j.experience_level", true
	}
	return "", false
}

// Clauses appends one condition per non-empty filter to b and returns them.
// The clause for the exclude dimension is omitted.
func Clauses(b storage.Builder, d storage.Dialect, f model.FilterSet, exclude model.Dimension) []string {
	var out []string

	if q := strings.TrimSpace(f.Query); q != "" {
		pattern := containsPattern(q)
		ors := []string{
			d.ContainsCI(colTitle, b.Arg(pattern)),
			d.ContainsCI(colCompanyName, b.Arg(pattern)),
			d.ContainsCI(colLocation, b.Arg(pattern)),
		}
		out = append(out, "("+joinOr(ors)+")")
	}

	exact := []struct {
		dim   model.Dimension
		value string
	}{
		{model.DimensionDomain, f.Domain},
		{model.DimensionEmploymentType, f.EmploymentType},
		{model.DimensionExperienceLevel, f.ExperienceLevel},
	}
	for _, e := range exact {
		if e.value == "" || e.dim == exclude {
			continue
		}
		col, _ := DimensionColumn(e.dim)
		out = append(out, col+" = "+b.Arg(e.value))
	}

	if loc := strings.TrimSpace(f.Location); loc != "" {
		out = append(out, d.ContainsCI(colLocation, b.Arg(containsPattern(loc))))
	}
	if f.CompanySlug != "" {
		out = append(out, colCompanySlug+" = "+b.Arg(f.CompanySlug))
	}
	if f.SkillSlug != "" {
		out = append(out, d.HasSkill(colSkills, b.Arg(f.SkillSlug)))
	}
	return out
}

// Where renders Clauses as a WHERE clause, or "" when nothing filters.
func Where(b storage.Builder, d storage.Dialect, f model.FilterSet, exclude model.Dimension) string {
	return whereOf(Clauses(b, d, f, exclude))
}

// Predicate builds the filter condition on a fresh builder and returns the
// fragment (without WHERE) with its bound values, in placeholder order.
// An empty fragment means every posting matches.
func Predicate(style sqlbuilder.PlaceholderStyle, d storage.Dialect, f model.FilterSet, exclude model.Dimension) (string, []any) {
	b := sqlbuilder.New(style)
	return joinAnd(Clauses(b, d, f, exclude)), b.Args()
}

func whereOf(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + joinAnd(clauses)
}
