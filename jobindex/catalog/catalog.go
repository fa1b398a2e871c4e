// Package catalog holds the fixed vocabularies postings are classified
// against: job domains, employment types, experience levels and skills.
//
// A Catalog is built once and never mutated; accessors hand out copies.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/eqhq/jobindex/jobindex/model"
)

// ErrSlugCollision is returned by New when two entries share a slug.
var ErrSlugCollision = errors.New("slug collision")

type Domain struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Skill is one catalog entry. Patterns are matched against text with
// word boundaries, case-insensitively.
type Skill struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Patterns []string `json:"patterns"`
}

// Slug returns the skill's URL-safe identifier.
func (s Skill) Slug() string { return Slugify(s.Name) }

// Ref returns the stored form of the skill.
func (s Skill) Ref() model.SkillRef { return model.SkillRef{Name: s.Name, Slug: s.Slug()} }

// SkillType groups skills under a display name.
type SkillType struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug"`
	UIName     string   `json:"ui_name"`
	SkillNames []string `json:"skill_names"`
}

// Definition is the raw material a Catalog is built from.
type Definition struct {
	Domains          []Domain
	EmploymentTypes  []string
	ExperienceLevels []string
	Skills           []Skill
	// SkillTypeNames maps skill type ids to display names. Types without
	// an entry display their id.
	SkillTypeNames map[string]string
}

// DefaultDefinition returns a copy of the built-in vocabularies.
func DefaultDefinition() Definition {
	names := make(map[string]string, len(skillTypeNames))
	for k, v := range skillTypeNames {
		names[k] = v
	}
	return Definition{
		Domains:          slices.Clone(defaultDomains),
		EmploymentTypes:  slices.Clone(defaultEmploymentTypes),
		ExperienceLevels: slices.Clone(defaultExperienceLevels),
		Skills:           slices.Clone(defaultSkills),
		SkillTypeNames:   names,
	}
}

type Catalog struct {
	domains          []Domain
	employmentTypes  []string
	experienceLevels []string
	skills           []Skill
	skillTypes       []SkillType

	domainByName map[string]int
	domainBySlug map[string]int
	skillBySlug  map[string]int
	typeBySlug   map[string]int
}

// New validates def and builds a Catalog. Two skills or two domains that
// slugify to the same value are rejected with ErrSlugCollision.
func New(def Definition) (*Catalog, error) {
	c := &Catalog{
		domains:          slices.Clone(def.Domains),
		employmentTypes:  slices.Clone(def.EmploymentTypes),
		experienceLevels: slices.Clone(def.ExperienceLevels),
		skills:           make([]Skill, 0, len(def.Skills)),
		domainByName:     make(map[string]int, len(def.Domains)),
		domainBySlug:     make(map[string]int, len(def.Domains)),
		skillBySlug:      make(map[string]int, len(def.Skills)),
		typeBySlug:       make(map[string]int),
	}

	for i, d := range c.domains {
		if d.Name == "" || d.Slug == "" {
			return nil, fmt.Errorf("domain %d: empty name or slug", i)
		}
		if j, dup := c.domainBySlug[d.Slug]; dup {
			return nil, fmt.Errorf("%w: domain %q and %q both use %q", ErrSlugCollision, c.domains[j].Name, d.Name, d.Slug)
		}
		c.domainByName[d.Name] = i
		c.domainBySlug[d.Slug] = i
	}

	typeIdx := make(map[string]int)
	for _, s := range def.Skills {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("skill with empty name (type %q)", s.Type)
		}
		slug := s.Slug()
		if slug == "" {
			return nil, fmt.Errorf("skill %q has an empty slug", s.Name)
		}
		if j, dup := c.skillBySlug[slug]; dup {
			return nil, fmt.Errorf("%w: skill %q and %q both use %q", ErrSlugCollision, c.skills[j].Name, s.Name, slug)
		}
		s.Patterns = slices.Clone(s.Patterns)
		c.skillBySlug[slug] = len(c.skills)
		c.skills = append(c.skills, s)

		ti, ok := typeIdx[s.Type]
		if !ok {
			ui := def.SkillTypeNames[s.Type]
			if ui == "" {
				ui = s.Type
			}
			ti = len(c.skillTypes)
			typeIdx[s.Type] = ti
			c.skillTypes = append(c.skillTypes, SkillType{ID: s.Type, Slug: Slugify(ui), UIName: ui})
		}
		c.skillTypes[ti].SkillNames = append(c.skillTypes[ti].SkillNames, s.Name)
	}
	for i, t := range c.skillTypes {
		if j, dup := c.typeBySlug[t.Slug]; dup {
			return nil, fmt.Errorf("%w: skill type %q and %q both use %q", ErrSlugCollision, c.skillTypes[j].ID, t.ID, t.Slug)
		}
		c.typeBySlug[t.Slug] = i
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(DefaultDefinition())
	if err != nil {
		panic("catalog: invalid built-in definition: " + err.Error())
	}
	return c
})

// Default returns the shared built-in catalog.
func Default() *Catalog { return defaultCatalog() }

func (c *Catalog) Domains() []Domain          { return slices.Clone(c.domains) }
func (c *Catalog) EmploymentTypes() []string  { return slices.Clone(c.employmentTypes) }
func (c *Catalog) ExperienceLevels() []string { return slices.Clone(c.experienceLevels) }
func (c *Catalog) Skills() []Skill            { return slices.Clone(c.skills) }
func (c *Catalog) SkillTypes() []SkillType    { return slices.Clone(c.skillTypes) }

func (c *Catalog) HasDomain(name string) bool {
	_, ok := c.domainByName[name]
	return ok
}

func (c *Catalog) HasEmploymentType(v string) bool {
	return slices.Contains(c.employmentTypes, v)
}

func (c *Catalog) HasExperienceLevel(v string) bool {
	return slices.Contains(c.experienceLevels, v)
}

// DomainBySlug resolves a domain slug to its entry.
func (c *Catalog) DomainBySlug(slug string) (Domain, bool) {
	i, ok := c.domainBySlug[normalizeSlug(slug)]
	if !ok {
		return Domain{}, false
	}
	return c.domains[i], true
}

// SkillBySlug returns the stored form of the skill with the given slug.
func (c *Catalog) SkillBySlug(slug string) (model.SkillRef, bool) {
	i, ok := c.skillBySlug[normalizeSlug(slug)]
	if !ok {
		return model.SkillRef{}, false
	}
	return c.skills[i].Ref(), true
}

// SkillTypeBySlug returns the skill type whose display-name slug matches.
func (c *Catalog) SkillTypeBySlug(slug string) (SkillType, bool) {
	i, ok := c.typeBySlug[normalizeSlug(slug)]
	if !ok {
		return SkillType{}, false
	}
	t := c.skillTypes[i]
	t.SkillNames = slices.Clone(t.SkillNames)
	return t, true
}

// FilterError reports a filter value outside the catalog.
type FilterError struct {
	Field string
	Value string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Field, e.Value)
}

// ValidateFilters checks that every enumerated filter value is known.
// Free-text, location and company filters are not checked.
func (c *Catalog) ValidateFilters(f model.FilterSet) error {
	if f.Domain != "" && !c.HasDomain(f.Domain) {
		return &FilterError{Field: "domain", Value: f.Domain}
	}
	if f.EmploymentType != "" && !c.HasEmploymentType(f.EmploymentType) {
		return &FilterError{Field: "employment_type", Value: f.EmploymentType}
	}
	if f.ExperienceLevel != "" && !c.HasExperienceLevel(f.ExperienceLevel) {
		return &FilterError{Field: "experience_level", Value: f.ExperienceLevel}
	}
	if f.SkillSlug != "" {
		if _, ok := c.skillBySlug[f.SkillSlug]; !ok {
			return &FilterError{Field: "skill_slug", Value: f.SkillSlug}
		}
	}
	return nil
}

// ResolveFilters accepts a domain given by slug as well as by name,
// rewrites it to the name and then validates f.
func (c *Catalog) ResolveFilters(f model.FilterSet) (model.FilterSet, error) {
	if f.Domain != "" && !c.HasDomain(f.Domain) {
		if d, ok := c.DomainBySlug(f.Domain); ok {
			f.Domain = d.Name
		}
	}
	f.SkillSlug = normalizeSlug(f.SkillSlug)
	f.CompanySlug = normalizeSlug(f.CompanySlug)
	return f, c.ValidateFilters(f)
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
