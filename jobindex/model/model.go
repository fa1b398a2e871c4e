// Package model holds the value types shared by the engine's packages.
package model

import "time"

// SkillRef is the stored form of a matched skill.
type SkillRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Section is one heading with its content lines.
type Section struct {
	Heading string   `json:"heading"`
	Content []string `json:"content"`
}

type Company struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Website     string    `json:"website,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Description string    `json:"description,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	Namespace   string    `json:"namespace,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Posting is a job record as stored and returned by queries.
//
// Skills is nil when matching has never run for the posting and an empty
// slice when matching ran and found nothing.
type Posting struct {
	ID              int64      `json:"id"`
	Slug            string     `json:"slug"`
	Platform        string     `json:"platform,omitempty"`
	ExternalID      string     `json:"external_id,omitempty"`
	URL             string     `json:"url,omitempty"`
	Title           string     `json:"title"`
	CompanyID       int64      `json:"company_id,omitempty"`
	CompanySlug     string     `json:"company_slug,omitempty"`
	CompanyName     string     `json:"company_name,omitempty"`
	Location        string     `json:"location"`
	Domain          string     `json:"domain"`
	EmploymentType  string     `json:"employment_type"`
	ExperienceLevel string     `json:"experience_level"`
	Skills          []SkillRef `json:"skills"`
	Description     []Section  `json:"description,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Classification is the result of classifying a title on all three axes.
type Classification struct {
	Domain          string `json:"domain"`
	ExperienceLevel string `json:"experience_level"`
	EmploymentType  string `json:"employment_type"`
}

// FilterSet is the user-supplied filter record. Empty fields do not filter.
type FilterSet struct {
	Query           string `json:"q,omitempty"`
	Domain          string `json:"domain,omitempty"`
	EmploymentType  string `json:"employment_type,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	Location        string `json:"location,omitempty"`
	CompanySlug     string `json:"company_slug,omitempty"`
	SkillSlug       string `json:"skill_slug,omitempty"`
}

// Dimension is one of the faceted posting attributes.
type Dimension string

const (
	DimensionNone            Dimension = ""
	DimensionDomain          Dimension = "domain"
	DimensionEmploymentType  Dimension = "employment_type"
	DimensionExperienceLevel Dimension = "experience_level"
)

// Dimensions lists the faceted dimensions in output order.
var Dimensions = []Dimension{DimensionDomain, DimensionEmploymentType, DimensionExperienceLevel}

// Valid reports whether d names a faceted dimension.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionDomain, DimensionEmploymentType, DimensionExperienceLevel:
		return true
	}
	return false
}

// ValueCount is a distinct value with the number of postings carrying it.
type ValueCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// FacetResult holds per-dimension value counts.
type FacetResult struct {
	Domain          []ValueCount `json:"domain"`
	EmploymentType  []ValueCount `json:"employment_type"`
	ExperienceLevel []ValueCount `json:"experience_level"`
}

// Set stores counts for the given dimension.
func (r *FacetResult) Set(d Dimension, counts []ValueCount) {
	switch d {
	case DimensionDomain:
		r.Domain = counts
	case DimensionEmploymentType:
		r.EmploymentType = counts
	case DimensionExperienceLevel:
		r.ExperienceLevel = counts
	}
}

// Get returns the counts for the given dimension.
func (r FacetResult) Get(d Dimension) []ValueCount {
	switch d {
	case DimensionDomain:
		return r.Domain
	case DimensionEmploymentType:
		return r.EmploymentType
	case DimensionExperienceLevel:
		return r.ExperienceLevel
	}
	return nil
}

// PageMeta describes an offset page.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	HasNext    bool  `json:"has_next"`
	TotalPages int   `json:"total_pages"`
}

type Page struct {
	Postings []Posting `json:"jobs"`
	Meta     PageMeta  `json:"meta"`
}

// Feed is one keyset page of the home feed. NextCursor is nil when the
// page is empty.
type Feed struct {
	Postings   []Posting `json:"jobs"`
	NextCursor *int64    `json:"next_cursor"`
	HasMore    bool      `json:"has_more"`
}
