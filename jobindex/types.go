package jobindex

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/eqhq/jobindex/jobindex/catalog"
	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/ops"
)

type (
	Posting        = model.Posting
	Company        = model.Company
	SkillRef       = model.SkillRef
	Section        = model.Section
	FilterSet      = model.FilterSet
	Dimension      = model.Dimension
	ValueCount     = model.ValueCount
	FacetResult    = model.FacetResult
	Page           = model.Page
	Feed           = model.Feed
	Classification = model.Classification
	SkillCount     = ops.SkillCount
	BackfillStats  = ops.BackfillStats
)

// Options configures an Engine.
type Options struct {
	Now    func() time.Time
	Logger zerolog.Logger
	// Catalog defaults to catalog.Default().
	Catalog             *catalog.Catalog
	BackfillBatchSize   int
	BackfillConcurrency int
	// Checkpoints lets an interrupted backfill resume. Nil disables
	// checkpointing.
	Checkpoints ops.CheckpointStore
}

func DefaultOptions() Options {
	return Options{
		Now:                 time.Now,
		Logger:              zerolog.Nop(),
		BackfillBatchSize:   DefaultBackfillBatchSize,
		BackfillConcurrency: DefaultBackfillConcurrency,
	}
}

// RawPosting is a posting as delivered by a source, before classification
// and skill matching. Sections wins over ContentHTML when both are set.
type RawPosting struct {
	Company     Company   `json:"company"`
	Platform    string    `json:"platform"`
	ExternalID  string    `json:"external_id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	ContentHTML string    `json:"content_html"`
	Sections    []Section `json:"sections"`
	CreatedAt   time.Time `json:"created_at"`
}

// Similar holds postings related to one posting.
type Similar struct {
	ByDomain  []Posting `json:"by_domain"`
	ByCompany []Posting `json:"by_company"`
}
