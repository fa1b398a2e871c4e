package jobindex

import (
	"context"
	"strings"
	"time"

	"github.com/eqhq/jobindex/jobindex/catalog"
	"github.com/eqhq/jobindex/jobindex/description"
	"github.com/eqhq/jobindex/jobindex/ops"
)

// PostingSlug derives the stored slug of a posting.
func PostingSlug(companySlug, title, externalID string) string {
	return catalog.Slugify(strings.Join([]string{companySlug, title, externalID}, " "))
}

// preparePosting classifies r and matches its skills. The returned posting
// has no ids yet.
func (e *Engine) preparePosting(r RawPosting) (Company, Posting, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return Company{}, Posting{}, New(ErrDecode, "posting title is required")
	}

	company := r.Company
	company.Name = strings.TrimSpace(company.Name)
	if company.Slug == "" {
		company.Slug = catalog.Slugify(company.Name)
	}
	if company.Name == "" {
		company.Name = company.Slug
	}
	if company.Platform == "" {
		company.Platform = r.Platform
	}

	sections := r.Sections
	if sections == nil && strings.TrimSpace(r.ContentHTML) != "" {
		parsed, err := description.ParseHTML(r.ContentHTML)
		if err != nil {
			return Company{}, Posting{}, Wrap(ErrDecode, "parse posting html", err)
		}
		sections = parsed
	}

	c := e.Classify(title)
	matched := e.MatchSkills(title + "\n" + description.Text(sections))

	p := Posting{
		Slug:            PostingSlug(company.Slug, title, r.ExternalID),
		Platform:        r.Platform,
		ExternalID:      r.ExternalID,
		URL:             r.URL,
		Title:           title,
		CompanySlug:     company.Slug,
		CompanyName:     company.Name,
		Location:        strings.TrimSpace(r.Location),
		Domain:          c.Domain,
		EmploymentType:  c.EmploymentType,
		ExperienceLevel: c.ExperienceLevel,
		Skills:          matched,
		Description:     sections,
		CreatedAt:       r.CreatedAt,
	}
	return company, p, nil
}

// Ingest classifies a raw posting, matches its skills and stores it along
// with its company. Postings and companies are keyed by slug, so ingesting
// the same posting twice updates it in place.
func (e *Engine) Ingest(ctx context.Context, r RawPosting) (Posting, error) {
	b := NewBatch()
	if err := b.Add(r); err != nil {
		return Posting{}, err
	}
	out, err := e.IngestBatch(ctx, b)
	if err != nil {
		return Posting{}, err
	}
	return out[0], nil
}

func (e *Engine) putPosting(ctx context.Context, q ops.Querier, company Company, p Posting, nowMS int64) (Posting, error) {
	sqlt := e.adapter.SQL()
	if company.Slug != "" {
		id, err := ops.UpsertCompany(ctx, q, sqlt, company, nowMS)
		if err != nil {
			return Posting{}, Wrap(ErrSQL, "upsert company", err)
		}
		p.CompanyID = id
	}
	id, err := ops.UpsertPosting(ctx, q, sqlt, p, nowMS)
	if err != nil {
		return Posting{}, Wrap(ErrSQL, "upsert posting", err)
	}
	p.ID = id
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.UnixMilli(nowMS).UTC()
	}
	p.UpdatedAt = time.UnixMilli(nowMS).UTC()
	return p, nil
}

// PutPosting stores p as given, without skill matching. A nil Skills leaves
// the posting for the next backfill. Empty classification fields are filled
// from the title. The company is taken from CompanySlug and CompanyName when
// set.
func (e *Engine) PutPosting(ctx context.Context, p Posting) (Posting, error) {
	if p.Slug == "" {
		p.Slug = PostingSlug(p.CompanySlug, p.Title, p.ExternalID)
	}
	if p.Slug == "" {
		return Posting{}, New(ErrDecode, "posting slug or title is required")
	}
	if p.Domain == "" || p.ExperienceLevel == "" || p.EmploymentType == "" {
		c := e.Classify(p.Title)
		if p.Domain == "" {
			p.Domain = c.Domain
		}
		if p.ExperienceLevel == "" {
			p.ExperienceLevel = c.ExperienceLevel
		}
		if p.EmploymentType == "" {
			p.EmploymentType = c.EmploymentType
		}
	}
	company := Company{Slug: p.CompanySlug, Name: p.CompanyName, Platform: p.Platform}
	if company.Name == "" {
		company.Name = company.Slug
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return Posting{}, Wrap(ErrSQL, "begin transaction", err)
	}
	defer tx.Rollback()

	out, err := e.putPosting(ctx, tx, company, p, e.nowMS())
	if err != nil {
		return Posting{}, err
	}
	if err := tx.Commit(); err != nil {
		return Posting{}, Wrap(ErrSQL, "commit", err)
	}
	return out, nil
}
