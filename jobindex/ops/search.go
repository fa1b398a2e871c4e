package ops

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/planner"
	"github.com/eqhq/jobindex/jobindex/storage"
)

const (
	DefaultLimit = 20
	MaxLimit     = 50
)

// ClampLimit maps limit into [1, MaxLimit]; non-positive means DefaultLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// MaxPage keeps (page-1)*MaxLimit from overflowing the offset.
const MaxPage = math.MaxInt32 / MaxLimit

// ClampPage maps page into [1, MaxPage].
func ClampPage(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	}
	return page
}

// Search returns one offset page of postings matching f, newest first with
// id breaking ties.
func Search(ctx context.Context, db *sql.DB, adapter storage.Adapter, f model.FilterSet, page, limit int) ([]model.Posting, error) {
	page, limit = ClampPage(page), ClampLimit(limit)
	st := planner.List(adapter.PlaceholderStyle(), adapter.Dialect(), f, limit, (page-1)*limit)
	rows, err := db.QueryContext(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, fmt.Errorf("search query: %w", err)
	}
	return scanPostings(rows)
}

// Count returns the number of postings matching f.
func Count(ctx context.Context, db *sql.DB, adapter storage.Adapter, f model.FilterSet) (int64, error) {
	st := planner.Count(adapter.PlaceholderStyle(), adapter.Dialect(), f)
	var n int64
	if err := db.QueryRowContext(ctx, st.SQL, st.Args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return n, nil
}

// List combines Search and Count into a page with navigation metadata.
func List(ctx context.Context, db *sql.DB, adapter storage.Adapter, f model.FilterSet, page, limit int) (model.Page, error) {
	page, limit = ClampPage(page), ClampLimit(limit)
	postings, err := Search(ctx, db, adapter, f, page, limit)
	if err != nil {
		return model.Page{}, err
	}
	total, err := Count(ctx, db, adapter, f)
	if err != nil {
		return model.Page{}, err
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return model.Page{
		Postings: postings,
		Meta: model.PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			HasNext:    page < totalPages,
			TotalPages: totalPages,
		},
	}, nil
}

// GetBySlug returns the posting with the given slug. ok is false when no
// such posting exists.
func GetBySlug(ctx context.Context, db *sql.DB, adapter storage.Adapter, slug string) (p model.Posting, ok bool, err error) {
	st := planner.PostingBySlug(adapter.PlaceholderStyle(), adapter.Dialect(), slug)
	p, err = scanPosting(db.QueryRowContext(ctx, st.SQL, st.Args...))
	if err == sql.ErrNoRows {
		return model.Posting{}, false, nil
	}
	if err != nil {
		return model.Posting{}, false, fmt.Errorf("get posting: %w", err)
	}
	return p, true, nil
}

// Similar returns up to limit other postings sharing p's domain and, when p
// has a company, up to limit other postings of that company.
func Similar(ctx context.Context, db *sql.DB, adapter storage.Adapter, p model.Posting, limit int) (byDomain, byCompany []model.Posting, err error) {
	limit = ClampLimit(limit)
	style, d := adapter.PlaceholderStyle(), adapter.Dialect()

	st := planner.SimilarByDomain(style, d, p.Domain, p.ID, limit)
	rows, err := db.QueryContext(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, nil, fmt.Errorf("similar by domain: %w", err)
	}
	if byDomain, err = scanPostings(rows); err != nil {
		return nil, nil, err
	}

	byCompany = []model.Posting{}
	if p.CompanyID != 0 {
		st = planner.SimilarByCompany(style, d, p.CompanyID, p.ID, limit)
		rows, err = db.QueryContext(ctx, st.SQL, st.Args...)
		if err != nil {
			return nil, nil, fmt.Errorf("similar by company: %w", err)
		}
		if byCompany, err = scanPostings(rows); err != nil {
			return nil, nil, err
		}
	}
	return byDomain, byCompany, nil
}
