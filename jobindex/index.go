// Package jobindex classifies job postings, extracts their skills and
// answers faceted searches over the stored corpus.
package jobindex

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/eqhq/jobindex/jobindex/catalog"
	"github.com/eqhq/jobindex/jobindex/classify"
	"github.com/eqhq/jobindex/jobindex/ops"
	"github.com/eqhq/jobindex/jobindex/skills"
	"github.com/eqhq/jobindex/jobindex/storage"
)

// Engine is an open job index. It is safe for concurrent use.
type Engine struct {
	adapter storage.Adapter
	db      *sql.DB
	catalog *catalog.Catalog
	matcher *skills.Matcher
	opts    Options
	log     zerolog.Logger
}

// Open connects through adapter and brings the schema up to date.
func Open(ctx context.Context, adapter storage.Adapter, opts Options) (*Engine, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}

	db, err := adapter.Connect(ctx)
	if err != nil {
		return nil, Wrap(ErrIO, "connect to database", err)
	}
	if err := adapter.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, Wrap(ErrSchema, "migrate", err)
	}

	return &Engine{
		adapter: adapter,
		db:      db,
		catalog: opts.Catalog,
		matcher: skills.FromCatalog(opts.Catalog),
		opts:    opts,
		log:     opts.Logger.With().Str("store", adapter.StoreID()).Logger(),
	}, nil
}

// Close closes the engine
func (e *Engine) Close() error {
	if e.db != nil {
		if err := e.db.Close(); err != nil {
			return Wrap(ErrIO, "close database", err)
		}
	}
	return e.adapter.Close()
}

func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

func (e *Engine) Backend() storage.Backend { return e.adapter.Backend() }

// Ping checks that the store is reachable.
func (e *Engine) Ping(ctx context.Context) error {
	if err := e.db.PingContext(ctx); err != nil {
		return Wrap(ErrIO, "ping", err)
	}
	return nil
}

// Classify assigns a domain, experience level and employment type to a
// job title.
func (e *Engine) Classify(title string) Classification {
	return classify.Title(title)
}

// MatchSkills returns the catalog skills mentioned in text, in catalog
// order.
func (e *Engine) MatchSkills(text string) []SkillRef {
	return e.matcher.Match(text)
}

// Search returns one page of postings matching f, newest first. Filter
// values are used as given; callers validate them against the catalog.
func (e *Engine) Search(ctx context.Context, f FilterSet, page, limit int) ([]Posting, error) {
	postings, err := ops.Search(ctx, e.db, e.adapter, f, page, limit)
	if err != nil {
		return nil, Wrap(ErrSQL, "search", err)
	}
	return postings, nil
}

// Count returns how many postings match f.
func (e *Engine) Count(ctx context.Context, f FilterSet) (int64, error) {
	n, err := ops.Count(ctx, e.db, e.adapter, f)
	if err != nil {
		return 0, Wrap(ErrSQL, "count", err)
	}
	return n, nil
}

// List is Search plus the total count and page metadata.
func (e *Engine) List(ctx context.Context, f FilterSet, page, limit int) (Page, error) {
	p, err := ops.List(ctx, e.db, e.adapter, f, page, limit)
	if err != nil {
		return Page{}, Wrap(ErrSQL, "list", err)
	}
	return p, nil
}

// Facets counts postings per value of every faceted dimension. Each
// dimension ignores its own filter so that sibling values stay visible.
func (e *Engine) Facets(ctx context.Context, f FilterSet) (FacetResult, error) {
	r, err := ops.Facets(ctx, e.db, e.adapter, f)
	if err != nil {
		return FacetResult{}, Wrap(ErrSQL, "facets", err)
	}
	return r, nil
}

// FacetValues counts one dimension.
func (e *Engine) FacetValues(ctx context.Context, f FilterSet, dim Dimension) ([]ValueCount, error) {
	if !dim.Valid() {
		return nil, InvalidFilterError("dimension", "unknown facet dimension "+string(dim))
	}
	counts, err := ops.FacetValues(ctx, e.db, e.adapter, f, dim)
	if err != nil {
		return nil, Wrap(ErrSQL, "facet values", err)
	}
	return counts, nil
}

// HomeFeed returns the postings with id below cursor, highest id first.
// A nil cursor starts at the newest posting.
func (e *Engine) HomeFeed(ctx context.Context, cursor *int64, limit int) (Feed, error) {
	feed, err := ops.HomeFeed(ctx, e.db, e.adapter, cursor, limit)
	if err != nil {
		return Feed{}, Wrap(ErrSQL, "feed", err)
	}
	return feed, nil
}

// GetPosting returns the posting with the given slug.
func (e *Engine) GetPosting(ctx context.Context, slug string) (Posting, error) {
	p, ok, err := ops.GetBySlug(ctx, e.db, e.adapter, slug)
	if err != nil {
		return Posting{}, Wrap(ErrSQL, "get posting", err)
	}
	if !ok {
		return Posting{}, NotFoundError("posting", slug)
	}
	return p, nil
}

// Similar returns other postings in p's domain and from p's company.
func (e *Engine) Similar(ctx context.Context, p Posting, limit int) (Similar, error) {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	byDomain, byCompany, err := ops.Similar(ctx, e.db, e.adapter, p, limit)
	if err != nil {
		return Similar{}, Wrap(ErrSQL, "similar", err)
	}
	return Similar{ByDomain: byDomain, ByCompany: byCompany}, nil
}

// SkillCounts counts postings matching f per skill. top <= 0 means all.
func (e *Engine) SkillCounts(ctx context.Context, f FilterSet, top int) ([]SkillCount, error) {
	counts, err := ops.SkillCounts(ctx, e.db, e.adapter, f, top)
	if err != nil {
		return nil, Wrap(ErrSQL, "skill counts", err)
	}
	return counts, nil
}

// SkillBySlug resolves a skill slug against the catalog.
func (e *Engine) SkillBySlug(slug string) (SkillRef, error) {
	ref, ok := e.catalog.SkillBySlug(slug)
	if !ok {
		return SkillRef{}, NotFoundError("skill", slug)
	}
	return ref, nil
}

// SkillTypeBySlug resolves a skill type slug against the catalog.
func (e *Engine) SkillTypeBySlug(slug string) (catalog.SkillType, error) {
	t, ok := e.catalog.SkillTypeBySlug(slug)
	if !ok {
		return catalog.SkillType{}, NotFoundError("skill type", slug)
	}
	return t, nil
}

// SyncSkills writes every catalog skill to the skills table.
func (e *Engine) SyncSkills(ctx context.Context) (int, error) {
	n, err := ops.SyncSkills(ctx, e.db, e.adapter.SQL(), e.catalog)
	if err != nil {
		return 0, Wrap(ErrSQL, "sync skills", err)
	}
	e.log.Info().Int("skills", n).Msg("skills synced")
	return n, nil
}

// Backfill matches skills for every posting whose skill set is unset.
// Running it again once it has finished changes nothing.
func (e *Engine) Backfill(ctx context.Context) (BackfillStats, error) {
	store := ops.SQLBackfillStore{DB: e.db, SQL: e.adapter.SQL(), Now: e.opts.Now}
	stats, err := ops.RunBackfill(ctx, store, e.matcher, ops.BackfillOptions{
		BatchSize:   e.opts.BackfillBatchSize,
		Concurrency: e.opts.BackfillConcurrency,
		Logger:      e.log,
		Checkpoints: e.opts.Checkpoints,
	})
	if err != nil {
		if ctx.Err() != nil {
			return stats, err
		}
		return stats, Wrap(ErrSQL, "backfill", err)
	}
	return stats, nil
}

func (e *Engine) nowMS() int64 {
	return e.opts.Now().UnixMilli()
}
