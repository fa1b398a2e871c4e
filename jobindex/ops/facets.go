package ops

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/planner"
	"github.com/eqhq/jobindex/jobindex/storage"
)

// Facets counts matching postings per value of every facet dimension. Each
// dimension is counted with its own filter removed. The three queries run
// concurrently; any failure fails the whole call.
func Facets(ctx context.Context, db *sql.DB, adapter storage.Adapter, f model.FilterSet) (model.FacetResult, error) {
	results := make([][]model.ValueCount, len(model.Dimensions))
	g, gctx := errgroup.WithContext(ctx)
	for i, dim := range model.Dimensions {
		i, dim := i, dim
		g.Go(func() error {
			counts, err := FacetValues(gctx, db, adapter, f, dim)
			if err != nil {
				return err
			}
			results[i] = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.FacetResult{}, err
	}

	var out model.FacetResult
	for i, dim := range model.Dimensions {
		out.Set(dim, results[i])
	}
	return out, nil
}

// FacetValues counts matching postings per value of a single dimension,
// most common first.
func FacetValues(ctx context.Context, db *sql.DB, adapter storage.Adapter, f model.FilterSet, dim model.Dimension) ([]model.ValueCount, error) {
	st, err := planner.Facet(adapter.PlaceholderStyle(), adapter.Dialect(), f, dim)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, fmt.Errorf("facet %s: %w", dim, err)
	}
	defer rows.Close()

	out := []model.ValueCount{}
	for rows.Next() {
		var vc model.ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return nil, fmt.Errorf("scan facet %s: %w", dim, err)
		}
		out = append(out, vc)
	}
	return out, rows.Err()
}

// SkillCount is the number of matching postings carrying a skill.
type SkillCount struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int64  `json:"count"`
}

// SkillCounts counts matching postings per stored skill, most common first.
// top <= 0 returns every skill.
func SkillCounts(ctx context.Context, db *sql.DB, adapter storage.Adapter, f model.FilterSet, top int) ([]SkillCount, error) {
	st := planner.SkillCounts(adapter.PlaceholderStyle(), adapter.Dialect(), f, top)
	rows, err := db.QueryContext(ctx, st.SQL, st.Args...)
	if err != nil {
		return nil, fmt.Errorf("skill counts: %w", err)
	}
	defer rows.Close()

	out := []SkillCount{}
	for rows.Next() {
		var (
			sc   SkillCount
			name sql.NullString
		)
		if err := rows.Scan(&sc.Slug, &name, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan skill count: %w", err)
		}
		sc.Name = name.String
		out = append(out, sc)
	}
	return out, rows.Err()
}
