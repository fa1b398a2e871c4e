package ops

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/planner"
	"github.com/eqhq/jobindex/jobindex/storage"
)

// HomeFeed returns the postings below cursor in descending id order. One
// extra row is fetched to learn whether more exist. NextCursor is the id of
// the last returned posting.
func HomeFeed(ctx context.Context, db *sql.DB, adapter storage.Adapter, cursor *int64, limit int) (model.Feed, error) {
	limit = ClampLimit(limit)
	st := planner.Feed(adapter.PlaceholderStyle(), adapter.Dialect(), cursor, limit+1)
	rows, err := db.QueryContext(ctx, st.SQL, st.Args...)
	if err != nil {
		return model.Feed{}, fmt.Errorf("feed query: %w", err)
	}
	postings, err := scanPostings(rows)
	if err != nil {
		return model.Feed{}, err
	}

	feed := model.Feed{Postings: postings}
	if len(postings) > limit {
		feed.HasMore = true
		feed.Postings = postings[:limit]
	}
	if n := len(feed.Postings); n > 0 {
		next := feed.Postings[n-1].ID
		feed.NextCursor = &next
	}
	return feed, nil
}
