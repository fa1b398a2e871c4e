package jobindex

import (
	"context"
	"strings"
)

// Batch collects raw postings to be ingested in one transaction.
type Batch struct {
	postings []RawPosting
}

func NewBatch() Batch {
	return Batch{postings: make([]RawPosting, 0)}
}

func (b *Batch) Add(r RawPosting) error {
	if strings.TrimSpace(r.Title) == "" {
		return New(ErrDecode, "posting title is required")
	}
	b.postings = append(b.postings, r)
	return nil
}

func (b *Batch) Len() int {
	return len(b.postings)
}

func (b *Batch) Empty() bool {
	return len(b.postings) == 0
}

// IngestBatch stores every posting of b or none of them. The stored
// postings are returned in batch order.
func (e *Engine) IngestBatch(ctx context.Context, b Batch) ([]Posting, error) {
	if b.Empty() {
		return []Posting{}, nil
	}

	type prepared struct {
		company Company
		posting Posting
	}
	prep := make([]prepared, 0, b.Len())
	for _, r := range b.postings {
		c, p, err := e.preparePosting(r)
		if err != nil {
			return nil, err
		}
		prep = append(prep, prepared{company: c, posting: p})
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, Wrap(ErrSQL, "begin transaction", err)
	}
	defer tx.Rollback()

	out := make([]Posting, 0, len(prep))
	for _, pr := range prep {
		p, err := e.putPosting(ctx, tx, pr.company, pr.posting, e.nowMS())
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, Wrap(ErrSQL, "commit", err)
	}
	e.log.Debug().Int("postings", len(out)).Msg("batch ingested")
	return out, nil
}
