package ops

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/eqhq/jobindex/jobindex/description"
	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/storage"
)

const (
	DefaultBackfillBatchSize   = 100
	DefaultBackfillConcurrency = 100
)

// BackfillRecord is a posting still missing its skill set.
type BackfillRecord struct {
	ID          int64
	Description []byte
}

// BackfillStore is the persistence the runner needs.
type BackfillStore interface {
	// FetchUnset returns up to limit postings with id > afterID whose skill
	// set is unset, in ascending id order.
	FetchUnset(ctx context.Context, afterID int64, limit int) ([]BackfillRecord, error)
	UpdateSkills(ctx context.Context, id int64, skills []model.SkillRef) error
}

// SkillMatcher is satisfied by *skills.Matcher.
type SkillMatcher interface {
	Match(text string) []model.SkillRef
}

type BackfillOptions struct {
	BatchSize   int
	Concurrency int
	Logger      zerolog.Logger
	// Checkpoints is optional.
	Checkpoints CheckpointStore
}

type BackfillStats struct {
	RunID   string `json:"run_id"`
	Batches int    `json:"batches"`
	Fetched int    `json:"fetched"`
	Updated int    `json:"updated"`
	// Empty counts postings whose description held no usable text; they
	// are written with an empty skill set.
	Empty  int   `json:"empty"`
	Failed int   `json:"failed"`
	LastID int64 `json:"last_id"`
}

// RunBackfill assigns skill sets to every posting that lacks one.
//
// Batches are fetched by ascending id after the last id seen and processed
// strictly one after another. Within a batch, updates run concurrently up
// to Concurrency; a failed update is logged and counted and the posting is
// left for a later run. The run ends when a fetch returns nothing, at which
// point the checkpoint is cleared.
func RunBackfill(ctx context.Context, store BackfillStore, matcher SkillMatcher, opts BackfillOptions) (BackfillStats, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBackfillBatchSize
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultBackfillConcurrency
	}
	stats := BackfillStats{RunID: uuid.NewString()}
	log := opts.Logger.With().Str("run_id", stats.RunID).Logger()

	var afterID int64
	if opts.Checkpoints != nil {
		id, err := opts.Checkpoints.Load(ctx)
		if err != nil {
			return stats, fmt.Errorf("load checkpoint: %w", err)
		}
		afterID = id
	}
	log.Info().Int64("after_id", afterID).Int("batch_size", opts.BatchSize).Msg("backfill started")

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		batch, err := store.FetchUnset(ctx, afterID, opts.BatchSize)
		if err != nil {
			return stats, fmt.Errorf("fetch batch after %d: %w", afterID, err)
		}
		if len(batch) == 0 {
			break
		}

		var updated, empty, failed atomic.Int64
		var g errgroup.Group
		g.SetLimit(opts.Concurrency)
		for _, rec := range batch {
			rec := rec
			g.Go(func() error {
				text := description.TextFromJSON(rec.Description)
				skills := []model.SkillRef{}
				if text == "" {
					empty.Add(1)
				} else {
					skills = matcher.Match(text)
				}
				if err := store.UpdateSkills(ctx, rec.ID, skills); err != nil {
					failed.Add(1)
					log.Warn().Int64("id", rec.ID).Err(err).Msg("backfill update failed")
					return nil
				}
				updated.Add(1)
				return nil
			})
		}
		_ = g.Wait()

		afterID = batch[len(batch)-1].ID
		stats.Batches++
		stats.Fetched += len(batch)
		stats.Updated += int(updated.Load())
		stats.Empty += int(empty.Load())
		stats.Failed += int(failed.Load())
		stats.LastID = afterID

		if opts.Checkpoints != nil {
			if err := opts.Checkpoints.Save(ctx, afterID); err != nil {
				log.Warn().Err(err).Int64("last_id", afterID).Msg("save checkpoint failed")
			}
		}
		log.Info().
			Int("batch", stats.Batches).
			Int("fetched", len(batch)).
			Int64("updated", updated.Load()).
			Int64("empty", empty.Load()).
			Int64("failed", failed.Load()).
			Int64("last_id", afterID).
			Msg("backfill batch done")
	}

	if opts.Checkpoints != nil {
		if err := opts.Checkpoints.Clear(ctx); err != nil {
			log.Warn().Err(err).Msg("clear checkpoint failed")
		}
	}
	log.Info().
		Int("batches", stats.Batches).
		Int("updated", stats.Updated).
		Int("failed", stats.Failed).
		Msg("backfill finished")
	return stats, nil
}

// SQLBackfillStore runs the backfill against the jobs table.
type SQLBackfillStore struct {
	DB  *sql.DB
	SQL storage.SQL
	Now func() time.Time
}

func (s SQLBackfillStore) FetchUnset(ctx context.Context, afterID int64, limit int) ([]BackfillRecord, error) {
	rows, err := s.DB.QueryContext(ctx, s.SQL.SelectUnsetSkills, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BackfillRecord
	for rows.Next() {
		var (
			rec  BackfillRecord
			desc sql.NullString
		)
		if err := rows.Scan(&rec.ID, &desc); err != nil {
			return nil, err
		}
		if desc.Valid {
			rec.Description = []byte(desc.String)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s SQLBackfillStore) UpdateSkills(ctx context.Context, id int64, skills []model.SkillRef) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return UpdateSkills(ctx, s.DB, s.SQL, id, skills, now().UnixMilli())
}
