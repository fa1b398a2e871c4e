package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/internal/cliutil"
	"github.com/eqhq/jobindex/jobindex"
	"github.com/eqhq/jobindex/jobindex/ops"
	"github.com/eqhq/jobindex/jobindex/storage/redisstore"
)

// RunBackfill matches skills for postings that have none. With --every it
// keeps running on a cron schedule until interrupted.
func RunBackfill(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("backfill", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var batchSize, concurrency int
	var every, key string
	fs.IntVar(&batchSize, "batch-size", jobindex.DefaultBackfillBatchSize, "postings fetched per batch")
	fs.IntVar(&concurrency, "concurrency", jobindex.DefaultBackfillConcurrency, "concurrent updates within a batch")
	fs.StringVar(&every, "every", "", `cron schedule, e.g. "@every 1h" or "0 3 * * *"`)
	fs.StringVar(&key, "checkpoint-key", redisstore.DefaultKey, "redis key for the resume checkpoint")
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	ctx, cancel := signalContext()
	defer cancel()
	log := cliutil.Logger(g)

	var checkpoints ops.CheckpointStore = ops.NewMemoryCheckpoint()
	if g.RedisAddr != "" {
		cp, err := redisstore.Dial(ctx, redisstore.Options{
			Addr:     g.RedisAddr,
			Password: g.RedisPassword,
			DB:       g.RedisDB,
			Key:      key,
		})
		if err != nil {
			return fail(err)
		}
		defer cp.Close()
		checkpoints = cp
	}

	e, err := openEngine(ctx, g, func(o *jobindex.Options) {
		o.BackfillBatchSize = batchSize
		o.BackfillConcurrency = concurrency
		o.Checkpoints = checkpoints
		o.Logger = log
	})
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	if every == "" {
		stats, err := e.Backfill(ctx)
		if err != nil {
			return fail(err)
		}
		printBackfill(g, stats)
		return 0
	}
	if err := scheduleBackfill(ctx, e, every, log); err != nil {
		return fail(err)
	}
	return 0
}

// scheduleBackfill runs one backfill immediately and then on every tick of
// spec. A tick is skipped while the previous run is still going.
func scheduleBackfill(ctx context.Context, e *jobindex.Engine, spec string, log zerolog.Logger) error {
	run := func() {
		if _, err := e.Backfill(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("scheduled backfill failed")
		}
	}
	job := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(run))

	c := cron.New()
	if _, err := c.AddJob(spec, job); err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}

	log.Info().Str("schedule", spec).Msg("backfill scheduler started")
	c.Start()
	var first sync.WaitGroup
	first.Add(1)
	go func() {
		defer first.Done()
		job.Run()
	}()

	<-ctx.Done()
	<-c.Stop().Done()
	first.Wait()
	log.Info().Msg("backfill scheduler stopped")
	return nil
}

func printBackfill(g cliopt.GlobalOptions, stats jobindex.BackfillStats) {
	if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
		cliutil.PrintJSON(os.Stdout, stats)
		return
	}
	fmt.Fprintf(os.Stdout, "Backfill %s: %d batches, %d fetched, %d updated (%d empty), %d failed\n",
		stats.RunID, stats.Batches, stats.Fetched, stats.Updated, stats.Empty, stats.Failed)
}
