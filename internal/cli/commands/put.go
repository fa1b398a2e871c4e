package commands

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/jobindex"
)

const maxIngestLine = 16 << 20

// RunIngest reads one JSON raw posting per line from stdin and stores them
// in batches.
func RunIngest(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("ingest", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var batchSize int
	var file string
	fs.IntVar(&batchSize, "batch", 100, "postings per transaction")
	fs.StringVar(&file, "file", "", "read from file instead of stdin")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	var in io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fail(err)
		}
		defer f.Close()
		in = f
	}

	ctx, cancel := signalContext()
	defer cancel()
	e, err := openEngine(ctx, g, nil)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64<<10), maxIngestLine)

	count, line := 0, 0
	batch := jobindex.NewBatch()
	flush := func() error {
		if batch.Empty() {
			return nil
		}
		out, err := e.IngestBatch(ctx, batch)
		if err != nil {
			return err
		}
		count += len(out)
		batch = jobindex.NewBatch()
		return nil
	}

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var raw jobindex.RawPosting
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return fail(fmt.Errorf("line %d: %w", line, err))
		}
		if err := batch.Add(raw); err != nil {
			return fail(fmt.Errorf("line %d: %w", line, err))
		}
		if batch.Len() >= batchSize {
			if err := flush(); err != nil {
				return fail(err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fail(fmt.Errorf("read input: %w", err))
	}
	if err := flush(); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stdout, "Ingested %d postings\n", count)
	return 0
}
