package commands

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/internal/cliutil"
	"github.com/eqhq/jobindex/jobindex"
	"github.com/eqhq/jobindex/jobindex/model"
)

func RunSearch(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var f model.FilterSet
	var page, limit int
	filterFlags(fs, &f)
	fs.IntVar(&page, "page", 1, "page number, from 1")
	fs.IntVar(&limit, "limit", jobindex.DefaultLimit, "page size, at most 50")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	f, err := resolveFilters(f, fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, cancel := signalContext()
	defer cancel()
	e, err := openEngine(ctx, g, nil)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	start := time.Now()
	result, err := e.List(ctx, f, page, limit)
	if err != nil {
		return fail(err)
	}
	elapsed := time.Since(start)

	if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
		cliutil.PrintJSON(os.Stdout, result)
		return 0
	}
	fmt.Fprintf(os.Stdout, "Found %d postings in %dms (page %d of %d)\n",
		result.Meta.Total, elapsed.Milliseconds(), result.Meta.Page, result.Meta.TotalPages)
	printPostings(result.Postings)
	if result.Meta.HasNext {
		fmt.Fprintf(os.Stdout, "\nnext: --page %d\n", result.Meta.Page+1)
	}
	return 0
}

func RunFeed(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("feed", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var after string
	var limit int
	fs.StringVar(&after, "cursor", "", "posting id to continue below")
	fs.IntVar(&limit, "limit", jobindex.DefaultLimit, "page size, at most 50")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	cursor, err := jobindex.ParseCursor(after)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, cancel := signalContext()
	defer cancel()
	e, err := openEngine(ctx, g, nil)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	feed, err := e.HomeFeed(ctx, cursor, limit)
	if err != nil {
		return fail(err)
	}
	if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
		cliutil.PrintJSON(os.Stdout, feed)
		return 0
	}
	printPostings(feed.Postings)
	if feed.HasMore {
		fmt.Fprintf(os.Stdout, "\nnext: --cursor %s\n", jobindex.FormatCursor(feed.NextCursor))
	}
	return 0
}
