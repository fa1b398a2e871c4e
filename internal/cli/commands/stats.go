package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/internal/cliutil"
	"github.com/eqhq/jobindex/jobindex/model"
)

func RunSkillCounts(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("skill-counts", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var f model.FilterSet
	var top int
	filterFlags(fs, &f)
	fs.IntVar(&top, "top", 20, "number of skills, 0 for all")
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

	counts, err := e.SkillCounts(ctx, f, top)
	if err != nil {
		return fail(err)
	}
	if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
		cliutil.PrintJSON(os.Stdout, counts)
		return 0
	}
	for _, c := range counts {
		fmt.Fprintf(os.Stdout, "  %s (%s): %d\n", c.Name, c.Slug, c.Count)
	}
	return 0
}

func RunSyncSkills(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("sync-skills", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	ctx, cancel := signalContext()
	defer cancel()
	e, err := openEngine(ctx, g, nil)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	n, err := e.SyncSkills(ctx)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stdout, "Synced %d skills\n", n)
	return 0
}
