package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/internal/cliutil"
	"github.com/eqhq/jobindex/jobindex"
	"github.com/eqhq/jobindex/jobindex/description"
)

// RunGet prints one posting by slug, optionally with related postings.
func RunGet(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var similar int
	fs.IntVar(&similar, "similar", 0, "also list up to N related postings")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: get [--similar N] <slug>")
		return 2
	}
	slug := fs.Arg(0)

	ctx, cancel := signalContext()
	defer cancel()
	e, err := openEngine(ctx, g, nil)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	p, err := e.GetPosting(ctx, slug)
	if err != nil {
		if jobindex.IsKind(err, jobindex.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "posting not found: %s\n", slug)
			return 1
		}
		return fail(err)
	}

	var rel jobindex.Similar
	if similar > 0 {
		if rel, err = e.Similar(ctx, p, similar); err != nil {
			return fail(err)
		}
	}

	if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
		out := map[string]any{"job": p}
		if similar > 0 {
			out["similar"] = rel
		}
		cliutil.PrintJSON(os.Stdout, out)
		return 0
	}

	fmt.Fprintf(os.Stdout, "%s\n", p.Title)
	fmt.Fprintf(os.Stdout, "  Company:    %s\n", p.CompanyName)
	fmt.Fprintf(os.Stdout, "  Location:   %s\n", p.Location)
	fmt.Fprintf(os.Stdout, "  Domain:     %s\n", p.Domain)
	fmt.Fprintf(os.Stdout, "  Level:      %s\n", p.ExperienceLevel)
	fmt.Fprintf(os.Stdout, "  Type:       %s\n", p.EmploymentType)
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	fmt.Fprintf(os.Stdout, "  Skills:     %s\n", strings.Join(names, ", "))
	if preview := description.Preview(p.Description); preview != "" {
		fmt.Fprintf(os.Stdout, "\n%s\n", preview)
	}
	if similar > 0 {
		fmt.Fprintln(os.Stdout, "\nSame domain:")
		printPostings(rel.ByDomain)
		fmt.Fprintln(os.Stdout, "\nSame company:")
		printPostings(rel.ByCompany)
	}
	return 0
}
