package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/internal/cliutil"
	"github.com/eqhq/jobindex/jobindex/model"
)

// RunFacets prints per-value counts of the faceted dimensions under the
// given filters.
func RunFacets(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("facets", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var f model.FilterSet
	var dim string
	filterFlags(fs, &f)
	fs.StringVar(&dim, "dimension", "", "only this dimension: domain|employment_type|experience_level")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	f, err := resolveFilters(f, fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if dim != "" && !model.Dimension(dim).Valid() {
		fmt.Fprintf(os.Stderr, "unknown dimension %q\n", dim)
		return 2
	}

	ctx, cancel := signalContext()
	defer cancel()
	e, err := openEngine(ctx, g, nil)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	var result model.FacetResult
	dims := model.Dimensions
	if dim != "" {
		d := model.Dimension(dim)
		values, err := e.FacetValues(ctx, f, d)
		if err != nil {
			return fail(err)
		}
		result.Set(d, values)
		dims = []model.Dimension{d}
	} else if result, err = e.Facets(ctx, f); err != nil {
		return fail(err)
	}

	if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
		cliutil.PrintJSON(os.Stdout, result)
		return 0
	}
	for _, d := range dims {
		fmt.Fprintf(os.Stdout, "%s:\n", d)
		for _, vc := range result.Get(d) {
			fmt.Fprintf(os.Stdout, "  %s: %d\n", vc.Value, vc.Count)
		}
	}
	return 0
}
