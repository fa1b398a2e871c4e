package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/internal/cliutil"
	"github.com/eqhq/jobindex/jobindex"
	"github.com/eqhq/jobindex/jobindex/catalog"
	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/query"
)

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, err)
	return 1
}

func openEngine(ctx context.Context, g cliopt.GlobalOptions, mutate func(*jobindex.Options)) (*jobindex.Engine, error) {
	e, err := cliutil.OpenEngine(ctx, g, mutate)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return e, nil
}

// filterFlags binds the filter set flags shared by the query commands.
func filterFlags(fs *flag.FlagSet, f *model.FilterSet) {
	fs.StringVar(&f.Query, "q", "", "free-text query over title, company and location")
	fs.StringVar(&f.Domain, "domain", "", "domain name or slug")
	fs.StringVar(&f.EmploymentType, "employment-type", "", "employment type")
	fs.StringVar(&f.ExperienceLevel, "experience-level", "", "experience level")
	fs.StringVar(&f.Location, "location", "", "location substring")
	fs.StringVar(&f.CompanySlug, "company", "", "company slug")
	fs.StringVar(&f.SkillSlug, "skill", "", "skill slug")
}

// resolveFilters parses positional arguments as a filter string such as
// `domain:backend skill:go berlin`, lets explicit flags win over it and
// validates the result against the catalog.
func resolveFilters(flags model.FilterSet, args []string) (model.FilterSet, error) {
	parsed, err := query.Parse(strings.Join(args, " "))
	if err != nil {
		return model.FilterSet{}, fmt.Errorf("filter: %w", err)
	}
	return catalog.Default().ResolveFilters(query.Merge(parsed, flags))
}

func printPostings(postings []model.Posting) {
	for _, p := range postings {
		company := p.CompanyName
		if company == "" {
			company = "-"
		}
		fmt.Fprintf(os.Stdout, "- [%d] %s | %s | %s (%s / %s / %s)\n",
			p.ID, p.Title, company, p.Location, p.Domain, p.ExperienceLevel, p.EmploymentType)
	}
}
