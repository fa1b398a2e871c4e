package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/internal/cliutil"
	"github.com/eqhq/jobindex/jobindex/classify"
	"github.com/eqhq/jobindex/jobindex/skills"
)

// RunClassify classifies the title given as arguments. It needs no store.
func RunClassify(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	title := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(os.Stderr, "usage: classify <title>")
		return 2
	}

	c := classify.Title(title)
	if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
		cliutil.PrintJSON(os.Stdout, c)
		return 0
	}
	fmt.Fprintf(os.Stdout, "Domain:           %s\n", c.Domain)
	fmt.Fprintf(os.Stdout, "Experience level: %s\n", c.ExperienceLevel)
	fmt.Fprintf(os.Stdout, "Employment type:  %s\n", c.EmploymentType)
	return 0
}

// RunMatchSkills lists catalog skills found in the arguments, or in stdin
// when there are none.
func RunMatchSkills(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("match-skills", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	text := strings.Join(fs.Args(), " ")
	if text == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fail(err)
		}
		text = string(b)
	}

	found := skills.Default().Match(text)
	if cliutil.ParseOutputFormat(g.Format) == cliutil.FormatJSON {
		cliutil.PrintJSON(os.Stdout, found)
		return 0
	}
	for _, s := range found {
		fmt.Fprintf(os.Stdout, "- %s (%s)\n", s.Name, s.Slug)
	}
	return 0
}
