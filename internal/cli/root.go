package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/eqhq/jobindex/internal/cli/commands"
	"github.com/eqhq/jobindex/internal/cliopt"
)

type command func(cliopt.GlobalOptions, []string) int

var commandTable = map[string]command{
	"migrate":      commands.RunMigrate,
	"ingest":       commands.RunIngest,
	"get":          commands.RunGet,
	"classify":     commands.RunClassify,
	"match-skills": commands.RunMatchSkills,
	"search":       commands.RunSearch,
	"facets":       commands.RunFacets,
	"feed":         commands.RunFeed,
	"skill-counts": commands.RunSkillCounts,
	"sync-skills":  commands.RunSyncSkills,
	"backfill":     commands.RunBackfill,
	"serve":        commands.RunServe,
}

// Execute runs the CLI and returns an exit code.
func Execute(argv []string) int {
	globalFS := flag.NewFlagSet("jobindex", flag.ContinueOnError)
	globalFS.SetOutput(os.Stderr)
	g := cliopt.DefaultGlobalOptions()
	cliopt.BindGlobalFlags(globalFS, &g)

	if err := globalFS.Parse(argv); err != nil {
		// flag package already printed the error
		return 2
	}

	args := globalFS.Args()
	if len(args) == 0 {
		PrintRootHelp(os.Stdout)
		return 0
	}

	verb := args[0]
	switch verb {
	case "--help", "-h", "help":
		PrintRootHelp(os.Stdout)
		return 0
	}
	run, ok := commandTable[verb]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", verb)
		PrintRootHelp(os.Stderr)
		return 2
	}
	return run(g, args[1:])
}
