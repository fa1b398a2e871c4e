package commands

import (
	"flag"
	"os"

	"github.com/eqhq/jobindex/internal/cliopt"
	"github.com/eqhq/jobindex/internal/cliutil"
	"github.com/eqhq/jobindex/internal/httpapi"
	"github.com/eqhq/jobindex/jobindex"
)

func RunServe(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addr := os.Getenv("JOBINDEX_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	fs.StringVar(&addr, "addr", addr, "listen address")
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	ctx, cancel := signalContext()
	defer cancel()
	log := cliutil.Logger(g)

	e, err := openEngine(ctx, g, func(o *jobindex.Options) { o.Logger = log })
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	log.Info().Str("addr", addr).Str("backend", string(e.Backend())).Msg("serving")
	if err := httpapi.Serve(ctx, httpapi.New(e, log), addr); err != nil {
		return fail(err)
	}
	log.Info().Msg("server stopped")
	return 0
}
