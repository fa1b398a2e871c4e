package cli

import (
	"fmt"
	"io"
)

func PrintRootHelp(w io.Writer) {
	fmt.Fprintln(w, `jobindex: job posting classification and faceted search

USAGE
  jobindex [global flags] <command> [args]

GLOBAL FLAGS
  --backend sqlite|postgres          (JOBINDEX_BACKEND)
  --sqlite-path <file.db|dir>        (JOBINDEX_SQLITE_PATH)
  --sqlite-driver sqlite|sqlite3     (JOBINDEX_SQLITE_DRIVER)
  --pg-dsn <dsn>                     (DATABASE_URL)
  --pg-schema <name>                 (JOBINDEX_PG_SCHEMA)
  --redis-addr <host:port>           (REDIS_ADDR)
  --redis-password <pw>              (REDIS_PASSWORD)
  --redis-db <n>                     (REDIS_DB)
  --log-level debug|info|warn|error  (LOG_LEVEL)
  --log-format json|console          (LOG_FORMAT)
  --format pretty|json

COMMANDS
  migrate                       apply schema migrations
  ingest [--batch N] [--file F] store raw postings, one JSON object per line
  get [--similar N] <slug>      show one posting
  classify <title>              classify a job title
  match-skills [text]           list catalog skills found in text (or stdin)
  search [filters]              list matching postings
  facets [filters]              count postings per domain, type and level
  feed [--cursor ID]            newest postings, keyset paginated
  skill-counts [filters]        count postings per skill
  sync-skills                   write the skill catalog to the store
  backfill [--every SPEC]       match skills for postings that have none
  serve [--addr :8080]          serve the HTTP API

FILTERS
  --q --domain --employment-type --experience-level --location --company --skill

  Filters may also follow the flags as a filter string; flags win:
    jobindex search level:Senior skill:go location:"New York" platform

A .env file in the working directory is loaded before flags are read.`)
}
