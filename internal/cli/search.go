package cli

import (
	"io"
	"os"

	"github.com/runnerr0/diascope/internal/logger"
	"github.com/runnerr0/diascope/internal/output"
	"github.com/runnerr0/diascope/internal/record"
	"github.com/runnerr0/diascope/internal/search"
	"github.com/runnerr0/diascope/internal/sources/bookmarks"
	"github.com/runnerr0/diascope/internal/sources/history"
	"github.com/runnerr0/diascope/internal/sources/tabs"
)

// Execute implements the go-flags Commander interface for SearchCommand.
func (c *SearchCommand) Execute(args []string) error {
	return c.execute(os.Stdout)
}

func (c *SearchCommand) execute(w io.Writer) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	log := newLogger(cfg, c.globals)
	defer log.Sync()

	sources, err := parseSources(c.Sources)
	if err != nil {
		return err
	}

	profile, err := cfg.ResolveProfile(profileName(c.Profile, cfg))
	if err != nil {
		return err
	}

	var all []record.Record

	if sources.history {
		records, err := history.Load(profile.HistoryPath(), cfg.History.SearchLimit)
		if err != nil {
			return err
		}
		log.Debug("loaded history", logger.Int("records", len(records)))
		all = append(all, records...)
	}

	if sources.bookmarks {
		records, err := bookmarks.Load(profile.BookmarksPath())
		if err != nil {
			return err
		}
		log.Debug("loaded bookmarks", logger.Int("records", len(records)))
		all = append(all, records...)
	}

	if sources.tabs {
		records, err := tabs.Load(profile.SessionsDir(), log)
		if err != nil {
			return err
		}
		log.Debug("loaded tabs", logger.Int("records", len(records)))
		all = append(all, records...)
	}

	deduped := record.Dedupe(all)
	log.Debug("deduplicated records",
		logger.Int("before", len(all)),
		logger.Int("after", len(deduped)))

	limit := c.Limit
	if limit <= 0 {
		limit = cfg.Search.ResultLimit
	}

	results := search.NewEngine().Search(deduped, c.Args.Query, limit)

	switch {
	case c.Table:
		return output.PrintTable(w, results)
	case c.globals != nil && c.globals.JSON:
		return output.PrintResultsArray(w, results)
	default:
		return output.PrintSearchResult(w, results)
	}
}
