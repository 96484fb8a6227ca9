package cli

import (
	"io"
	"os"

	"github.com/runnerr0/diascope/internal/logger"
	"github.com/runnerr0/diascope/internal/output"
	"github.com/runnerr0/diascope/internal/sources/history"
)

// Execute implements the go-flags Commander interface for HistoryCommand.
func (c *HistoryCommand) Execute(args []string) error {
	return c.execute(os.Stdout)
}

func (c *HistoryCommand) execute(w io.Writer) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}
	log := newLogger(cfg, c.globals)
	defer log.Sync()

	profile, err := cfg.ResolveProfile(profileName(c.Profile, cfg))
	if err != nil {
		return err
	}

	limit := c.Limit
	if limit <= 0 {
		limit = cfg.History.ListLimit
	}

	records, err := history.Load(profile.HistoryPath(), limit)
	if err != nil {
		return err
	}
	log.Debug("loaded history", logger.Int("records", len(records)))

	if c.globals != nil && c.globals.JSON {
		return output.PrintRecordsArray(w, records)
	}
	return output.PrintRecords(w, records)
}
