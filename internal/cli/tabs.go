package cli

import (
	"io"
	"os"

	"github.com/runnerr0/diascope/internal/logger"
	"github.com/runnerr0/diascope/internal/output"
	"github.com/runnerr0/diascope/internal/sources/tabs"
)

// Execute implements the go-flags Commander interface for TabsCommand.
func (c *TabsCommand) Execute(args []string) error {
	return c.execute(os.Stdout)
}

func (c *TabsCommand) execute(w io.Writer) error {
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

	records, err := tabs.Load(profile.SessionsDir(), log)
	if err != nil {
		return err
	}
	log.Debug("loaded tabs", logger.Int("records", len(records)))

	if c.globals != nil && c.globals.JSON {
		return output.PrintRecordsArray(w, records)
	}
	return output.PrintRecords(w, records)
}
