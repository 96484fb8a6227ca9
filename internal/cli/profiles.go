package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/runnerr0/diascope/internal/config"
)

// Execute implements the go-flags Commander interface for ProfilesCommand.
func (c *ProfilesCommand) Execute(args []string) error {
	return c.execute(os.Stdout)
}

func (c *ProfilesCommand) execute(w io.Writer) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return err
	}

	profiles, err := config.ListProfiles(dataDir)
	if err != nil {
		return err
	}

	if c.globals != nil && c.globals.JSON {
		if profiles == nil {
			profiles = []string{}
		}
		return json.NewEncoder(w).Encode(profiles)
	}

	for _, p := range profiles {
		fmt.Fprintln(w, p)
	}
	return nil
}
