package cli

import (
	"fmt"
	"strings"

	"github.com/runnerr0/diascope/internal/config"
	"github.com/runnerr0/diascope/internal/logger"
)

// loadConfig loads the config named by --config, or the default location,
// creating the default file on first use.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.Load(globals.Config)
	}
	return config.LoadOrCreate()
}

// newLogger builds the stderr logger; --verbose forces debug level.
func newLogger(cfg *config.Config, globals *GlobalFlags) logger.Logger {
	level := cfg.Logging.Level
	if globals != nil && globals.Verbose {
		level = "debug"
	}
	return logger.New(level)
}

// profileName resolves the profile to use: flag, then config, then "Default".
func profileName(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	if cfg.Browser.DefaultProfile != "" {
		return cfg.Browser.DefaultProfile
	}
	return "Default"
}

// sourceSet is the set of record sources a search should consult.
type sourceSet struct {
	history   bool
	bookmarks bool
	tabs      bool
}

// parseSources parses a comma-separated source list, rejecting unknown names.
func parseSources(s string) (sourceSet, error) {
	var set sourceSet
	for _, name := range strings.Split(s, ",") {
		switch strings.TrimSpace(name) {
		case "history":
			set.history = true
		case "bookmarks":
			set.bookmarks = true
		case "tabs":
			set.tabs = true
		case "":
		default:
			return sourceSet{}, fmt.Errorf("unknown source %q (valid: history, bookmarks, tabs)", strings.TrimSpace(name))
		}
	}
	if set == (sourceSet{}) {
		return sourceSet{}, fmt.Errorf("no sources selected")
	}
	return set, nil
}
