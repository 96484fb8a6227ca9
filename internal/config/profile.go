package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// diaDataDir is the Dia browser's user-data directory relative to $HOME.
const diaDataDir = "Library/Application Support/Dia/User Data"

// Profile resolves filesystem paths inside one browser profile.
type Profile struct {
	Path string
}

// DataDir returns the browser user-data directory, honoring the config
// override.
func (c *Config) DataDir() (string, error) {
	if c.Browser.DataDir != "" {
		return expandPath(c.Browser.DataDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, diaDataDir), nil
}

// ResolveProfile locates the named profile under the data directory. When
// the profile does not exist, the error lists the profiles that do.
func (c *Config) ResolveProfile(name string) (*Profile, error) {
	dataDir, err := c.DataDir()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(dataDir); err != nil {
		return nil, fmt.Errorf("browser data directory not found at %s", dataDir)
	}

	profilePath := filepath.Join(dataDir, name)
	if _, err := os.Stat(profilePath); err != nil {
		available, listErr := ListProfiles(dataDir)
		if listErr != nil || len(available) == 0 {
			return nil, fmt.Errorf("profile %q not found in %s", name, dataDir)
		}
		return nil, fmt.Errorf("profile %q not found (available: %s)", name, strings.Join(available, ", "))
	}

	return &Profile{Path: profilePath}, nil
}

// ListProfiles returns the profile directory names under dataDir, sorted.
func ListProfiles(dataDir string) ([]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory: %w", err)
	}

	var profiles []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			profiles = append(profiles, e.Name())
		}
	}
	sort.Strings(profiles)

	return profiles, nil
}

// HistoryPath is the profile's Chromium History database.
func (p *Profile) HistoryPath() string {
	return filepath.Join(p.Path, "History")
}

// BookmarksPath is the profile's Bookmarks JSON file.
func (p *Profile) BookmarksPath() string {
	return filepath.Join(p.Path, "Bookmarks")
}

// SessionsDir is the profile's session-snapshot directory.
func (p *Profile) SessionsDir() string {
	return filepath.Join(p.Path, "Sessions")
}
