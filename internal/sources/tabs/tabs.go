// Package tabs reads currently-open tabs out of a browser session snapshot.
package tabs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/runnerr0/diascope/internal/logger"
	"github.com/runnerr0/diascope/internal/record"
)

// tabCap bounds the number of tabs handed to the core.
const tabCap = 500

// Load reads the newest session snapshot under sessionsDir and returns one
// record per open tab. A session file records every navigation a tab made;
// only the highest-index navigation per tab id (its current page) is kept.
// An unparseable snapshot logs a warning and yields an empty slice; a
// missing sessions directory is an error.
func Load(sessionsDir string, log logger.Logger) ([]record.Record, error) {
	sessionFile, err := newestSessionFile(sessionsDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(sessionFile)
	if err != nil {
		return nil, fmt.Errorf("read session file %s: %w", sessionFile, err)
	}

	commands, err := parseCommands(data)
	if err != nil {
		log.Warn("failed to parse session file",
			logger.String("path", sessionFile),
			logger.Err(err))
		return nil, nil
	}

	type navState struct {
		index int32
		url   string
		title string
	}
	current := make(map[int32]navState)
	var order []int32 // first-seen tab ids, for stable output

	for _, cmd := range commands {
		if cmd.id != commandUpdateTabNavigationTabs && cmd.id != commandUpdateTabNavigationSession {
			continue
		}
		nav, err := decodeTabNavigation(cmd.payload)
		if err != nil || nav.url == "" {
			continue
		}
		state, seen := current[nav.tabID]
		if !seen {
			order = append(order, nav.tabID)
		}
		if !seen || nav.index > state.index {
			current[nav.tabID] = navState{index: nav.index, url: nav.url, title: nav.title}
		}
	}

	entries := make([]record.Record, 0, len(order))
	for _, id := range order {
		if len(entries) >= tabCap {
			break
		}
		state := current[id]
		entries = append(entries, record.NewTab(state.url, state.title, id))
	}

	return entries, nil
}

// newestSessionFile picks the snapshot to read: Tabs_* files carry the
// live tab set and win over Session_*; within each kind, newest mtime wins.
func newestSessionFile(sessionsDir string) (string, error) {
	dirEntries, err := os.ReadDir(sessionsDir)
	if err != nil {
		return "", fmt.Errorf("sessions directory not found: %s: %w", sessionsDir, err)
	}

	type candidate struct {
		path   string
		isTabs bool
		mtime  int64
	}
	var candidates []candidate

	for _, e := range dirEntries {
		name := e.Name()
		isTabs := strings.HasPrefix(name, "Tabs_")
		if !isTabs && !strings.HasPrefix(name, "Session_") {
			continue
		}
		var mtime int64
		if info, err := e.Info(); err == nil {
			mtime = info.ModTime().UnixNano()
		}
		candidates = append(candidates, candidate{
			path:   filepath.Join(sessionsDir, name),
			isTabs: isTabs,
			mtime:  mtime,
		})
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no session files found in %s", sessionsDir)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].isTabs != candidates[j].isTabs {
			return candidates[i].isTabs
		}
		return candidates[i].mtime > candidates[j].mtime
	})

	return candidates[0].path, nil
}
