package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	History   *HistoryCommand
	Bookmarks *BookmarksCommand
	Tabs      *TabsCommand
	Search    *SearchCommand
	Profiles  *ProfilesCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "diascope"
	parser.LongDescription = "Fast CLI for querying Dia browser history, bookmarks, and open tabs."

	cmds := &commands{
		History:   &HistoryCommand{globals: &globals, version: version},
		Bookmarks: &BookmarksCommand{globals: &globals, version: version},
		Tabs:      &TabsCommand{globals: &globals, version: version},
		Search:    &SearchCommand{globals: &globals, version: version},
		Profiles:  &ProfilesCommand{globals: &globals, version: version},
	}

	parser.AddCommand("history", "List browsing history", "List browsing history, most recent first.", cmds.History)
	parser.AddCommand("bookmarks", "List bookmarks", "List bookmarks flattened from the folder tree.", cmds.Bookmarks)
	parser.AddCommand("tabs", "List open tabs", "List currently-open tabs from the newest session snapshot.", cmds.Tabs)
	parser.AddCommand("search", "Search across sources", "Search history, bookmarks, and tabs with ranked fuzzy matching.", cmds.Search)
	parser.AddCommand("profiles", "List browser profiles", "List the browser profiles found in the data directory.", cmds.Profiles)

	return parser, &globals, cmds
}

// Run is the main entry point for the diascope CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("diascope %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
