package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output as a single JSON array (default: newline-delimited JSON)"`
	Verbose bool   `long:"verbose" description:"Enable verbose logging"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// HistoryCommand — list browsing history, most recent first.
type HistoryCommand struct {
	Limit   int    `short:"l" long:"limit" description:"Maximum number of entries (0 = config default)" default:"0"`
	Profile string `short:"p" long:"profile" description:"Browser profile name" default:""`

	globals *GlobalFlags
	version string
}

// BookmarksCommand — list bookmarks flattened from the folder tree.
type BookmarksCommand struct {
	Profile string `short:"p" long:"profile" description:"Browser profile name" default:""`

	globals *GlobalFlags
	version string
}

// TabsCommand — list currently-open tabs from the newest session snapshot.
type TabsCommand struct {
	Profile string `short:"p" long:"profile" description:"Browser profile name" default:""`

	globals *GlobalFlags
	version string
}

// SearchCommand — ranked fuzzy search across deduplicated sources.
type SearchCommand struct {
	Sources string `short:"s" long:"sources" description:"Comma-separated sources: history,bookmarks,tabs" default:"history,bookmarks"`
	Limit   int    `short:"l" long:"limit" description:"Maximum number of results (0 = config default)" default:"0"`
	Profile string `short:"p" long:"profile" description:"Browser profile name" default:""`
	Table   bool   `long:"table" description:"Render results as a table"`

	Args struct {
		Query string `positional-arg-name:"QUERY" description:"Search query (empty lists records unranked)"`
	} `positional-args:"yes"`

	globals *GlobalFlags
	version string
}

// ProfilesCommand — list the browser profiles in the data directory.
type ProfilesCommand struct {
	globals *GlobalFlags
	version string
}
