package version

// Set at build time via -ldflags.
var (
	Version = "dev"  // ex: v0.1.0
	Commit  = "none" // ex: abcd123
)
