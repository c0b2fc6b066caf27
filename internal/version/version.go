package version

// Version information set at build time via ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
