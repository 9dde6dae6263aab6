package version

// Build metadata, set with -ldflags "-X .../internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// Info returns the build metadata as served by /api/version.
func Info() map[string]string {
	return map[string]string{
		"version": Version,
		"commit":  Commit,
		"date":    Date,
		"dirty":   Dirty,
	}
}

// String is the short form used in startup logs.
func String() string {
	s := Version + "+" + Commit
	if Dirty == "true" {
		s += "-dirty"
	}
	return s
}
