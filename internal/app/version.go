package app

import "fmt"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/sustainage/materiality-survey/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported at startup and by /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
