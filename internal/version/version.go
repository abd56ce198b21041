// Package version holds build-time identification, injected via -ldflags.
package version

// Version, Commit, and BuildDate are set at build time, e.g.:
//
//	go build -ldflags "-X github.com/chrisvisintin/pyc-go/internal/version.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
