// Package version provides the builder version.
// The version can be set at build time using ldflags:
//
//	go build -ldflags "-X github.com/ramonehamilton/rudc-rec/internal/version.Version=v1.2.3" ./cmd/rec-builder
package version

// Version is the builder version. It defaults to "dev" and can be
// overridden at build time using ldflags.
var Version = "dev"

// GetVersion returns the current builder version.
func GetVersion() string {
	return Version
}
