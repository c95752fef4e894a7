// Package version provides version information for userdeck.
package version

import "fmt"

// Version is the version of userdeck. This can be overridden at build time using ldflags.
var Version = "development"

// Commit is the git commit hash. This can be overridden at build time using ldflags.
var Commit = "unknown"

// String returns the full version string including the commit hash if available.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}

// Banner returns the line printed by the version command.
func Banner() string {
	return fmt.Sprintf("userdeck version %s", String())
}
