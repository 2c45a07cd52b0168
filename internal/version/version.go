// Package version provides version information for pathcalc.
package version

// Version is the current version of pathcalc.
// Set at build time via: -ldflags "-X github.com/xdg/pathcalc/internal/version.Version=v1.0.0"
var Version = "dev"
