// Package build holds build-time information.
package build

// Version, Commit and Date default to placeholders and are overwritten by linker
// flags, e.g. -ldflags "-X go.trai.ch/apkfetch/internal/build.Version=1.2.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
