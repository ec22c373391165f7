package domain

import (
	"fmt"
	"regexp"
)

// RE2's \s omits the vertical tab, so it is listed on its own.
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.\-\s\v]`)

// SanitizeFilename replaces every character outside [A-Za-z0-9_.-] and ASCII
// whitespace with "_".
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// ArtifactFileName returns the sanitized filename an artifact is saved under.
func ArtifactFileName(pkg string, versionCode int64) string {
	return SanitizeFilename(fmt.Sprintf("%s%s%d%s", pkg, VersionSeparator, versionCode, ArtifactExt))
}
