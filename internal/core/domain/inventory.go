package domain

import (
	"math/big"
	"strings"

	"go.trai.ch/zerr"
)

// VersionEntry is a (package, version) pair parsed from an artifact filename.
type VersionEntry struct {
	PackageName string
	Version     string
}

// ParseArtifactName splits a filename of the form <package>-<version>.apk.
// Every occurrence of the artifact extension is removed before splitting, and
// only the first two hyphen separated segments are used. It reports false when
// the name has fewer than two segments.
func ParseArtifactName(name string) (VersionEntry, bool) {
	stripped := strings.ReplaceAll(name, ArtifactExt, "")
	segments := strings.Split(stripped, VersionSeparator)
	if len(segments) < 2 {
		return VersionEntry{}, false
	}
	return VersionEntry{PackageName: segments[0], Version: segments[1]}, true
}

// InventoryMap maps a package name to the highest version found on disk.
type InventoryMap map[string]string

// Add records the entry, keeping the version that is greater under plain string
// comparison. "9" is kept over "10".
func (m InventoryMap) Add(entry VersionEntry) {
	current, ok := m[entry.PackageName]
	if !ok || entry.Version > current {
		m[entry.PackageName] = entry.Version
	}
}

// LocalVersion returns the stored version of pkg parsed as a base-10 integer of
// any length. Surrounding whitespace and a leading sign are accepted. ok is false
// when the package is unknown; a non-numeric version yields ErrVersionNotNumeric.
func (m InventoryMap) LocalVersion(pkg string) (version *big.Int, ok bool, err error) {
	raw, found := m[pkg]
	if !found {
		return nil, false, nil
	}
	version, parsed := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !parsed {
		return nil, false, zerr.With(zerr.With(ErrVersionNotNumeric, "package", pkg), "version", raw)
	}
	return version, true, nil
}

// IsUpToDate reports whether the inventory already holds a version of pkg that is
// numerically greater than or equal to remote. Unknown packages and versions that
// do not parse as integers are never up to date.
func (m InventoryMap) IsUpToDate(pkg string, remote int64) bool {
	local, ok, err := m.LocalVersion(pkg)
	if err != nil || !ok {
		return false
	}
	return local.Cmp(big.NewInt(remote)) >= 0
}
