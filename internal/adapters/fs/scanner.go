// Package fs provides file system adapters for scanning the artifact inventory and hashing files.
package fs

import (
	"os"

	"go.trai.ch/apkfetch/internal/core/domain"
	"go.trai.ch/apkfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InventoryScanner = (*Scanner)(nil)

// Scanner builds the artifact inventory from a directory listing.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan lists dir without recursing and keeps, per package, the version that is
// greatest under string comparison. Entries that do not look like
// <package>-<version> are skipped.
func (s *Scanner) Scan(dir string) (domain.InventoryMap, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDirectoryAccess.Error()), "dir", dir)
	}

	inventory := make(domain.InventoryMap, len(entries))
	for _, entry := range entries {
		parsed, ok := domain.ParseArtifactName(entry.Name())
		if !ok {
			continue
		}
		inventory.Add(parsed)
	}

	return inventory, nil
}
