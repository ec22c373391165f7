// Package receipts stores one JSON receipt per downloaded package.
package receipts

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/apkfetch/internal/core/domain"
	"go.trai.ch/apkfetch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReceiptStore = (*Store)(nil)

// Store implements ports.ReceiptStore using a file-per-package strategy below
// <dir>/.receipts.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Put stores the receipt in dir.
func (s *Store) Put(dir string, receipt domain.Receipt) error {
	data, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReceiptMarshalFailed.Error())
	}

	filename := Filename(dir, receipt.PackageName)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrReceiptCreateFailed.Error())
	}

	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReceiptWriteFailed.Error()), "path", filename)
	}

	return nil
}

// Filename returns where the receipt of pkg is kept in dir. The package name is
// hashed so any name maps to a safe file.
func Filename(dir, pkg string) string {
	hash := sha256.Sum256([]byte(pkg))
	return filepath.Join(dir, domain.ReceiptDirName, hex.EncodeToString(hash[:])+".json")
}
