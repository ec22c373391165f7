package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/apkfetch/internal/adapters/fs"
	"go.trai.ch/apkfetch/internal/core/domain"
)

// emptyHash is XXH64 of no input. If this changes, digests already reported
// for downloaded artifacts are no longer comparable.
const emptyHash uint64 = 0xef46db3751d8e999

func TestHasher_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	h := fs.NewHasher()

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.apk")
		require.NoError(t, os.WriteFile(path, nil, domain.PrivateFilePerm))

		got, err := h.ComputeFileHash(path)
		require.NoError(t, err)
		assert.Equal(t, emptyHash, got)
	})

	t.Run("content", func(t *testing.T) {
		content := []byte("PK\x03\x04 not really an apk")
		path := filepath.Join(dir, "app.apk")
		require.NoError(t, os.WriteFile(path, content, domain.PrivateFilePerm))

		got, err := h.ComputeFileHash(path)
		require.NoError(t, err)
		assert.Equal(t, xxhash.Sum64(content), got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := h.ComputeFileHash(filepath.Join(dir, "missing.apk"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrFileOpenFailed.Error())
	})
}
