package ports

// Hasher defines the interface for computing artifact digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash computes the digest of the file content at path.
	ComputeFileHash(path string) (uint64, error)
}
