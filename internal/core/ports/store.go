package ports

import (
	"context"

	"go.trai.ch/apkfetch/internal/core/domain"
)

// StoreClient is the capability the orchestrator needs from the remote application store.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StoreClient interface {
	// AppDetails fetches the current metadata for pkg.
	AppDetails(ctx context.Context, pkg string) (*domain.AppDetails, error)

	// Download writes the artifact for pkg to dest.
	Download(ctx context.Context, pkg string, dest string) error
}

// StoreClientFactory builds authenticated store clients.
type StoreClientFactory interface {
	// New loads the credentials at credentialsPath and returns a client using them.
	New(credentialsPath string, cfg domain.StoreConfig) (StoreClient, error)
}
