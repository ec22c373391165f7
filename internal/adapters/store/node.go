package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkfetch/internal/core/ports"
)

// NodeID is the unique identifier for the store client factory Graft node.
const NodeID graft.ID = "adapter.store_client_factory"

func init() {
	graft.Register(graft.Node[ports.StoreClientFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StoreClientFactory, error) {
			return NewFactory(), nil
		},
	})
}
