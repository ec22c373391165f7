package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/apkfetch/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/apkfetch/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/apkfetch/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/apkfetch/internal/adapters/receipts"  //nolint:depguard // Wired in app layer
	"go.trai.ch/apkfetch/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/apkfetch/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/apkfetch/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ScannerNodeID,
			store.NodeID,
			fs.HasherNodeID,
			receipts.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.InventoryScanner](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.StoreClientFactory](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	receiptStore, err := graft.Dep[ports.ReceiptStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, scanner, stores, hasher, receiptStore, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
