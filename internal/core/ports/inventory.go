package ports

import "go.trai.ch/apkfetch/internal/core/domain"

// InventoryScanner builds the map of previously downloaded artifact versions.
//
//go:generate go run go.uber.org/mock/mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type InventoryScanner interface {
	// Scan lists dir and returns the highest version found per package.
	Scan(dir string) (domain.InventoryMap, error)
}
