package ports

import "go.trai.ch/apkfetch/internal/core/domain"

// ReceiptStore records completed downloads.
//
//go:generate go run go.uber.org/mock/mockgen -source=receipts.go -destination=mocks/mock_receipts.go -package=mocks
type ReceiptStore interface {
	// Put stores the receipt in dir, replacing an earlier one for the same package.
	Put(dir string, receipt domain.Receipt) error
}
