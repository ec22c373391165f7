package store

import (
	"go.trai.ch/apkfetch/internal/core/domain"
	"go.trai.ch/apkfetch/internal/core/ports"
)

var _ ports.StoreClientFactory = (*Factory)(nil)

// Factory builds Clients from a credentials file.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New loads the credentials at credentialsPath and returns a Client using them.
func (f *Factory) New(credentialsPath string, cfg domain.StoreConfig) (ports.StoreClient, error) {
	creds, err := LoadCredentials(credentialsPath)
	if err != nil {
		return nil, err
	}
	return NewClient(*creds, cfg), nil
}
