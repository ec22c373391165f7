package domain

import "time"

const (
	// DefaultStoreBaseURL is the gateway used when the config does not name one.
	DefaultStoreBaseURL = "https://android.clients.google.com/fdfe"

	// DefaultUserAgent is sent with every store request.
	DefaultUserAgent = "apkfetch/1.0"

	// DefaultStoreTimeout bounds the wait for the store's response headers. It
	// does not limit how long an artifact body may take to stream.
	DefaultStoreTimeout = time.Minute

	// DefaultCooldown is the pause observed after a failed download.
	DefaultCooldown = 10 * time.Second
)

// Config is the resolved runtime configuration.
type Config struct {
	InventoryDir string
	Store        StoreConfig
	Download     DownloadConfig
}

// StoreConfig configures the store gateway.
type StoreConfig struct {
	BaseURL   string
	UserAgent string
	// Timeout bounds the wait for response headers, not the body transfer.
	Timeout time.Duration
	// Progress enables the transfer progress bar.
	Progress bool
}

// DownloadConfig configures the download step.
type DownloadConfig struct {
	Cooldown time.Duration
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		InventoryDir: DefaultInventoryDir,
		Store: StoreConfig{
			BaseURL:   DefaultStoreBaseURL,
			UserAgent: DefaultUserAgent,
			Timeout:   DefaultStoreTimeout,
			Progress:  true,
		},
		Download: DownloadConfig{
			Cooldown: DefaultCooldown,
		},
	}
}
