package config

// File represents the structure of the apkfetch.yaml configuration file.
type File struct {
	InventoryDir string      `yaml:"inventory_dir"`
	Store        StoreDTO    `yaml:"store"`
	Download     DownloadDTO `yaml:"download"`
}

// StoreDTO represents the store gateway section.
type StoreDTO struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
	Timeout   string `yaml:"timeout"`
	Progress  *bool  `yaml:"progress"`
}

// DownloadDTO represents the download section.
type DownloadDTO struct {
	Cooldown string `yaml:"cooldown"`
}
