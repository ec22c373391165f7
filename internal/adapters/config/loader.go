// Package config provides the configuration loader for apkfetch.
package config

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"time"

	"go.trai.ch/apkfetch/internal/core/domain"
	"go.trai.ch/apkfetch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at configPath and merges it over the defaults.
// A missing file is not an error.
func (l *Loader) Load(configPath string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	var file File
	found, err := readAndUnmarshalYAML(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if !found {
		return cfg, nil
	}

	if err := l.apply(cfg, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return cfg, nil
}

func (l *Loader) apply(cfg *domain.Config, file *File) error {
	if file.InventoryDir != "" {
		cfg.InventoryDir = file.InventoryDir
	}

	if file.Store.BaseURL != "" {
		u, err := url.Parse(file.Store.BaseURL)
		if err != nil || u.Host == "" {
			return zerr.With(domain.ErrInvalidConfig, "store.base_url", file.Store.BaseURL)
		}
		if u.Scheme == "http" {
			l.Logger.Warn("store.base_url uses plain http, credentials are sent unencrypted", "base_url", file.Store.BaseURL)
		}
		cfg.Store.BaseURL = file.Store.BaseURL
	}

	if file.Store.UserAgent != "" {
		cfg.Store.UserAgent = file.Store.UserAgent
	}

	if file.Store.Progress != nil {
		cfg.Store.Progress = *file.Store.Progress
	}

	timeout, err := parseDuration("store.timeout", file.Store.Timeout, cfg.Store.Timeout)
	if err != nil {
		return err
	}
	cfg.Store.Timeout = timeout

	cooldown, err := parseDuration("download.cooldown", file.Download.Cooldown, cfg.Download.Cooldown)
	if err != nil {
		return err
	}
	cfg.Download.Cooldown = cooldown

	return nil
}

// parseDuration parses a non-negative duration, returning fallback for an empty value.
func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), key, value)
	}
	if d < 0 {
		return 0, zerr.With(domain.ErrInvalidConfig, key, value)
	}

	return d, nil
}

// readAndUnmarshalYAML decodes the file at configPath into target. It reports
// false without an error when the file does not exist.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath is chosen by the user on the command line
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return false, zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return true, nil
}
