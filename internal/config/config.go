package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"

	// Music service API (falls back to built-in fixtures when empty)
	API APIConfig `koanf:"api"`

	// Persistent state storage
	Storage StorageConfig `koanf:"storage"`
}

// APIConfig holds music service connection settings.
type APIConfig struct {
	URL string `koanf:"url"` // e.g., "http://localhost:5000/api"
}

// StorageConfig holds playback state persistence settings.
type StorageConfig struct {
	Backend string `koanf:"backend"` // "sqlite" or "bolt" (default: "sqlite")
	Path    string `koanf:"path"`    // database file path (default: XDG data dir)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Normalize API URL (remove trailing slash)
	cfg.API.URL = strings.TrimSuffix(cfg.API.URL, "/")

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "sqlite"
	}
	switch cfg.Storage.Backend {
	case "sqlite", "bolt":
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want sqlite or bolt)", cfg.Storage.Backend)
	}

	// Expand ~ in storage path
	if cfg.Storage.Path != "" {
		cfg.Storage.Path = expandPath(cfg.Storage.Path)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/mymusic/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mymusic", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasAPIConfig returns true if a music service API is configured.
func (c *Config) HasAPIConfig() bool {
	return c.API.URL != ""
}
