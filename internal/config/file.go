package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/tmux-popup-select/internal/search"
	"github.com/pelletier/go-toml/v2"
)

const defaultConfigName = "config.toml"

// fileConfig is the on-disk layout of the override file.
type fileConfig struct {
	Search search.Overrides `toml:"search"`
}

// DefaultConfigPath returns the per-user override file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tmux-popup-select", defaultConfigName)
}

// LoadOverrides reads search field overrides from path. An empty path
// tries DefaultConfigPath and tolerates its absence; an explicit path must
// exist. A file without a [search] table yields nil.
func LoadOverrides(path string) (*search.Overrides, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
		if path == "" {
			return nil, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.Search.Empty() {
		return nil, nil
	}
	return &fc.Search, nil
}
