// Package config loads the TOML configuration. A config.toml in the
// working directory overrides ~/.config/halftone/config.toml; both are
// optional.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultFolder string `koanf:"default_folder"` // folder opened on start; empty means cwd
	Icons         string `koanf:"icons"`          // "nerd", "unicode", or "none"

	Viewer ViewerConfig `koanf:"viewer"`
}

// ViewerConfig holds image rendering configuration.
type ViewerConfig struct {
	Upscale  bool   `koanf:"upscale"`  // stretch small images to fill the panel
	Filter   string `koanf:"filter"`   // resize filter name (default: "lanczos3")
	Frame    bool   `koanf:"frame"`    // draw a border around the image
	Protocol string `koanf:"protocol"` // "kitty", "halfblocks", or empty for auto-detect
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Home config first so the local file wins for keys both set.
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "halftone", "config.toml"))
	}
	candidates = append(candidates, "config.toml")

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.DefaultFolder = expandHome(cfg.DefaultFolder)

	return cfg, nil
}

// expandHome rewrites a leading ~ to the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// GetViewerConfig returns the viewer configuration with defaults
// applied.
func (c *Config) GetViewerConfig() ViewerConfig {
	cfg := c.Viewer
	if cfg.Filter == "" {
		cfg.Filter = "lanczos3"
	}
	return cfg
}
