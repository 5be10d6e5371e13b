package common

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"vincit.fi/image-gallery/common/logger"
)

type StyleConfig struct {
	ControlsBackground string `yaml:"controls-background,omitempty"`
	ControlsColor      string `yaml:"controls-color,omitempty"`
	DotColor           string `yaml:"dot-color,omitempty"`
	DotActiveColor     string `yaml:"dot-active-color,omitempty"`
}

// Config is the optional gallery.yaml file.
type Config struct {
	Thumbnails     bool        `yaml:"thumbnails,omitempty"`
	ViewportWidth  int         `yaml:"viewport-width,omitempty"`
	ThumbnailWidth int         `yaml:"thumbnail-width,omitempty"`
	Style          StyleConfig `yaml:"style,omitempty"`
}

// LoadOptionalConfig reads the configuration if the file exists. A missing
// file is not an error.
func LoadOptionalConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug.Printf("No configuration file '%s', using defaults", path)
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.ViewportWidth < 0 || cfg.ThumbnailWidth < 0 {
		return nil, fmt.Errorf("failed to parse %s: widths must not be negative", path)
	}

	logger.Debug.Printf("Loaded configuration from '%s'", path)
	return &cfg, nil
}

// Merge overrides the file values with the command line flags that were
// given explicitly.
func (s *Config) Merge(params *Params) *Config {
	merged := *s
	if params.isExplicit("thumbs") {
		merged.Thumbnails = params.ShowThumbnails()
	}
	if params.isExplicit("viewportWidth") {
		merged.ViewportWidth = params.ViewportWidth()
	}
	if params.isExplicit("thumbnailWidth") {
		merged.ThumbnailWidth = params.ThumbnailWidth()
	}
	return &merged
}
