// Package config loads the optional .story.yaml project file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory.
const DefaultFile = ".story.yaml"

type Config struct {
	// Features is the directory holding *.feature files.
	Features string `yaml:"features"`
	// Database is the sqlite file recording run history.
	Database string `yaml:"database"`
	// History turns run recording on or off.
	History bool `yaml:"history"`
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Features: "features",
		Database: "features/story.db",
		History:  true,
	}
}

// Load reads path over the defaults. A missing file yields the defaults;
// unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Features == "" {
		return Default(), fmt.Errorf("parsing %s: features must not be empty", path)
	}
	if cfg.History && cfg.Database == "" {
		return Default(), fmt.Errorf("parsing %s: database must be set when history is enabled", path)
	}
	return cfg, nil
}
