package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/go-envinspect/internal/logging"
)

// Load reads and parses a configuration file from the given path. A missing
// file is not an error: the defaults are returned instead.
func Load(path string, logger *logrus.Logger) (*Config, error) {
	log := logging.WithStandardFields(logger, nil, logging.ComponentNames.Config).
		WithField(logging.StandardFields.FilePath, path)

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("No configuration file found, using defaults")
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	cfg, err := LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithField("profiles", len(cfg.Required)).Debug("Configuration loaded")
	return cfg, nil
}

// LoadFromReader parses and validates configuration from an io.Reader.
// Unknown fields are rejected.
func LoadFromReader(reader io.Reader) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
