// Package config provides the configuration loader for attest.
package config

import (
	"net/url"
	"os"
	"path/filepath"

	"go.trai.ch/attest/internal/core/domain"
	"go.trai.ch/attest/internal/core/ports"
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

// Load returns the configuration from the nearest attest.yaml at or above cwd,
// or the defaults when there is none.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		return domain.DefaultConfig(), nil
	}

	var file Attestfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg, err := toDomain(&file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	l.Logger.Info("loaded configuration from " + configPath)
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findConfiguration
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to read config file")
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, "failed to parse config file")
	}
	return nil
}

func toDomain(file *Attestfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.Maven.Repository != "" {
		if err := ValidateRepositoryURL(file.Maven.Repository); err != nil {
			return nil, err
		}
		cfg.Repository = file.Maven.Repository
	}
	if file.Maven.AbsentToken != nil {
		cfg.AbsentToken = *file.Maven.AbsentToken
	}
	if file.Output.Format != "" {
		cfg.Format = file.Output.Format
	}
	if file.Output.Dedupe != nil {
		cfg.Dedupe = *file.Output.Dedupe
	}

	return cfg, nil
}

// ValidateRepositoryURL checks that raw is an absolute http or https URL.
func ValidateRepositoryURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return zerr.With(domain.ErrInvalidRepositoryURL, "repository", raw)
	}
	return nil
}
