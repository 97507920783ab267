package ports

import "go.trai.ch/attest/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at the given working directory.
	// It returns the defaults when no configuration file exists.
	Load(cwd string) (*domain.Config, error)
}
