package ports

import "go.trai.ch/planner/internal/core/domain"

// ConfigLoader defines the interface for loading the planner settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches for the config file from cwd upwards and returns the resulting settings.
	// A missing file yields the default settings.
	Load(cwd string) (domain.Settings, error)

	// LoadFile reads the settings from an explicit path. The file must exist.
	LoadFile(path string) (domain.Settings, error)
}
