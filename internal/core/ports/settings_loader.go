package ports

import "go.trai.ch/ess/internal/core/domain"

// SettingsLoader reads the static pipeline configuration.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings for the given working directory. A missing
	// settings file yields the defaults, not an error.
	Load(cwd string) (domain.Settings, error)
}
