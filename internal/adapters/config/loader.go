// Package config provides the settings loader for ess.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up in the working directory.
const DefaultFilename = "essfile.yaml"

// FileSettingsLoader implements ports.SettingsLoader using a YAML file.
type FileSettingsLoader struct {
	Filename string
}

// Load reads the settings from the given working directory. A missing file
// yields domain.DefaultSettings.
func (l *FileSettingsLoader) Load(cwd string) (domain.Settings, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, name)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, zerr.Wrap(domain.ErrSettingsReadFailed, err.Error())
	}
	return parse(data)
}

func parse(data []byte) (domain.Settings, error) {
	var file Essfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.Wrap(domain.ErrSettingsParseFailed, err.Error())
	}

	settings := domain.DefaultSettings()
	if file.Root != "" {
		settings.Root = file.Root
	}
	settings.OutputDir = file.OutputDir
	settings.SearchPaths = file.SearchPaths
	settings.Verbose = file.Verbose

	if file.Sass != nil {
		if file.Sass.Compile != nil {
			settings.CompileSass = *file.Sass.Compile
		}
		if file.Sass.Style != "" {
			settings.SassStyle = file.Sass.Style
		}
	}
	if file.PruneCss != nil {
		settings.PruneCss = *file.PruneCss
	}
	if file.OptimizeSvg != nil {
		settings.OptimizeSvg = *file.OptimizeSvg
	}

	mode, err := domain.ParseInlineMode(file.InlineImages)
	if err != nil {
		return domain.Settings{}, err
	}
	settings.ImageInlining = mode

	return settings, nil
}
