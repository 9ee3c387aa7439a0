package domain

import "go.trai.ch/zerr"

var (
	// ErrAssetNotFound is returned when no candidate location holds a
	// referenced asset.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrSassCompileFailed is returned when the external Sass compiler
	// reports diagnostics instead of producing output.
	ErrSassCompileFailed = zerr.New("sass compilation failed")

	// ErrSassCompilerMissing is returned when the Sass compiler executable
	// cannot be located.
	ErrSassCompilerMissing = zerr.New("sass compiler not found")

	// ErrInvalidInlineMode is returned when a settings file names an unknown
	// image inlining mode.
	ErrInvalidInlineMode = zerr.New("invalid image inlining mode, expected 'disabled', 'linked' or 'all'")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrStateReadFailed is returned when the incremental state store cannot
	// be read.
	ErrStateReadFailed = zerr.New("failed to read pipeline state")

	// ErrStateWriteFailed is returned when the incremental state store cannot
	// be written.
	ErrStateWriteFailed = zerr.New("failed to write pipeline state")

	// ErrOutputWriteFailed is returned when an emitted asset cannot be
	// written to disk.
	ErrOutputWriteFailed = zerr.New("failed to write output asset")

	// ErrPipelineFailed is returned when at least one input's pipeline
	// aborted.
	ErrPipelineFailed = zerr.New("pipeline execution failed")
)
