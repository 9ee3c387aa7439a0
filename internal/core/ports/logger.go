// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Debug(msg string)
	Error(err error)

	// WithAsset returns a logger whose messages are attributed to the given
	// asset id.
	WithAsset(id string) Logger
}
