package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs msg followed by alternating key/value attrs, as log/slog does.
	Info(msg string, attrs ...any)
	// Warn logs msg as a warning with the same attrs convention as Info.
	Warn(msg string, attrs ...any)
	// Error logs err with its full cause chain.
	Error(err error)
}
