// Package logger builds configured slog.Logger instances with sensible
// defaults for library consumers: JSON output at info level for production,
// text output at debug level for development.
//
// # Usage
//
//	log := logger.New(logger.WithDevelopment("recordkit"))
//	log.Info("catalog loaded", "languages", langs)
package logger
