// logger.go
// Package pollforecast provides shared utilities for the go_poll_forecast package.
package pollforecast

import (
	"github.com/baditaflorin/go_poll_forecast/internal/adapters/logger"
	"github.com/baditaflorin/go_poll_forecast/internal/ports"
)

// createDefaultLogger creates and returns a default logger instance.
func createDefaultLogger() (ports.Logger, error) {
	return logger.NewStdLogger()
}
