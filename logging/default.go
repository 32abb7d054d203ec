package logging

import (
	"go.uber.org/atomic"
)

var defaultService atomic.Pointer[Service]

func init() {
	defaultService.Store(NewService())
}

// Default returns the process-wide Service.
func Default() *Service {
	return defaultService.Load()
}

// SetDefault replaces the process-wide Service, typically with one built and
// configured explicitly at startup. Handles obtained earlier from GetLogger
// keep pointing at the previous Service. A nil s is ignored.
func SetDefault(s *Service) {
	if s == nil {
		return
	}
	defaultService.Store(s)
}

// EnableFileAndConsoleLogging configures the process-wide logger for console
// and file output. See Service.EnableFileAndConsole.
func EnableFileAndConsoleLogging() error {
	return Default().EnableFileAndConsole()
}

// EnableConsoleOnlyLogging configures the process-wide logger for console
// output only. See Service.EnableConsoleOnly.
func EnableConsoleOnlyLogging() error {
	return Default().EnableConsoleOnly()
}

// GetLogger returns the process-wide logger handle.
func GetLogger() Logger {
	return Default().Logger()
}
