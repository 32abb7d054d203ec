package types

import "strings"

const (
	// DefaultLogDir is the directory, relative to the storage root, that
	// receives log files.
	DefaultLogDir = "log"
	// DefaultLogLevel captures every level.
	DefaultLogLevel = "debug"
)

type LoggingConfig struct {
	Level          string `toml:"level" yaml:"level" validate:"required,oneof=trace debug info warn error fatal panic"`
	SkipFrameCount int    `toml:"skip_frame_count" yaml:"skip_frame_count" validate:"gte=0"`
	// RelLogFileDir is joined onto the storage root. It must stay relative.
	RelLogFileDir     string `toml:"log_dir" yaml:"log_dir" validate:"required"`
	LogFileMaxBackups int    `toml:"max_backups" yaml:"max_backups" validate:"gte=0"`
	LogFileMaxAgeDays int    `toml:"max_age_days" yaml:"max_age_days" validate:"gte=0"`
	// LogFileMaxSizeMB of zero lets lumberjack apply its own default.
	LogFileMaxSizeMB  int  `toml:"max_size_mb" yaml:"max_size_mb" validate:"gte=0"`
	LogFileCompress   bool `toml:"compress" yaml:"compress"`
	ConsoleNoColor    bool `toml:"console_no_color" yaml:"console_no_color"`
	ShutdownTimeoutMS int  `toml:"shutdown_timeout_ms" yaml:"shutdown_timeout_ms" validate:"gte=0"`
	// ShutdownTimeoutWarning logs a warning when Close gives up waiting.
	ShutdownTimeoutWarning bool `toml:"shutdown_timeout_warning" yaml:"shutdown_timeout_warning"`
}

// DefaultLoggingConfig returns the configuration used by the process-wide
// logger when nothing else has been supplied.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:                  DefaultLogLevel,
		RelLogFileDir:          DefaultLogDir,
		LogFileMaxBackups:      5,
		LogFileMaxAgeDays:      30,
		LogFileMaxSizeMB:       50,
		ConsoleNoColor:         true,
		ShutdownTimeoutMS:      500,
		ShutdownTimeoutWarning: true,
	}
}

// NormalizeLevel trims and lower-cases level and folds the "warning" alias
// into "warn", the spelling the validator and zerolog accept.
func NormalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return "warn"
	}
	return level
}
