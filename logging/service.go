package logging

import (
	"io"
	"sync"
	"time"

	"github.com/Station-Manager/agenttools/config"
	"github.com/Station-Manager/agenttools/types"
	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Service owns one logger configuration. The zero value is usable and
// discards everything until EnableFileAndConsole or EnableConsoleOnly
// succeeds.
type Service struct {
	// ConfigService supplies the storage root and logging settings. Optional.
	ConfigService *config.Service
	// StorageRoot overrides ConfigService.StoragePath().
	StorageRoot string
	// LoggingConfig overrides ConfigService.LoggingConfig().
	LoggingConfig *types.LoggingConfig
	// Capabilities overrides DetectCapabilities().
	Capabilities *Capabilities
	// ConsoleOut is the console sink. Defaults to os.Stderr.
	ConsoleOut io.Writer

	// now stamps log file names. Defaults to time.Now.
	now func() time.Time

	mu            sync.RWMutex
	logger        atomic.Pointer[zerolog.Logger]
	isInitialized atomic.Bool
	cfg           types.LoggingConfig
	fileWriter    *fileSink
	logFilePath   string

	activeOps atomic.Int32
}

func NewService() *Service {
	return &Service{}
}

// EnableFileAndConsole routes every level to the console and to a new
// <storage root>/log/log_<YYYYMMDD_HHMMSS>.log file. On hosts without file
// logging support it returns nil and configures nothing.
//
// A *StorageError is returned untouched when the directory or file cannot be
// created; the previous configuration then stays in place.
func (s *Service) EnableFileAndConsole() error {
	const op errors.Op = "logging.Service.EnableFileAndConsole"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}
	if !s.capabilities().SupportsFileLogging {
		return nil
	}

	cfg, err := s.resolveConfig()
	if err != nil {
		return err
	}

	fileWriter, path, err := s.openLogFile(s.storageRoot(), cfg)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg, s.initializeWriters(cfg, fileWriter))
	if err != nil {
		_ = fileWriter.Close()
		return errors.New(op).Err(err).Msg(errMsgLevel)
	}

	s.install(logger, cfg, fileWriter, path)
	return nil
}

// EnableConsoleOnly routes every level to the console. It never touches the
// filesystem and behaves the same on every host.
func (s *Service) EnableConsoleOnly() error {
	const op errors.Op = "logging.Service.EnableConsoleOnly"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	cfg, err := s.resolveConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg, s.initializeWriters(cfg, nil))
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgLevel)
	}

	s.install(logger, cfg, nil, emptyString)
	return nil
}

// Logger returns the shared handle. It stays valid across reconfiguration.
func (s *Service) Logger() Logger {
	if s == nil {
		return &noopLogger{}
	}
	return s
}

// LogFilePath is the file currently receiving logs, or "" when there is none.
func (s *Service) LogFilePath() string {
	if s == nil {
		return emptyString
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logFilePath
}

// Close waits for in-flight events (bounded by ShutdownTimeoutMS), then
// releases the file sink. It is safe to call more than once.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	if !s.isInitialized.Load() {
		s.mu.Unlock()
		return nil
	}
	s.isInitialized.Store(false)
	cfg := s.cfg
	logger := s.logger.Load()
	s.mu.Unlock()

	if !s.waitForActive(shutdownTimeout(cfg)) && cfg.ShutdownTimeoutWarning && logger != nil {
		logger.Warn().
			Int32("active_operations", s.activeOps.Load()).
			Int("timeout_ms", cfg.ShutdownTimeoutMS).
			Msg("Logger shutdown timeout exceeded")
	}

	s.mu.Lock()
	fileWriter := s.fileWriter
	s.fileWriter = nil
	s.logFilePath = emptyString
	s.logger.Store(nil)
	s.mu.Unlock()

	if fileWriter != nil {
		return fileWriter.Close()
	}
	return nil
}

func (s *Service) DebugWith() LogEvent { return s.newEvent(zerolog.DebugLevel, nil) }
func (s *Service) InfoWith() LogEvent  { return s.newEvent(zerolog.InfoLevel, nil) }
func (s *Service) WarnWith() LogEvent  { return s.newEvent(zerolog.WarnLevel, nil) }
func (s *Service) ErrorWith() LogEvent { return s.newEvent(zerolog.ErrorLevel, nil) }
func (s *Service) FatalWith() LogEvent { return s.newEvent(zerolog.FatalLevel, nil) }

// With returns a LogContext for creating a child logger with pre-populated fields.
func (s *Service) With() LogContext {
	if s == nil {
		return &noopLogContext{}
	}
	return &logContext{service: s}
}

// newEvent starts a tracked event. derive, when set, turns the current root
// logger into a child logger first. Close waits for tracked events.
func (s *Service) newEvent(level zerolog.Level, derive func(*zerolog.Logger) *zerolog.Logger) LogEvent {
	if s == nil || !s.isInitialized.Load() {
		return newLogEvent(nil, nil)
	}

	s.mu.RLock()
	if !s.isInitialized.Load() {
		s.mu.RUnlock()
		return newLogEvent(nil, nil)
	}
	logger := s.logger.Load()
	if logger == nil || logger.GetLevel() > level {
		s.mu.RUnlock()
		return newLogEvent(nil, nil)
	}
	s.activeOps.Inc()
	s.mu.RUnlock()

	if derive != nil {
		logger = derive(logger)
	}

	event := levelEvent(logger, level)
	if event == nil {
		s.release()
		return newLogEvent(nil, nil)
	}
	return newLogEvent(event, s.release)
}

func (s *Service) release() {
	s.activeOps.Dec()
}

// install swaps in a new logger. The previous file sink is closed once
// in-flight events drain or the shutdown timeout passes.
func (s *Service) install(logger zerolog.Logger, cfg types.LoggingConfig, fileWriter *fileSink, path string) {
	s.mu.Lock()
	previous := s.fileWriter
	s.logger.Store(&logger)
	s.cfg = cfg
	s.fileWriter = fileWriter
	s.logFilePath = path
	s.isInitialized.Store(true)
	s.mu.Unlock()

	if previous != nil && previous != fileWriter {
		s.waitForActive(shutdownTimeout(cfg))
		_ = previous.Close()
	}
}

// waitForActive reports whether all tracked events finished within timeout.
func (s *Service) waitForActive(timeout time.Duration) bool {
	if s.activeOps.Load() <= 0 {
		return true
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	tick := time.NewTicker(drainPollInterval)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			if s.activeOps.Load() <= 0 {
				return true
			}
		case <-deadline.C:
			return s.activeOps.Load() <= 0
		}
	}
}

func (s *Service) resolveConfig() (types.LoggingConfig, error) {
	var cfg types.LoggingConfig
	switch {
	case s.LoggingConfig != nil:
		cfg = *s.LoggingConfig
	case s.ConfigService != nil:
		cfg = s.ConfigService.LoggingConfig()
	default:
		cfg = types.DefaultLoggingConfig()
	}
	if err := validateConfig(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s *Service) storageRoot() string {
	if s.StorageRoot != emptyString {
		return s.StorageRoot
	}
	return s.ConfigService.StoragePath()
}

func (s *Service) capabilities() Capabilities {
	if s.Capabilities != nil {
		return *s.Capabilities
	}
	return DetectCapabilities()
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func buildLogger(cfg types.LoggingConfig, writers []io.Writer) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	logger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.SkipFrameCount > 0 {
		logger = logger.With().CallerWithSkipFrameCount(cfg.SkipFrameCount).Logger()
	}
	return logger, nil
}

func shutdownTimeout(cfg types.LoggingConfig) time.Duration {
	return time.Duration(cfg.ShutdownTimeoutMS) * time.Millisecond
}
