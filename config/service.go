package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/Station-Manager/agenttools/types"
	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Service struct {
	// WorkDir is searched for a config file when FilePath is empty.
	WorkDir string
	// FilePath names an explicit config file. It must exist.
	FilePath  string
	AppConfig types.AppConfig

	mu          sync.RWMutex
	initialized bool
	source      string
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FromAppConfig returns an initialized Service wrapping cfg. Use it when the
// configuration is built in code rather than loaded.
func FromAppConfig(cfg types.AppConfig) (*Service, error) {
	const op errors.Op = "config.FromAppConfig"
	if err := validateAppConfig(&cfg); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return &Service{AppConfig: cfg, initialized: true}, nil
}

// Initialize loads defaults, the config file (if any) and environment
// overrides, then validates the result. Calling it again reloads.
func (s *Service) Initialize() error {
	const op errors.Op = "config.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	cfg := types.AppConfig{
		Storage: types.StorageConfig{Root: DefaultStoragePath()},
		Logging: types.DefaultLoggingConfig(),
	}

	path, err := s.locateFile()
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgReadFile)
	}
	if path != emptyString {
		if err = decodeFile(path, &cfg); err != nil {
			return errors.New(op).Err(err).Msg(errMsgLoadFile)
		}
	}

	applyEnvOverrides(&cfg)

	if err = validateAppConfig(&cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	s.mu.Lock()
	s.AppConfig = cfg
	s.source = path
	s.initialized = true
	s.mu.Unlock()
	return nil
}

// LoggingConfig returns a copy of the logging section.
func (s *Service) LoggingConfig() types.LoggingConfig {
	if s == nil {
		return types.DefaultLoggingConfig()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.AppConfig.Logging
}

// StoragePath returns the configured storage root.
func (s *Service) StoragePath() string {
	if s == nil {
		return DefaultStoragePath()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.AppConfig.Storage.Root == emptyString {
		return DefaultStoragePath()
	}
	return s.AppConfig.Storage.Root
}

// SetStoragePath overrides the storage root, typically from a command-line
// flag. An empty path is ignored.
func (s *Service) SetStoragePath(path string) {
	if s == nil || path == emptyString {
		return
	}
	s.mu.Lock()
	s.AppConfig.Storage.Root = path
	s.mu.Unlock()
}

// Source returns the config file that was loaded, or "" when only defaults
// and the environment were used.
func (s *Service) Source() string {
	if s == nil {
		return emptyString
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Encode writes the effective configuration as TOML.
func (s *Service) Encode(w io.Writer) error {
	const op errors.Op = "config.Service.Encode"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return errors.New(op).Msg(errMsgNotInitialized)
	}
	if err := toml.NewEncoder(w).Encode(s.AppConfig); err != nil {
		return errors.New(op).Err(err).Msg(errMsgEncode)
	}
	return nil
}

// DefaultStoragePath is the per-user cache directory for this application,
// falling back to the system temp directory when no cache dir is known.
func DefaultStoragePath() string {
	base, err := os.UserCacheDir()
	if err != nil || base == emptyString {
		base = os.TempDir()
	}
	return filepath.Join(base, appDirName)
}

func (s *Service) locateFile() (string, error) {
	if s.FilePath != emptyString {
		if _, err := os.Stat(s.FilePath); err != nil {
			return emptyString, err
		}
		return s.FilePath, nil
	}
	if s.WorkDir == emptyString {
		return emptyString, nil
	}
	for _, name := range configFileNames {
		p := filepath.Join(s.WorkDir, name)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, nil
		}
	}
	return emptyString, nil
}

func decodeFile(path string, cfg *types.AppConfig) error {
	const op errors.Op = "config.decodeFile"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return errors.New(op).Err(err).Msg(errMsgParseFile)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.New(op).Err(err).Msg(errMsgReadFile)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return errors.New(op).Err(err).Msg(errMsgParseFile)
		}
	default:
		return errors.New(op).Msg(errMsgUnknownFormat)
	}
	return nil
}

func applyEnvOverrides(cfg *types.AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvStoragePath)); v != emptyString {
		cfg.Storage.Root = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != emptyString {
		cfg.Logging.Level = v
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvLogNoColor))); err == nil {
		cfg.Logging.ConsoleNoColor = v
	}
}

func validateAppConfig(cfg *types.AppConfig) error {
	const op errors.Op = "config.validateAppConfig"
	cfg.Logging.Level = types.NormalizeLevel(cfg.Logging.Level)
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return nil
}
