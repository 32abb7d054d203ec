package logging

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/Station-Manager/agenttools/types"
	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *types.LoggingConfig) error {
	const op errors.Op = "logging.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgConfigInvalid)
	}

	cfg.Level = types.NormalizeLevel(cfg.Level)

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	if !isContainedRelPath(cfg.RelLogFileDir) {
		return errors.New(op).Msg(errMsgRelLogDir)
	}

	return nil
}

// isContainedRelPath reports whether p is relative and stays below its base
// once cleaned.
func isContainedRelPath(p string) bool {
	if p == emptyString || filepath.IsAbs(p) || filepath.VolumeName(p) != emptyString {
		return false
	}
	clean := filepath.Clean(p)
	return clean != ".." && !strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
