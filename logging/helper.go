package logging

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// parseLevel parses a string log level into a zerolog.Level.
// "warning" is accepted as an alias for "warn".
func parseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = zerolog.LevelWarnValue
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, err
	}
	return l, nil
}

// buildErrorChain walks an error's cause chain and returns:
//   - chain: outermost -> innermost error messages
//   - ops: operation identifiers for DetailedError links ("" if not available)
//   - root: the innermost error message
//   - rootOp: the innermost operation identifier if available
//
// DetailedError.Cause() is preferred over errors.Unwrap. Depth is bounded and
// repeated messages stop the walk.
func buildErrorChain(err error) (chain []string, ops []string, root string, rootOp string) {
	const maxDepth = 50
	seen := map[string]bool{}

	for depth := 0; err != nil && depth < maxDepth; depth++ {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			ops = append(ops, string(dErr.Op()))
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		ops = append(ops, emptyString)
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
		rootOp = ops[len(ops)-1]
	}
	return
}

// enrichError adds <prefix>_chain, _root, _history, _ops and _root_op fields.
func enrichError(e *zerolog.Event, prefix string, err error) {
	if e == nil || err == nil {
		return
	}
	chain, ops, root, rootOp := buildErrorChain(err)
	if len(chain) == 0 {
		return
	}
	e.Strs(prefix+"_chain", chain)
	e.Str(prefix+"_root", root)
	e.Str(prefix+"_history", strings.Join(chain, " -> "))
	e.Strs(prefix+"_ops", ops)
	if rootOp != emptyString {
		e.Str(prefix+"_root_op", rootOp)
	}
}

// levelEvent starts an event on l at level. It returns nil for levels the
// Logger interface does not expose.
func levelEvent(l *zerolog.Logger, level zerolog.Level) *zerolog.Event {
	switch level {
	case zerolog.TraceLevel:
		return l.Trace()
	case zerolog.DebugLevel:
		return l.Debug()
	case zerolog.InfoLevel:
		return l.Info()
	case zerolog.WarnLevel:
		return l.Warn()
	case zerolog.ErrorLevel:
		return l.Error()
	case zerolog.FatalLevel:
		return l.Fatal()
	default:
		return nil
	}
}
