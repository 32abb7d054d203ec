package tools

import (
	"context"
	stderrs "errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Station-Manager/agenttools/logging"
	"github.com/google/uuid"
)

var (
	ErrToolNotFound  = stderrs.New("tool not found")
	ErrDuplicateTool = stderrs.New("tool already registered")
	ErrInvalidTool   = stderrs.New("tool is nil or unnamed")
)

// Result describes one completed invocation.
type Result struct {
	CallID  string
	Tool    string
	Output  string
	Elapsed time.Duration
}

type Registry struct {
	logger logging.Logger
	newID  func() string

	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry returns an empty registry that reports invocations to logger.
// A nil logger discards them.
func NewRegistry(logger logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NewService().Logger()
	}
	return &Registry{
		logger: logger,
		newID:  uuid.NewString,
		tools:  make(map[string]Tool),
	}
}

func (r *Registry) Register(t Tool) error {
	if t == nil || strings.TrimSpace(t.Name()) == "" {
		return ErrInvalidTool
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[t.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name())
	}
	r.tools[t.Name()] = t
	return nil
}

func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns the registered tools ordered by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	list := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		list = append(list, t)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// Invoke runs the named tool with input. Every call gets a fresh call ID that
// tags its log lines and the returned Result.
func (r *Registry) Invoke(ctx context.Context, name, input string) (Result, error) {
	res := Result{CallID: r.newID(), Tool: name}

	t, ok := r.Get(name)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrToolNotFound, name)
		r.logger.WarnWith().Str("call_id", res.CallID).Str("tool", name).Err(err).Msg("tool invocation rejected")
		return res, err
	}

	log := r.logger.With().Str("call_id", res.CallID).Str("tool", name).Logger()
	log.DebugWith().Str("input", input).Msg("invoking tool")

	start := time.Now()
	out, err := t.Call(ctx, input)
	res.Elapsed = time.Since(start)
	if err != nil {
		log.ErrorWith().Err(err).Dur("elapsed", res.Elapsed).Msg("tool invocation failed")
		return res, err
	}

	res.Output = out
	log.InfoWith().Dur("elapsed", res.Elapsed).Str("output", out).Msg("tool invocation finished")
	return res, nil
}
