package tools

import (
	"bytes"
	"context"
	stderrs "errors"
	"strings"
	"sync"
	"testing"

	"github.com/Station-Manager/agenttools/logging"
	"github.com/Station-Manager/agenttools/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type echoTool struct {
	name string
	err  error
}

func (e echoTool) Name() string        { return e.name }
func (e echoTool) Description() string { return "echoes " + e.name }
func (e echoTool) Call(_ context.Context, input string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return strings.ToUpper(input), nil
}

func newTestLogger(t *testing.T) (logging.Logger, *syncBuffer) {
	t.Helper()
	buf := &syncBuffer{}
	cfg := types.DefaultLoggingConfig()
	svc := &logging.Service{
		StorageRoot:   t.TempDir(),
		LoggingConfig: &cfg,
		ConsoleOut:    buf,
	}
	require.NoError(t, svc.EnableConsoleOnly())
	t.Cleanup(func() { _ = svc.Close() })
	return svc.Logger(), buf
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(nil)

	require.NoError(t, r.Register(echoTool{name: "b"}))
	require.NoError(t, r.Register(echoTool{name: "a"}))

	err := r.Register(echoTool{name: "a"})
	assert.True(t, stderrs.Is(err, ErrDuplicateTool))
	assert.True(t, stderrs.Is(r.Register(nil), ErrInvalidTool))
	assert.True(t, stderrs.Is(r.Register(echoTool{name: "  "}), ErrInvalidTool))

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "echoes a", got.Description())

	names := []string{}
	for _, tool := range r.List() {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestRegistry_Invoke(t *testing.T) {
	t.Run("success is logged with the call id", func(t *testing.T) {
		logger, buf := newTestLogger(t)
		r := NewRegistry(logger)
		r.newID = func() string { return "call-1" }
		require.NoError(t, r.Register(echoTool{name: "echo"}))

		res, err := r.Invoke(context.Background(), "echo", "hi")
		require.NoError(t, err)
		assert.Equal(t, "HI", res.Output)
		assert.Equal(t, "call-1", res.CallID)
		assert.Equal(t, "echo", res.Tool)

		out := buf.String()
		assert.Contains(t, out, "[DEBUG]")
		assert.Contains(t, out, "invoking tool")
		assert.Contains(t, out, "tool invocation finished")
		assert.Contains(t, out, "call_id=call-1")
		assert.Contains(t, out, "tool=echo")
	})

	t.Run("tool failure is returned and logged", func(t *testing.T) {
		logger, buf := newTestLogger(t)
		r := NewRegistry(logger)
		boom := stderrs.New("boom")
		require.NoError(t, r.Register(echoTool{name: "bad", err: boom}))

		res, err := r.Invoke(context.Background(), "bad", "x")
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, res.Output)
		assert.NotEmpty(t, res.CallID)
		assert.Contains(t, buf.String(), "[ERROR]")
		assert.Contains(t, buf.String(), "tool invocation failed")
	})

	t.Run("unknown tool", func(t *testing.T) {
		logger, buf := newTestLogger(t)
		r := NewRegistry(logger)

		_, err := r.Invoke(context.Background(), "missing", "")
		assert.ErrorIs(t, err, ErrToolNotFound)
		assert.Contains(t, buf.String(), "[WARNING]")
	})

	t.Run("call ids are unique", func(t *testing.T) {
		r := NewRegistry(nil)
		require.NoError(t, r.Register(echoTool{name: "echo"}))

		first, err := r.Invoke(context.Background(), "echo", "a")
		require.NoError(t, err)
		second, err := r.Invoke(context.Background(), "echo", "b")
		require.NoError(t, err)
		assert.NotEqual(t, first.CallID, second.CallID)
	})
}
