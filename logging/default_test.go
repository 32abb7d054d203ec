package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swapDefault(t *testing.T, svc *Service) {
	t.Helper()
	previous := Default()
	SetDefault(svc)
	t.Cleanup(func() { SetDefault(previous) })
}

func TestDefault_EntryPoints(t *testing.T) {
	t.Run("console only through the package functions", func(t *testing.T) {
		svc, console, root := newTestService(t, false)
		swapDefault(t, svc)

		require.NoError(t, EnableConsoleOnlyLogging())
		GetLogger().DebugWith().Msg("via GetLogger")

		assert.Contains(t, console.String(), "[DEBUG] ")
		assert.Contains(t, console.String(), "via GetLogger")
		assert.Empty(t, logFiles(t, root))
	})

	t.Run("file logging through the package functions", func(t *testing.T) {
		svc, _, root := newTestService(t, true)
		swapDefault(t, svc)

		require.NoError(t, EnableFileAndConsoleLogging())
		assert.Len(t, logFiles(t, root), 1)
	})

	t.Run("file logging skipped on unsupported hosts", func(t *testing.T) {
		svc, console, root := newTestService(t, false)
		swapDefault(t, svc)

		require.NoError(t, EnableFileAndConsoleLogging())
		GetLogger().InfoWith().Msg("silent")

		assert.Empty(t, console.String())
		assert.Empty(t, logFiles(t, root))
	})
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	before := Default()
	SetDefault(nil)
	assert.Same(t, before, Default())
}

func TestGetLogger_BeforeConfiguration(t *testing.T) {
	swapDefault(t, NewService())
	assert.NotPanics(t, func() {
		GetLogger().ErrorWith().Str("k", "v").Msg("discarded")
	})
}
