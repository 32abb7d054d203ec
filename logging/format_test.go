package logging

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelLabel(t *testing.T) {
	cases := map[string]string{
		"trace": "TRACE",
		"debug": "DEBUG",
		"info":  "INFO",
		"warn":  "WARNING",
		"error": "ERROR",
		"fatal": "CRITICAL",
		"panic": "PANIC",
		"":      "NOTSET",
		"odd":   "ODD",
	}
	for in, want := range cases {
		assert.Equal(t, want, levelLabel(in), in)
	}
}

func TestFormatLevel(t *testing.T) {
	assert.Equal(t, "[INFO]", formatLevel(true)("info"))
	assert.Equal(t, "[NOTSET]", formatLevel(true)(nil))

	colored := formatLevel(false)("error")
	assert.True(t, strings.HasPrefix(colored, colorRed))
	assert.Contains(t, colored, "[ERROR]")
	assert.True(t, strings.HasSuffix(colored, colorReset))
}

func TestNewLineWriter(t *testing.T) {
	buf := &threadSafeBuffer{}
	logger := zerolog.New(newLineWriter(buf, true)).With().Timestamp().Logger()

	before := time.Now().Truncate(time.Second)
	logger.Info().Str("tool", "sleep").Msg("hello world")

	line := strings.TrimRight(buf.String(), "\n")
	assert.Regexp(t, lineFormat, line)
	assert.True(t, strings.HasPrefix(line, "[INFO] "))
	assert.Contains(t, line, " hello world")
	assert.Contains(t, line, "tool=sleep")

	stamp := strings.TrimPrefix(line, "[INFO] ")[:len(timestampLayout)]
	parsed, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
	assert.NoError(t, err)
	assert.False(t, parsed.Before(before))
}

func TestLogFileName(t *testing.T) {
	ts := time.Date(2024, time.February, 3, 4, 5, 6, 0, time.UTC)
	assert.Equal(t, "log_20240203_040506.log", logFileName(ts))
}
