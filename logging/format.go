package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// levelLabels maps zerolog level strings to the labels written in brackets.
var levelLabels = map[string]string{
	zerolog.LevelTraceValue: "TRACE",
	zerolog.LevelDebugValue: "DEBUG",
	zerolog.LevelInfoValue:  "INFO",
	zerolog.LevelWarnValue:  "WARNING",
	zerolog.LevelErrorValue: "ERROR",
	zerolog.LevelFatalValue: "CRITICAL",
	zerolog.LevelPanicValue: "PANIC",
}

var levelColors = map[string]string{
	zerolog.LevelTraceValue: colorGray,
	zerolog.LevelDebugValue: colorBlue,
	zerolog.LevelInfoValue:  colorCyan,
	zerolog.LevelWarnValue:  colorYellow,
	zerolog.LevelErrorValue: colorRed,
	zerolog.LevelFatalValue: colorBold + colorRed,
	zerolog.LevelPanicValue: colorBold + colorRed,
}

func levelLabel(level string) string {
	if l, ok := levelLabels[level]; ok {
		return l
	}
	if level == emptyString {
		return "NOTSET"
	}
	return strings.ToUpper(level)
}

func formatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		level, _ := i.(string)
		label := "[" + levelLabel(level) + "]"
		if noColor {
			return label
		}
		if c, ok := levelColors[level]; ok {
			return c + label + colorReset
		}
		return label
	}
}

// newLineWriter renders events as "[LEVEL] YYYY-MM-DD HH:MM:SS message" with
// any structured fields appended as key=value.
func newLineWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: timestampLayout,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: formatLevel(noColor),
	}
}
