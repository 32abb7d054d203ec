package logging

// Logger is the narrow handle components receive. Every method is safe to
// call before the logger is configured; events are then discarded.
type Logger interface {
	DebugWith() LogEvent
	InfoWith() LogEvent
	WarnWith() LogEvent
	ErrorWith() LogEvent
	// FatalWith exits the process once the event is sent.
	FatalWith() LogEvent

	// With starts a child logger whose fields are added to every event.
	// Example: reqLogger := logger.With().Str("call_id", id).Logger()
	With() LogContext
}
