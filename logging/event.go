package logging

import (
	"time"

	"github.com/rs/zerolog"
)

// LogEvent is a fluent, typed field builder for a single log line. Exactly one
// of Msg, Msgf or Send finishes it.
type LogEvent interface {
	Str(key, val string) LogEvent
	Strs(key string, vals []string) LogEvent
	Int(key string, val int) LogEvent
	Int64(key string, val int64) LogEvent
	Float64(key string, val float64) LogEvent
	Bool(key string, val bool) LogEvent
	Time(key string, val time.Time) LogEvent
	Dur(key string, val time.Duration) LogEvent
	Err(err error) LogEvent
	AnErr(key string, err error) LogEvent
	Interface(key string, val interface{}) LogEvent
	Msg(msg string)
	Msgf(format string, v ...interface{})
	Send()
}

// LogContext collects fields for a child logger.
type LogContext interface {
	Str(key, val string) LogContext
	Int(key string, val int) LogContext
	Float64(key string, val float64) LogContext
	Bool(key string, val bool) LogContext
	Err(err error) LogContext
	Interface(key string, val interface{}) LogContext
	Logger() Logger
}

// logEvent wraps a zerolog.Event. A nil event makes every method a no-op.
// done, when set, runs once the event is finished.
type logEvent struct {
	event *zerolog.Event
	done  func()
}

func newLogEvent(e *zerolog.Event, done func()) LogEvent {
	return &logEvent{event: e, done: done}
}

func (e *logEvent) finish() {
	if e.done != nil {
		done := e.done
		e.done = nil
		done()
	}
}

func (e *logEvent) Str(key, val string) LogEvent {
	if e.event != nil {
		e.event.Str(key, val)
	}
	return e
}

func (e *logEvent) Strs(key string, vals []string) LogEvent {
	if e.event != nil {
		e.event.Strs(key, vals)
	}
	return e
}

func (e *logEvent) Int(key string, val int) LogEvent {
	if e.event != nil {
		e.event.Int(key, val)
	}
	return e
}

func (e *logEvent) Int64(key string, val int64) LogEvent {
	if e.event != nil {
		e.event.Int64(key, val)
	}
	return e
}

func (e *logEvent) Float64(key string, val float64) LogEvent {
	if e.event != nil {
		e.event.Float64(key, val)
	}
	return e
}

func (e *logEvent) Bool(key string, val bool) LogEvent {
	if e.event != nil {
		e.event.Bool(key, val)
	}
	return e
}

func (e *logEvent) Time(key string, val time.Time) LogEvent {
	if e.event != nil {
		e.event.Time(key, val)
	}
	return e
}

func (e *logEvent) Dur(key string, val time.Duration) LogEvent {
	if e.event != nil {
		e.event.Dur(key, val)
	}
	return e
}

func (e *logEvent) Err(err error) LogEvent {
	if e.event != nil {
		e.event.Err(err)
		enrichError(e.event, zerolog.ErrorFieldName, err)
	}
	return e
}

func (e *logEvent) AnErr(key string, err error) LogEvent {
	if e.event != nil {
		e.event.AnErr(key, err)
		enrichError(e.event, key, err)
	}
	return e
}

func (e *logEvent) Interface(key string, val interface{}) LogEvent {
	if e.event != nil {
		e.event.Interface(key, val)
	}
	return e
}

func (e *logEvent) Msg(msg string) {
	defer e.finish()
	if e.event != nil {
		e.event.Msg(msg)
	}
}

func (e *logEvent) Msgf(format string, v ...interface{}) {
	defer e.finish()
	if e.event != nil {
		e.event.Msgf(format, v...)
	}
}

func (e *logEvent) Send() {
	defer e.finish()
	if e.event != nil {
		e.event.Send()
	}
}

// contextField re-applies one child-logger field to a fresh zerolog.Context.
type contextField func(zerolog.Context) zerolog.Context

// logContext records fields rather than a built zerolog.Context so child
// loggers keep following the parent across reconfiguration.
type logContext struct {
	fields  []contextField
	service *Service
}

func (c *logContext) add(f contextField) LogContext {
	c.fields = append(c.fields, f)
	return c
}

func (c *logContext) Str(key, val string) LogContext {
	return c.add(func(z zerolog.Context) zerolog.Context { return z.Str(key, val) })
}

func (c *logContext) Int(key string, val int) LogContext {
	return c.add(func(z zerolog.Context) zerolog.Context { return z.Int(key, val) })
}

func (c *logContext) Float64(key string, val float64) LogContext {
	return c.add(func(z zerolog.Context) zerolog.Context { return z.Float64(key, val) })
}

func (c *logContext) Bool(key string, val bool) LogContext {
	return c.add(func(z zerolog.Context) zerolog.Context { return z.Bool(key, val) })
}

func (c *logContext) Err(err error) LogContext {
	return c.add(func(z zerolog.Context) zerolog.Context { return z.Err(err) })
}

func (c *logContext) Interface(key string, val interface{}) LogContext {
	return c.add(func(z zerolog.Context) zerolog.Context { return z.Interface(key, val) })
}

func (c *logContext) Logger() Logger {
	fields := make([]contextField, len(c.fields))
	copy(fields, c.fields)
	return &contextLogger{fields: fields, parent: c.service}
}

// contextLogger delegates resource management to its parent Service and
// derives its zerolog.Logger from the parent's current one on every event.
type contextLogger struct {
	fields []contextField
	parent *Service
}

func (cl *contextLogger) derive(root *zerolog.Logger) *zerolog.Logger {
	z := root.With()
	for _, f := range cl.fields {
		z = f(z)
	}
	l := z.Logger()
	return &l
}

func (cl *contextLogger) DebugWith() LogEvent {
	return cl.parent.newEvent(zerolog.DebugLevel, cl.derive)
}

func (cl *contextLogger) InfoWith() LogEvent {
	return cl.parent.newEvent(zerolog.InfoLevel, cl.derive)
}

func (cl *contextLogger) WarnWith() LogEvent {
	return cl.parent.newEvent(zerolog.WarnLevel, cl.derive)
}

func (cl *contextLogger) ErrorWith() LogEvent {
	return cl.parent.newEvent(zerolog.ErrorLevel, cl.derive)
}

func (cl *contextLogger) FatalWith() LogEvent {
	return cl.parent.newEvent(zerolog.FatalLevel, cl.derive)
}

func (cl *contextLogger) With() LogContext {
	if cl.parent == nil {
		return &noopLogContext{}
	}
	fields := make([]contextField, len(cl.fields))
	copy(fields, cl.fields)
	return &logContext{fields: fields, service: cl.parent}
}

// noopLogContext is a no-op implementation of LogContext
type noopLogContext struct{}

func (n *noopLogContext) Str(key, val string) LogContext             { return n }
func (n *noopLogContext) Int(key string, val int) LogContext         { return n }
func (n *noopLogContext) Float64(key string, val float64) LogContext { return n }
func (n *noopLogContext) Bool(key string, val bool) LogContext       { return n }
func (n *noopLogContext) Err(err error) LogContext                   { return n }
func (n *noopLogContext) Interface(key string, val interface{}) LogContext {
	return n
}
func (n *noopLogContext) Logger() Logger { return &noopLogger{} }

// noopLogger is a no-op implementation of Logger
type noopLogger struct{}

func (n *noopLogger) DebugWith() LogEvent { return newLogEvent(nil, nil) }
func (n *noopLogger) InfoWith() LogEvent  { return newLogEvent(nil, nil) }
func (n *noopLogger) WarnWith() LogEvent  { return newLogEvent(nil, nil) }
func (n *noopLogger) ErrorWith() LogEvent { return newLogEvent(nil, nil) }
func (n *noopLogger) FatalWith() LogEvent { return newLogEvent(nil, nil) }
func (n *noopLogger) With() LogContext    { return &noopLogContext{} }
