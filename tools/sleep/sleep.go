// Package sleep implements the "sleep" tool: it pauses the caller for a whole
// number of seconds and reports back.
package sleep

import (
	"context"
	stderrs "errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Station-Manager/agenttools/tools"
	"golang.org/x/exp/constraints"
)

const (
	Name        = "sleep"
	Description = "Make agent sleep for a specified number of seconds. " +
		"Input is a number. eg: Sleep for 5s and enter 5"
)

// ErrInvalidDuration is returned by Call when the input is not a finite number.
var ErrInvalidDuration = stderrs.New("sleep: input is not a finite number")

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

const maxSeconds = float64(math.MaxInt64 / int64(time.Second))

// sleepFunc blocks Run. Replaced in tests.
var sleepFunc = time.Sleep

// Run blocks for d truncated to whole seconds and returns a confirmation that
// echoes d as given. Zero and negative durations return immediately.
func Run[N Number](d N) string {
	if wait := wholeSeconds(d); wait > 0 {
		sleepFunc(wait)
	}
	return message(d)
}

// RunContext is Run with cancellation. It returns ctx.Err() if ctx is done
// before the wait ends.
func RunContext[N Number](ctx context.Context, d N) (string, error) {
	if err := waitContext(ctx, wholeSeconds(d)); err != nil {
		return "", err
	}
	return message(d), nil
}

// wholeSeconds truncates d toward zero. Non-positive and NaN values yield 0;
// values past the time.Duration range are clamped.
func wholeSeconds[N Number](d N) time.Duration {
	secs := math.Trunc(float64(d))
	switch {
	case math.IsNaN(secs) || secs <= 0:
		return 0
	case secs >= maxSeconds:
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(secs) * time.Second
}

func message[N Number](d N) string {
	return fmt.Sprintf("Agent slept for %v seconds.", d)
}

func waitContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Action exposes the sleep tool through the tools.Tool interface.
type Action struct {
	wait func(context.Context, time.Duration) error
}

var _ tools.Tool = (*Action)(nil)

func New() *Action {
	return &Action{wait: waitContext}
}

func (a *Action) Name() string        { return Name }
func (a *Action) Description() string { return Description }

// Call parses input as a number of seconds and sleeps for its whole part.
// The wait is cut short if ctx is cancelled.
func (a *Action) Call(ctx context.Context, input string) (string, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDuration, input)
	}

	wait := a.wait
	if wait == nil {
		wait = waitContext
	}
	if err = wait(ctx, wholeSeconds(d)); err != nil {
		return "", err
	}
	return message(d), nil
}
