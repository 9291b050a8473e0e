// Package lifecycle runs one operation under a blanket catch boundary and
// terminates the process with an exit status reflecting the outcome. It is
// invoked exactly once per process and is the only place that decides the
// final exit status.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/vk/docrun/internal/ctxlog"
	"github.com/vk/docrun/internal/dispatch"
	"github.com/vk/docrun/internal/docgen"
	"github.com/vk/docrun/internal/ready"
	"github.com/vk/docrun/internal/term"
)

// Exit statuses. Success and failure are the whole contract; automation
// keys off these two values and nothing else.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// FlushWindow is the fixed delay granted to asynchronous diagnostic handlers
// before the process is torn down on a failure path. Termination is hard,
// not a graceful shutdown, so buffered output needs this window when the
// sink cannot be synced explicitly.
const FlushWindow = time.Second

// maxDetail bounds the length of failure detail embedded in a diagnostic.
const maxDetail = 512

// Outcome classifies the result of running an operation under the
// controller's catch boundary.
type Outcome int

const (
	Succeeded Outcome = iota
	CaughtFailure
	UncaughtAbnormal
)

// Controller owns the process lifecycle of a single invocation:
// Starting -> Running -> {Succeeded, CaughtFailure, UncaughtAbnormal} -> Terminated.
type Controller struct {
	Gate   *ready.Gate
	Logger *slog.Logger

	// Sink is the diagnostic output. When it exposes Sync, the controller
	// flushes it explicitly before terminating; otherwise it falls back to
	// the fixed FlushWindow delay.
	Sink io.Writer

	// Exit and Sleep default to os.Exit and time.Sleep; tests substitute
	// recording versions.
	Exit  func(code int)
	Sleep func(d time.Duration)
}

type result struct {
	outcome Outcome
	err     error // CaughtFailure
	signal  any   // UncaughtAbnormal
}

// Run blocks on the startup gate, executes op under the catch boundary, and
// terminates the process. Every branch ends in Exit; control never returns
// to the caller in production.
func (c *Controller) Run(op func(context.Context) error) {
	c.Gate.Await()

	ctx := ctxlog.WithLogger(context.Background(), c.Logger)
	res := c.invoke(ctx, op)

	switch res.outcome {
	case Succeeded:
		c.exit(ExitSuccess)
	case CaughtFailure:
		c.Logger.Error(describe(res.err))
		c.flush()
		c.exit(ExitFailure)
	case UncaughtAbnormal:
		c.Logger.Error("abnormal termination", "signal", clip(renderSignal(res.signal)))
		c.flush()
		c.exit(ExitFailure)
	}
}

// invoke is the catch boundary. A returned error is a caught failure, as is
// a panic carrying an error value; a panic carrying anything else is the
// defensive "something escaped that is not a recognized failure shape" case.
func (c *Controller) invoke(ctx context.Context, op func(context.Context) error) (res result) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok {
			res = result{outcome: CaughtFailure, err: err}
			return
		}
		res = result{outcome: UncaughtAbnormal, signal: r}
	}()

	if err := op(ctx); err != nil {
		return result{outcome: CaughtFailure, err: err}
	}
	return result{outcome: Succeeded}
}

// describe builds the single diagnostic line for a caught failure. Each
// recognized failure shape already renders bounded detail; anything else is
// clipped wholesale.
func describe(err error) string {
	var decodeErr *term.DecodeError
	var badArgs *dispatch.BadArgsError
	var engineErr *docgen.EngineError
	switch {
	case errors.As(err, &decodeErr):
		return clip(decodeErr.Error())
	case errors.As(err, &badArgs):
		return clip(badArgs.Error())
	case errors.As(err, &engineErr):
		return clip(engineErr.Error())
	}
	return "operation failed: " + clip(err.Error())
}

func renderSignal(signal any) string {
	if v, ok := signal.(term.Value); ok {
		return term.Render(v)
	}
	return fmt.Sprintf("%v", signal)
}

func clip(s string) string {
	if len(s) > maxDetail {
		return s[:maxDetail] + "..."
	}
	return s
}

func (c *Controller) flush() {
	type syncer interface{ Sync() error }
	if s, ok := c.Sink.(syncer); ok {
		if s.Sync() == nil {
			return
		}
	}
	c.sleep(FlushWindow)
}

func (c *Controller) sleep(d time.Duration) {
	if c.Sleep != nil {
		c.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (c *Controller) exit(code int) {
	if c.Exit != nil {
		c.Exit(code)
		return
	}
	os.Exit(code)
}
