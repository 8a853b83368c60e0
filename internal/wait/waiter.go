// Package wait implements the bounded polling loop that drives repeated
// stability probes until an element settles or the deadline passes.
package wait

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	// DefaultTimeout bounds a whole wait when the caller gives none.
	DefaultTimeout = 30 * time.Second

	// DefaultCadence is the pause between poll iterations. Deliberately
	// coarser than the prober's settle delay so total probe frequency
	// stays bounded.
	DefaultCadence = 100 * time.Millisecond
)

// Waiter runs one polling loop. Create one per wait call; it owns no
// state shared with other waits.
type Waiter struct {
	Timeout time.Duration
	Cadence time.Duration

	// Visible gates probing. Must report failures as false, never panic
	// or error: a hidden or missing element is simply not yet stable.
	Visible func(ctx context.Context) bool

	// Verdict produces one stable/unstable decision per iteration.
	// An error is treated as "not stable this iteration", never fatal.
	Verdict func(ctx context.Context) (bool, error)

	Logger *slog.Logger
	Debug  bool
}

// Result describes a finished wait, on success or failure.
type Result struct {
	Stable  bool
	Elapsed time.Duration
	Checks  int
}

// TimeoutError is the only user-visible failure: the deadline passed
// without a stable verdict. Elapsed and Checks help diagnose flaky waits.
type TimeoutError struct {
	Timeout time.Duration
	Elapsed time.Duration
	Checks  int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("domsettle: element not stable after %s (%d checks, timeout %s)",
		e.Elapsed.Round(time.Millisecond), e.Checks, e.Timeout)
}

// Wait polls until the verdict turns stable, the timeout elapses, or ctx
// is cancelled. The returned Result is populated on every path.
func (w *Waiter) Wait(ctx context.Context) (Result, error) {
	timeout := w.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cadence := w.Cadence
	if cadence <= 0 {
		cadence = DefaultCadence
	}
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	checks := 0

	for {
		elapsed := time.Since(start)
		if elapsed >= timeout {
			if w.Debug {
				logger.Debug("wait: timed out", "elapsed", elapsed, "checks", checks)
			}
			return Result{Elapsed: elapsed, Checks: checks},
				&TimeoutError{Timeout: timeout, Elapsed: elapsed, Checks: checks}
		}
		checks++

		if !w.Visible(ctx) {
			if w.Debug {
				logger.Debug("wait: element not visible",
					"check", checks, "elapsed", time.Since(start))
			}
			if err := sleep(ctx, cadence); err != nil {
				return Result{Elapsed: time.Since(start), Checks: checks}, err
			}
			continue
		}

		stable, err := w.Verdict(ctx)
		switch {
		case err != nil:
			// Transient probe failure: keep polling.
			if w.Debug {
				logger.Debug("wait: verdict error", "check", checks, "error", err)
			}
		case stable:
			res := Result{Stable: true, Elapsed: time.Since(start), Checks: checks}
			if w.Debug {
				logger.Debug("wait: element stable",
					"elapsed", res.Elapsed, "checks", res.Checks)
			}
			return res, nil
		default:
			if w.Debug {
				logger.Debug("wait: not stable yet",
					"check", checks, "elapsed", time.Since(start))
			}
		}

		if err := sleep(ctx, cadence); err != nil {
			return Result{Elapsed: time.Since(start), Checks: checks}, err
		}
	}
}

// sleep pauses for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
