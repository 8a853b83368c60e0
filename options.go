package domsettle

import (
	"context"
	"log/slog"
	"time"
)

// Option configures an Element at wrap time.
type Option func(*Element)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Element) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSettle sets the pause between the two samples inside one probe.
// The 50ms default is tuned for typical animation frame rates.
func WithSettle(d time.Duration) Option {
	return func(e *Element) {
		if d > 0 {
			e.settle = d
		}
	}
}

// WithCadence sets the pause between poll iterations. Default: 100ms.
func WithCadence(d time.Duration) Option {
	return func(e *Element) {
		if d > 0 {
			e.cadence = d
		}
	}
}

// WithTimeout sets the default overall wait timeout. Default: 30s.
func WithTimeout(d time.Duration) Option {
	return func(e *Element) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithDebug sets the element-level debug flag, overriding the
// process-wide default.
func WithDebug(v bool) Option {
	return func(e *Element) { e.SetDebug(v) }
}

// VerdictFunc overrides the default probe for one wait. It receives the
// element and a thunk that runs the built-in probe on demand, so custom
// logic (say, ignoring colour-only transitions) can still fall back to
// the default heuristic. It is evaluated once per poll iteration; an
// error means "not stable this iteration".
type VerdictFunc func(ctx context.Context, el *Element, defaultProbe func(context.Context) Verdict) (bool, error)

// WaitOption adjusts a single WaitForStable call.
type WaitOption func(*waitOptions)

type waitOptions struct {
	timeout  time.Duration
	debug    bool
	debugSet bool
	verdict  VerdictFunc
}

// WaitTimeout overrides the overall timeout for this wait.
func WaitTimeout(d time.Duration) WaitOption {
	return func(o *waitOptions) { o.timeout = d }
}

// WaitDebug overrides debug logging for this wait. An explicit value
// here beats both the element setting and the process default.
func WaitDebug(v bool) WaitOption {
	return func(o *waitOptions) {
		o.debug = v
		o.debugSet = true
	}
}

// WaitVerdict supplies a custom verdict strategy for this wait.
func WaitVerdict(fn VerdictFunc) WaitOption {
	return func(o *waitOptions) { o.verdict = fn }
}
