package domsettle

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-rod/rod"

	"github.com/hazyhaar/domsettle/internal/probe"
	"github.com/hazyhaar/domsettle/internal/wait"
)

// Element waits for one selector on one page to settle. It composes
// over rod's element capability instead of extending it: the page
// object is never modified, and the element is re-located on every
// check so a stale reference cannot leak across iterations.
//
// An Element is cheap; wrap as many as needed. Concurrent waits on the
// same or different elements are independent.
type Element struct {
	page     *rod.Page
	selector string

	settle  time.Duration
	cadence time.Duration
	timeout time.Duration

	debug    bool
	debugSet bool

	logger *slog.Logger
}

// Wrap builds an Element for selector on page.
func Wrap(page *rod.Page, selector string, opts ...Option) *Element {
	e := &Element{
		page:     page,
		selector: selector,
		settle:   probe.DefaultSettle,
		cadence:  wait.DefaultCadence,
		timeout:  wait.DefaultTimeout,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Selector returns the selector this element was wrapped with.
func (e *Element) Selector() string { return e.selector }

// SetDebug overrides the process-wide debug default for this element.
func (e *Element) SetDebug(v bool) {
	e.debug = v
	e.debugSet = true
}

// Visible reports whether the element currently exists and is visible.
// Every failure reads as false; this method never errors.
func (e *Element) Visible(ctx context.Context) bool {
	handleCtx, cancel := context.WithTimeout(ctx, probe.DefaultHandleBudget)
	defer cancel()

	has, el, err := e.page.Context(handleCtx).Has(e.selector)
	if err != nil || !has || el == nil {
		return false
	}
	v, err := el.Context(handleCtx).Visible()
	return err == nil && v
}

// Probe takes a single stability sample without waiting.
func (e *Element) Probe(ctx context.Context) Verdict {
	return e.prober(e.resolveDebug(nil)).Probe(ctx, e.page, e.selector)
}

// WaitForStable polls until the element stops animating and moving, the
// timeout elapses, or ctx is cancelled. On timeout the error is a
// *TimeoutError carrying elapsed time and check count; the Result is
// populated on every path.
func (e *Element) WaitForStable(ctx context.Context, opts ...WaitOption) (Result, error) {
	var o waitOptions
	for _, opt := range opts {
		opt(&o)
	}

	// Resolve configuration once at entry; nothing below reads globals.
	debug := e.resolveDebug(&o)
	timeout := e.timeout
	if o.timeout > 0 {
		timeout = o.timeout
	}

	p := e.prober(debug)
	defaultProbe := func(ctx context.Context) Verdict {
		return p.Probe(ctx, e.page, e.selector)
	}

	verdict := func(ctx context.Context) (bool, error) {
		if o.verdict != nil {
			return o.verdict(ctx, e, defaultProbe)
		}
		return defaultProbe(ctx).Stable, nil
	}

	w := &wait.Waiter{
		Timeout: timeout,
		Cadence: e.cadence,
		Visible: e.Visible,
		Verdict: verdict,
		Logger:  e.logger,
		Debug:   debug,
	}
	return w.Wait(ctx)
}

func (e *Element) prober(debug bool) *probe.Prober {
	return &probe.Prober{
		Settle: e.settle,
		Logger: e.logger,
		Debug:  debug,
	}
}

// resolveDebug applies the precedence: per-call option, then the
// element's own setting, then the process-wide default.
func (e *Element) resolveDebug(o *waitOptions) bool {
	if o != nil && o.debugSet {
		return o.debug
	}
	if e.debugSet {
		return e.debug
	}
	return DebugEnabled()
}
