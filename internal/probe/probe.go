// Package probe implements the single-sample stability check: two
// bounding-box measurements separated by a short settle delay, combined
// with the element's computed animation and transition state.
package probe

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
)

//go:embed probe.js
var probeJS string

const (
	// DefaultSettle is the pause between the two geometry samples: long
	// enough for one animation frame or transition tick to manifest,
	// short enough to keep polling responsive.
	DefaultSettle = 50 * time.Millisecond

	// DefaultEvalBudget caps the in-page evaluation, independent of the
	// caller's overall wait timeout.
	DefaultEvalBudget = 2 * time.Second

	// DefaultHandleBudget caps element handle acquisition.
	DefaultHandleBudget = time.Second
)

// Prober takes one stability sample of an element. It never returns an
// error: every failure mode is folded into an unstable Verdict, so the
// caller's polling loop stays the single retry-or-give-up decision point.
type Prober struct {
	Settle       time.Duration
	EvalBudget   time.Duration
	HandleBudget time.Duration
	Logger       *slog.Logger
	Debug        bool
}

func (p *Prober) defaults() {
	if p.Settle <= 0 {
		p.Settle = DefaultSettle
	}
	if p.EvalBudget <= 0 {
		p.EvalBudget = DefaultEvalBudget
	}
	if p.HandleBudget <= 0 {
		p.HandleBudget = DefaultHandleBudget
	}
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
}

// Probe samples the element matched by selector on page. The element is
// re-located on every call so a stale prior reference cannot poison the
// verdict; the handle lives only for the duration of this call.
func (p *Prober) Probe(ctx context.Context, page *rod.Page, selector string) Verdict {
	p.defaults()

	handleCtx, cancelHandle := context.WithTimeout(ctx, p.HandleBudget)
	defer cancelHandle()

	has, el, err := page.Context(handleCtx).Has(selector)
	if err != nil {
		return p.unstable(selector, Sample{Err: "locate: " + err.Error()})
	}
	if !has || el == nil {
		return p.unstable(selector, Sample{})
	}

	evalCtx, cancelEval := context.WithTimeout(ctx, p.EvalBudget)
	defer cancelEval()

	res, err := el.Context(evalCtx).Eval(probeJS, p.Settle.Milliseconds())
	if err != nil {
		return p.unstable(selector, Sample{Exists: true, Err: "sample: " + err.Error()})
	}

	var s Sample
	if err := json.Unmarshal([]byte(res.Value.Str()), &s); err != nil {
		return p.unstable(selector, Sample{Exists: true, HasHandle: true, Err: "parse sample: " + err.Error()})
	}

	s.Exists = true
	s.HasHandle = true
	s.ActiveAnimation = activeAnimation(s)
	s.PositionChanged = rectChanged(s.InitialRect, s.NewRect)

	v := Verdict{Stable: !s.ActiveAnimation && !s.PositionChanged, Sample: s}
	if p.Debug {
		p.Logger.Debug("probe: sampled",
			"selector", selector,
			"stable", v.Stable,
			"animation", s.AnimationName,
			"play_state", s.AnimationPlayState,
			"transition", s.TransitionProperty,
			"moved", s.PositionChanged)
	}
	return v
}

func (p *Prober) unstable(selector string, s Sample) Verdict {
	if p.Debug {
		p.Logger.Debug("probe: unstable without sample",
			"selector", selector, "exists", s.Exists, "error", s.Err)
	}
	return Verdict{Stable: false, Sample: s}
}
