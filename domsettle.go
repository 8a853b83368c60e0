// Package domsettle lets browser-automation tests wait until a page
// element has stopped animating or moving before interacting with it.
//
// The core is a bounded polling loop over a single-sample stability
// heuristic: two bounding-box measurements separated by a short settle
// delay, plus the element's computed animation and transition state.
// A hidden, missing, or still-moving element is "not yet stable" and is
// simply polled again; the only user-visible failure is the overall
// timeout.
//
// Wrap a rod page with Wrap to wait on a single element, or run whole
// targets (URL + selector) through a Service, which owns the Chrome
// lifecycle and produces Reports.
package domsettle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hazyhaar/pkg/idgen"

	"github.com/hazyhaar/domsettle/internal/browser"
)

// Service runs stability waits against whole targets: it opens a tab
// per target on a shared Chrome instance, wraps the element, waits, and
// reports the outcome.
type Service struct {
	cfg    *Config
	mgr    *browser.Manager
	logger *slog.Logger
}

// NewService creates a Service from configuration.
func NewService(cfg *Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.ApplyDefaults()

	mgr := browser.NewManager(browser.Config{
		RemoteURL: cfg.Browser.Remote,
		Headful:   cfg.Browser.Headful,
		Logger:    logger,
	})

	return &Service{cfg: cfg, mgr: mgr, logger: logger}
}

// Start launches (or connects to) the browser.
func (s *Service) Start(ctx context.Context) error {
	if _, err := s.mgr.Start(ctx); err != nil {
		return fmt.Errorf("domsettle: start browser: %w", err)
	}
	return nil
}

// Stop shuts the browser down.
func (s *Service) Stop() {
	s.mgr.Close()
}

// Report summarises one target wait.
type Report struct {
	ID        string `json:"id"`
	TargetID  string `json:"target_id,omitempty"`
	URL       string `json:"url"`
	Selector  string `json:"selector"`
	Stable    bool   `json:"stable"`
	ElapsedMs int64  `json:"elapsed_ms"`
	Checks    int    `json:"checks"`
	Error     string `json:"error,omitempty"`
}

// ProbeReport is the outcome of a single probe against a target.
type ProbeReport struct {
	ID       string  `json:"id"`
	URL      string  `json:"url"`
	Selector string  `json:"selector"`
	Verdict  Verdict `json:"verdict"`
}

// WaitTarget opens a tab for the target and waits for its element to
// settle. A timeout is a reported outcome, not an error: err is
// reserved for infrastructure failures such as navigation or the
// browser being down.
func (s *Service) WaitTarget(ctx context.Context, t TargetConfig) (*Report, error) {
	tab, err := browser.OpenTab(ctx, s.mgr, t.URL)
	if err != nil {
		return nil, err
	}
	defer tab.Close()

	el := Wrap(tab.Page, t.Selector,
		WithLogger(s.logger),
		WithSettle(s.cfg.Defaults.Settle),
		WithCadence(s.cfg.Defaults.Cadence),
		WithTimeout(s.cfg.Defaults.Timeout),
	)

	var opts []WaitOption
	if t.Timeout > 0 {
		opts = append(opts, WaitTimeout(t.Timeout))
	}
	if t.Debug || s.cfg.Defaults.Debug {
		opts = append(opts, WaitDebug(true))
	}

	res, err := el.WaitForStable(ctx, opts...)
	rep := &Report{
		ID:        idgen.New(),
		TargetID:  t.ID,
		URL:       t.URL,
		Selector:  t.Selector,
		Stable:    res.Stable,
		ElapsedMs: res.Elapsed.Milliseconds(),
		Checks:    res.Checks,
	}
	if err != nil {
		var te *TimeoutError
		if errors.As(err, &te) {
			rep.Error = te.Error()
			return rep, nil
		}
		return rep, err
	}

	s.logger.Info("domsettle: target settled",
		"target", t.ID, "url", t.URL, "selector", t.Selector,
		"elapsed_ms", rep.ElapsedMs, "checks", rep.Checks)
	return rep, nil
}

// ProbeTarget opens a tab for the target and takes one probe, without
// waiting.
func (s *Service) ProbeTarget(ctx context.Context, t TargetConfig) (*ProbeReport, error) {
	tab, err := browser.OpenTab(ctx, s.mgr, t.URL)
	if err != nil {
		return nil, err
	}
	defer tab.Close()

	el := Wrap(tab.Page, t.Selector,
		WithLogger(s.logger),
		WithSettle(s.cfg.Defaults.Settle),
	)
	if t.Debug || s.cfg.Defaults.Debug {
		el.SetDebug(true)
	}

	return &ProbeReport{
		ID:       idgen.New(),
		URL:      t.URL,
		Selector: t.Selector,
		Verdict:  el.Probe(ctx),
	}, nil
}
