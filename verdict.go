package domsettle

import (
	"github.com/hazyhaar/domsettle/internal/probe"
	"github.com/hazyhaar/domsettle/internal/wait"
)

// Verdict is the outcome of one stability probe. Re-exported from internal.
type Verdict = probe.Verdict

// Sample is the diagnostic detail behind a Verdict.
type Sample = probe.Sample

// Rect is a point-in-time bounding-box snapshot.
type Rect = probe.Rect

// Result describes a finished wait: elapsed time and check count.
type Result = wait.Result

// TimeoutError is the only user-visible wait failure.
type TimeoutError = wait.TimeoutError
