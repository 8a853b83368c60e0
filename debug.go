package domsettle

import "sync/atomic"

// debugDefault is the process-wide debug default. It is a last resort:
// any explicit per-call or per-element setting wins. Writes are
// last-writer-wins, which is acceptable because the flag only affects
// logging, never control flow.
var debugDefault atomic.Bool

// SetDebug sets the process-wide debug default.
func SetDebug(v bool) { debugDefault.Store(v) }

// DebugEnabled reports the process-wide debug default.
func DebugEnabled() bool { return debugDefault.Load() }
