package domsettle

import "testing"

func TestDebugResolution(t *testing.T) {
	t.Cleanup(func() { SetDebug(false) })

	el := Wrap(nil, "#box")

	// Nothing set: process default (off).
	if el.resolveDebug(nil) {
		t.Error("resolveDebug = true with everything unset")
	}

	// Process default on.
	SetDebug(true)
	if !el.resolveDebug(nil) {
		t.Error("resolveDebug = false, want process default true")
	}

	// Element setting beats the process default.
	el.SetDebug(false)
	if el.resolveDebug(nil) {
		t.Error("resolveDebug = true, element setting must win")
	}

	// Per-call option beats both.
	o := &waitOptions{debug: true, debugSet: true}
	if !el.resolveDebug(o) {
		t.Error("resolveDebug = false, per-call option must win")
	}

	// An explicit false option also wins over an explicit true element.
	el.SetDebug(true)
	o = &waitOptions{debug: false, debugSet: true}
	if el.resolveDebug(o) {
		t.Error("resolveDebug = true, explicit false option must win")
	}
}

func TestDebugDefault(t *testing.T) {
	t.Cleanup(func() { SetDebug(false) })

	if DebugEnabled() {
		t.Error("DebugEnabled = true at start, want false")
	}
	SetDebug(true)
	if !DebugEnabled() {
		t.Error("DebugEnabled = false after SetDebug(true)")
	}
}

func TestWithDebugOption(t *testing.T) {
	el := Wrap(nil, "#box", WithDebug(true))
	if !el.resolveDebug(nil) {
		t.Error("WithDebug(true) not applied")
	}
}
