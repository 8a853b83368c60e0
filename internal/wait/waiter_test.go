package wait

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func alwaysVisible(context.Context) bool { return true }

func TestWait_StableFirstIteration(t *testing.T) {
	w := &Waiter{
		Timeout: time.Second,
		Cadence: 10 * time.Millisecond,
		Visible: alwaysVisible,
		Verdict: func(context.Context) (bool, error) { return true, nil },
	}

	res, err := w.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !res.Stable {
		t.Error("Result.Stable = false, want true")
	}
	if res.Checks != 1 {
		t.Errorf("Result.Checks = %d, want 1", res.Checks)
	}
}

func TestWait_TimeoutMonotonic(t *testing.T) {
	const timeout = 60 * time.Millisecond
	const cadence = 10 * time.Millisecond

	w := &Waiter{
		Timeout: timeout,
		Cadence: cadence,
		Visible: alwaysVisible,
		Verdict: func(context.Context) (bool, error) { return false, nil },
	}

	start := time.Now()
	res, err := w.Wait(context.Background())
	elapsed := time.Since(start)

	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("Wait error = %v, want *TimeoutError", err)
	}
	if elapsed < timeout {
		t.Errorf("wait returned after %s, before timeout %s", elapsed, timeout)
	}
	// Bounded overshoot: one cadence of slack plus scheduling noise.
	if elapsed > timeout+10*cadence {
		t.Errorf("wait overshot: %s for timeout %s", elapsed, timeout)
	}
	if res.Checks < 1 || te.Checks < 1 {
		t.Errorf("checks = %d/%d, want >= 1", res.Checks, te.Checks)
	}
	if te.Elapsed < timeout {
		t.Errorf("TimeoutError.Elapsed = %s, want >= %s", te.Elapsed, timeout)
	}
}

func TestWait_TimeoutErrorMessage(t *testing.T) {
	w := &Waiter{
		Timeout: 20 * time.Millisecond,
		Cadence: 5 * time.Millisecond,
		Visible: alwaysVisible,
		Verdict: func(context.Context) (bool, error) { return false, nil },
	}

	_, err := w.Wait(context.Background())
	if err == nil {
		t.Fatal("Wait: expected timeout error")
	}
	msg := err.Error()
	if want := "not stable"; !strings.Contains(msg, want) {
		t.Errorf("error %q does not mention %q", msg, want)
	}
	if want := "checks"; !strings.Contains(msg, want) {
		t.Errorf("error %q does not mention %q", msg, want)
	}
}

func TestWait_VisibilityGating(t *testing.T) {
	// A hidden element never reaches the verdict, even one that would
	// report stable.
	verdictCalls := 0
	w := &Waiter{
		Timeout: 50 * time.Millisecond,
		Cadence: 5 * time.Millisecond,
		Visible: func(context.Context) bool { return false },
		Verdict: func(context.Context) (bool, error) {
			verdictCalls++
			return true, nil
		},
	}

	res, err := w.Wait(context.Background())
	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("Wait error = %v, want *TimeoutError", err)
	}
	if verdictCalls != 0 {
		t.Errorf("verdict called %d times for invisible element, want 0", verdictCalls)
	}
	if res.Checks < 2 {
		t.Errorf("Result.Checks = %d, want >= 2 (kept polling)", res.Checks)
	}
}

func TestWait_BecomesVisibleLater(t *testing.T) {
	visibleAfter := 3
	iter := 0
	w := &Waiter{
		Timeout: time.Second,
		Cadence: 5 * time.Millisecond,
		Visible: func(context.Context) bool {
			iter++
			return iter > visibleAfter
		},
		Verdict: func(context.Context) (bool, error) { return true, nil },
	}

	res, err := w.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if res.Checks != visibleAfter+1 {
		t.Errorf("Result.Checks = %d, want %d", res.Checks, visibleAfter+1)
	}
}

func TestWait_VerdictErrorsSwallowed(t *testing.T) {
	calls := 0
	w := &Waiter{
		Timeout: time.Second,
		Cadence: 5 * time.Millisecond,
		Visible: alwaysVisible,
		Verdict: func(context.Context) (bool, error) {
			calls++
			if calls < 3 {
				return false, errors.New("evaluation blew up")
			}
			return true, nil
		},
	}

	res, err := w.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v (errors before a stable verdict must be swallowed)", err)
	}
	if res.Checks != 3 {
		t.Errorf("Result.Checks = %d, want 3", res.Checks)
	}
}

func TestWait_UnstableThenStable(t *testing.T) {
	calls := 0
	w := &Waiter{
		Timeout: time.Second,
		Cadence: 5 * time.Millisecond,
		Visible: alwaysVisible,
		Verdict: func(context.Context) (bool, error) {
			calls++
			return calls >= 4, nil
		},
	}

	res, err := w.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !res.Stable {
		t.Error("Result.Stable = false, want true")
	}
	if res.Checks != 4 {
		t.Errorf("Result.Checks = %d, want 4", res.Checks)
	}
}

func TestWait_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	w := &Waiter{
		Timeout: time.Minute,
		Cadence: 5 * time.Millisecond,
		Visible: alwaysVisible,
		Verdict: func(context.Context) (bool, error) { return false, nil },
	}

	start := time.Now()
	_, err := w.Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait error = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("cancellation took %s, want prompt return", elapsed)
	}
}

func TestWait_Defaults(t *testing.T) {
	w := &Waiter{
		Visible: alwaysVisible,
		Verdict: func(context.Context) (bool, error) { return true, nil },
	}
	// Zero Timeout/Cadence must not spin or fail instantly.
	res, err := w.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait with defaults: %v", err)
	}
	if res.Checks != 1 {
		t.Errorf("Result.Checks = %d, want 1", res.Checks)
	}
}
