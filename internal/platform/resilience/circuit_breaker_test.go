package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_Do(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute, 1)
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	callerErr := errors.New("caller mistake")
	ignoreCaller := func(err error) bool { return !errors.Is(err, callerErr) }

	if err := b.Do(func() error { return callerErr }, ignoreCaller); !errors.Is(err, callerErr) {
		t.Fatalf("expected caller error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("caller errors must not open the breaker, got %s", state)
	}

	if err := b.Do(func() error { return errors.New("db down") }, ignoreCaller); err == nil {
		t.Fatalf("expected failure")
	}

	calls := 0
	err := b.Do(func() error { calls++; return nil }, ignoreCaller)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("fn must not run while open")
	}

	now = now.Add(time.Minute)
	if err := b.Do(func() error { return nil }, ignoreCaller); err != nil {
		t.Fatalf("expected half-open probe to pass: %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after probe success, got %s", state)
	}
}

func TestNewCircuitBreakerFromConfig(t *testing.T) {
	if b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: false}); b != nil {
		t.Fatalf("expected nil breaker when disabled")
	}

	var nilBreaker *CircuitBreaker
	if err := nilBreaker.Do(func() error { return nil }, nil); err != nil {
		t.Fatalf("nil breaker should pass through: %v", err)
	}

	if b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: true}); b == nil || b.failureThreshold != 5 {
		t.Fatalf("expected defaults to be applied")
	}
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute, 1)
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	var transitions []string
	b.OnStateChange(func(from, to CircuitState) {
		transitions = append(transitions, string(from)+"->"+string(to))
	})

	b.RecordFailure()
	now = now.Add(2 * time.Minute)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe: %v", err)
	}
	b.RecordSuccess()

	want := []string{"closed->open", "open->half_open", "half_open->closed"}
	if len(transitions) != len(want) {
		t.Fatalf("unexpected transitions: %v", transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("transition %d: got %s want %s", i, transitions[i], want[i])
		}
	}

	var nilBreaker *CircuitBreaker
	nilBreaker.OnStateChange(func(CircuitState, CircuitState) {})
}

func TestCircuitBreakerConfig_Normalized(t *testing.T) {
	got := CircuitBreakerConfig{Enabled: true, FailureThreshold: -1, OpenTimeout: 0, HalfOpenMaxReq: 3}.Normalized()
	if got.FailureThreshold != 5 || got.OpenTimeout != 15*time.Second || got.HalfOpenMaxReq != 3 {
		t.Fatalf("unexpected normalized config: %+v", got)
	}
	if s := (CircuitBreakerConfig{}).String(); s != "breaker(disabled)" {
		t.Fatalf("unexpected disabled string: %q", s)
	}
}
