package clierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeOf(t *testing.T) {
	if got := ExitCodeOf(nil); got != 0 {
		t.Errorf("nil error: got %d, want 0", got)
	}
	if got := ExitCodeOf(errors.New("plain")); got != 1 {
		t.Errorf("plain error: got %d, want 1", got)
	}
	if got := ExitCodeOf(New(2, "drift")); got != 2 {
		t.Errorf("ExitError: got %d, want 2", got)
	}

	wrapped := fmt.Errorf("running check: %w", New(3, "inner"))
	if got := ExitCodeOf(wrapped); got != 3 {
		t.Errorf("wrapped ExitError: got %d, want 3", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := ExitCodeOf(New(0, "zero")); got != 1 {
		t.Errorf("code 0 should normalize to 1, got %d", got)
	}
	if got := ExitCodeOf(New(-4, "negative")); got != 1 {
		t.Errorf("negative code should normalize to 1, got %d", got)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(2, "checking store", cause)

	if err.Error() != "checking store: boom" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if got := ExitCodeOf(err); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}
