package draft

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	for _, item := range kindByErr {
		wrapped := fmt.Errorf("attempt pick: %w", fmt.Errorf("tx: %w", item.err))
		if got := KindOf(wrapped); got != item.kind {
			t.Fatalf("KindOf(%v): got %q want %q", item.err, got, item.kind)
		}
	}

	if got := KindOf(nil); got != KindNone {
		t.Fatalf("KindOf(nil): got %q", got)
	}
	if got := KindOf(errors.New("boom")); got != KindNone {
		t.Fatalf("KindOf(unrelated): got %q", got)
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	if !IsRetryable(fmt.Errorf("commit: %w", ErrSerializationConflict)) {
		t.Fatalf("expected serialization conflict to be retryable")
	}
	for _, err := range []error{ErrNotYourTurn, ErrPlayerUnavailable, ErrDraftNotActive, nil} {
		if IsRetryable(err) {
			t.Fatalf("expected %v not to be retryable", err)
		}
	}
}
