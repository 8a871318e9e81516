package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTransportErrorString(t *testing.T) {
	err := &TransportError{
		Provider:   "nhl",
		URL:        "https://example.com/standings/2025-04-16",
		StatusCode: 503,
		Body:       "maintenance",
	}
	got := err.Error()
	if !strings.Contains(got, "503") || !strings.Contains(got, "maintenance") {
		t.Fatalf("expected status and body in error string, got %q", got)
	}

	wrapped := fmt.Errorf("fetch: %w", err)
	tErr, ok := AsTransportError(wrapped)
	if !ok || tErr.StatusCode != 503 {
		t.Fatalf("expected to unwrap transport error")
	}
}

func TestTransportErrorUnwrapsCause(t *testing.T) {
	err := &TransportError{Provider: "nhl", URL: "u", Err: context.DeadlineExceeded}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cause to be reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "deadline") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
}

func TestTransportErrorRateLimited(t *testing.T) {
	if !(&TransportError{StatusCode: 429}).RateLimited() {
		t.Fatalf("expected 429 to be rate limited")
	}
	if (&TransportError{StatusCode: 500}).RateLimited() {
		t.Fatalf("expected 500 not to be rate limited")
	}
	if _, ok := AsTransportError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}
