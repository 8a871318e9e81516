package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	ctx := context.Background()
	Info(ctx, nil, "info")
	Warn(ctx, nil, "warn")
	Error(ctx, nil, "error", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Error(context.Background(), logger, "write failed", errors.New("disk full"), FieldPath, "/tmp/x")

	out := buf.String()
	if !strings.Contains(out, "error=\"disk full\"") || !strings.Contains(out, "path=/tmp/x") {
		t.Fatalf("expected error and path fields, got %q", out)
	}
}

func TestHelpersPreferContextLogger(t *testing.T) {
	var fallbackBuf, scopedBuf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&fallbackBuf, nil))
	scoped := slog.New(slog.NewTextHandler(&scopedBuf, nil))

	ctx := WithLogger(context.Background(), scoped)
	Warn(ctx, fallback, "scoped warning")

	if fallbackBuf.Len() != 0 {
		t.Fatalf("expected fallback to stay silent, got %q", fallbackBuf.String())
	}
	if !strings.Contains(scopedBuf.String(), "scoped warning") {
		t.Fatalf("expected scoped logger output, got %q", scopedBuf.String())
	}
}
