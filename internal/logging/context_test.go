// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	if len(id1) != 36 { // UUID format
		t.Errorf("expected 36-character request ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique request IDs")
	}
}

func TestRequestIDFromContext(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}
	ctx := ContextWithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}
}

func TestContextWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Str("request_id", "req-2").Logger()
	ctx := ContextWithLogger(context.Background(), logger)

	// Reachable through zerolog directly as well as through this package.
	zerolog.Ctx(ctx).Info().Msg("via zerolog")
	Ctx(ctx).Info().Msg("via logging")

	output := buf.String()
	if strings.Count(output, `"request_id":"req-2"`) != 2 {
		t.Errorf("expected both lines to carry the request id once, got: %s", output)
	}
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	ctx := ContextWithRequestID(context.Background(), "req-3")
	l := Ctx(ctx)
	if l == nil {
		t.Fatal("Ctx() returned nil")
	}

	var buf bytes.Buffer
	out := l.Output(&buf)
	out.Info().Msg("hello")
	if !strings.Contains(buf.String(), `"request_id":"req-3"`) {
		t.Errorf("expected request id from context, got: %s", buf.String())
	}
}

func TestLoggerFromContext_Nop(t *testing.T) {
	t.Parallel()

	// A disabled logger in context is treated as absent.
	ctx := ContextWithLogger(context.Background(), zerolog.Nop())
	l := LoggerFromContext(ctx)
	if l.GetLevel() == zerolog.Disabled {
		t.Error("LoggerFromContext() returned the disabled logger instead of the global one")
	}
}
