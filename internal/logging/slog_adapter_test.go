// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		zerologLevel zerolog.Level
		slogLevel    slog.Level
		want         bool
	}{
		{"debug logger enables debug", zerolog.DebugLevel, slog.LevelDebug, true},
		{"info logger disables debug", zerolog.InfoLevel, slog.LevelDebug, false},
		{"info logger enables warn", zerolog.InfoLevel, slog.LevelWarn, true},
		{"error logger disables warn", zerolog.ErrorLevel, slog.LevelWarn, false},
		{"error logger enables error", zerolog.ErrorLevel, slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(tt.zerologLevel))
			if got := h.Enabled(context.Background(), tt.slogLevel); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.slogLevel, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandler(zerolog.New(&buf)))

	slogger.Warn("service restarted",
		"service", "reload",
		"attempt", 3,
		"backoff", 2*time.Second,
		"healthy", false,
		"error", errors.New("boom"),
	)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"service":"reload"`,
		`"attempt":3`,
		`"healthy":false`,
		`"error":"boom"`,
		`"message":"service restarted"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandler(zerolog.New(&buf))).
		With("supervisor", "productrec").
		WithGroup("event").
		With("kind", "backoff")

	slogger.Info("grouped", "restarts", 2, slog.Group("timing", "seconds", 15))

	output := buf.String()
	for _, want := range []string{
		`"supervisor":"productrec"`,
		`"event.kind":"backoff"`,
		`"event.restarts":2`,
		`"event.timing.seconds":15`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_EmptyGroup(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.Nop())
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestNewSlogLogger(t *testing.T) {
	t.Parallel()

	if NewSlogLogger("supervisor") == nil {
		t.Fatal("NewSlogLogger() = nil")
	}
}
