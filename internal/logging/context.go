// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// GenerateRequestID creates a new unique request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a new context with the given request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if not present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithLogger attaches logger using zerolog's own context slot so
// that packages depending only on zerolog can find it with zerolog.Ctx.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// loggerFromContext reports whether ctx carried its own logger.
func loggerFromContext(ctx context.Context) (zerolog.Logger, bool) {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l, true
	}
	return Logger(), false
}

// LoggerFromContext retrieves the logger attached to ctx, or the global
// logger if none is attached.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	l, _ := loggerFromContext(ctx)
	return l
}

// Ctx returns the request-scoped logger. When ctx has no attached logger
// the global logger is used and the request ID, if any, is added.
//
//	logging.Ctx(ctx).Info().Msg("Processing request")
func Ctx(ctx context.Context) *zerolog.Logger {
	l, attached := loggerFromContext(ctx)
	if !attached {
		if id := RequestIDFromContext(ctx); id != "" {
			l = l.With().Str("request_id", id).Logger()
		}
	}
	return &l
}
