// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gdps/internal/platform/ctxkey"
)

// # Batch Tracing

// WithBatchID returns a new context with the provided import batch ID attached.
func WithBatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyBatchID, id)
}

// GetBatchID retrieves the batch ID from the context.
// Returns an empty string if not found.
func GetBatchID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyBatchID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns fallback, or the global default logger
// when fallback is nil.
func GetLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if ok {
		return logger
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
