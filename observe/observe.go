/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package observe externalizes the pre/post-call events emitted around each
// task operation so the forwarding logic stays free of logging concerns.
package observe

import (
	"context"
	"log/slog"
	"time"
)

// Operation names carried on events and used for task registration.
const (
	OpQueryItems = "query_items"
	OpReadItem   = "read_item"
	OpCreateItem = "create_item"
	OpUpsertItem = "upsert_item"
)

// Event describes one task operation. Before receives the identifying
// fields; After additionally carries the outcome.
type Event struct {
	Op        string
	Database  string
	Container string
	ItemID    string

	// Outcome fields, set only on After.
	Err           error
	Duration      time.Duration
	RequestCharge float32
	ActivityID    string
}

// Hook receives the pre/post-call events of every operation.
type Hook interface {
	Before(ctx context.Context, ev Event)
	After(ctx context.Context, ev Event)
}

// NopHook discards all events.
type NopHook struct{}

func (NopHook) Before(context.Context, Event) {}
func (NopHook) After(context.Context, Event)  {}

// SlogHook logs events through a slog.Logger.
type SlogHook struct {
	Logger *slog.Logger
}

// NewSlogHook creates a hook over the given logger, defaulting to
// slog.Default().
func NewSlogHook(logger *slog.Logger) *SlogHook {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogHook{Logger: logger}
}

func (h *SlogHook) Before(ctx context.Context, ev Event) {
	h.Logger.InfoContext(ctx, "cosmos task starting",
		slog.String("op", ev.Op),
		slog.String("database", ev.Database),
		slog.String("container", ev.Container),
		slog.String("item_id", ev.ItemID),
	)
}

func (h *SlogHook) After(ctx context.Context, ev Event) {
	attrs := []any{
		slog.String("op", ev.Op),
		slog.String("database", ev.Database),
		slog.String("container", ev.Container),
		slog.String("item_id", ev.ItemID),
		slog.Duration("duration", ev.Duration),
		slog.Float64("request_charge", float64(ev.RequestCharge)),
		slog.String("activity_id", ev.ActivityID),
	}
	if ev.Err != nil {
		attrs = append(attrs, slog.String("error", ev.Err.Error()))
		h.Logger.ErrorContext(ctx, "cosmos task failed", attrs...)
		return
	}
	h.Logger.InfoContext(ctx, "cosmos task finished", attrs...)
}

// Hooks fans events out to multiple hooks in order.
type Hooks []Hook

func (hs Hooks) Before(ctx context.Context, ev Event) {
	for _, h := range hs {
		h.Before(ctx, ev)
	}
}

func (hs Hooks) After(ctx context.Context, ev Event) {
	for _, h := range hs {
		h.After(ctx, ev)
	}
}
