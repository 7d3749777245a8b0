package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventFactor   EventType = "factor"
	EventCacheHit EventType = "cache_hit"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// FactorEvent describes a completed factorization request.
type FactorEvent struct {
	EventBase
	Input    string        `json:"input"`
	Outcome  Outcome       `json:"outcome"`
	Cached   bool          `json:"cached"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnFactor func(context.Context, *FactorEvent)
}
