package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventWalkStart   EventType = "walk_start"
	EventWalkFinish  EventType = "walk_finish"
	EventSynchronize EventType = "synchronize"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// WalkEvent represents the start or end of a single walk.
type WalkEvent struct {
	EventBase
	Start    string        `json:"start"`
	End      string        `json:"end,omitempty"`
	Steps    uint64        `json:"steps,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// SyncEvent is emitted once a synchronization has combined its walks.
type SyncEvent struct {
	EventBase
	Starts   int           `json:"starts"`
	Steps    uint64        `json:"steps"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnWalkStart   func(context.Context, *WalkEvent)
	OnWalkFinish  func(context.Context, *WalkEvent)
	OnSynchronize func(context.Context, *SyncEvent)
}
