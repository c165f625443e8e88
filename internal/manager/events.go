package manager

import "sonard/pkg/types"

// Change is published after every state transition and carousel frame.
type Change struct {
	// Op names the operation that produced the change, e.g. "select" or "frame".
	Op   string
	View types.View
}

// EventPublisher receives changes from the manager. Implementations should be
// lightweight and non-blocking; Publish runs on the session loop and must
// not panic.
type EventPublisher interface {
	Publish(Change)
}

// noopPublisher is the default; it drops changes.
type noopPublisher struct{}

func (noopPublisher) Publish(Change) {}
