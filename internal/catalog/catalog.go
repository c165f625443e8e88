// Package catalog holds the immutable event catalog and the suppliers that
// load it (files, an HTTP backend, a disk cache and the built-in sample).
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"sonard/pkg/types"
)

var (
	// ErrDuplicateID is returned by New when two events share an id.
	ErrDuplicateID = errors.New("duplicate event id")
	// ErrEmptyID is returned by New for an event without an id.
	ErrEmptyID = errors.New("event id is required")
)

// Catalog is an ordered, read-only snapshot of events. A refresh builds a
// new Catalog; an existing one is never modified.
type Catalog struct {
	events []types.Event
	index  map[string]int
}

// New validates events and takes a private copy of them.
func New(events []types.Event) (*Catalog, error) {
	c := &Catalog{
		events: make([]types.Event, 0, len(events)),
		index:  make(map[string]int, len(events)),
	}
	for i, e := range events {
		if e.ID == "" {
			return nil, fmt.Errorf("event #%d: %w", i, ErrEmptyID)
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		e.Tags = append([]string{}, e.Tags...)
		c.index[e.ID] = len(c.events)
		c.events = append(c.events, e)
	}
	return c, nil
}

// Empty returns a catalog with no events.
func Empty() *Catalog {
	return &Catalog{index: map[string]int{}}
}

// Events returns the events in catalog order. The slice is a copy; the
// events themselves must be treated as read-only.
func (c *Catalog) Events() []types.Event {
	out := make([]types.Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *Catalog) Get(id string) (types.Event, bool) {
	i, ok := c.index[id]
	if !ok {
		return types.Event{}, false
	}
	return c.events[i], true
}

func (c *Catalog) Len() int { return len(c.events) }

// Tags returns the sorted tag vocabulary used by the catalog.
func (c *Catalog) Tags() []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, e := range c.events {
		for _, t := range e.Tags {
			if _, ok := seen[t]; ok || t == "" {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
