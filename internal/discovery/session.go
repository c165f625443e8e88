package discovery

import (
	"errors"
	"strings"

	"sonard/internal/carousel"
	"sonard/internal/catalog"
	"sonard/pkg/types"
)

// ErrUnsupportedIntent is returned by Apply for voice intents the session
// does not implement (filter, navigate).
var ErrUnsupportedIntent = errors.New("voice intent not supported")

// Session is the filter, selection and carousel state of one browser.
type Session struct {
	cat     *catalog.Catalog
	tags    TagSet
	query   string
	sel     Selection
	car     *carousel.Driver
	version uint64

	// displayed caches Evaluate for the current inputs.
	displayed []types.Event
}

// NewSession starts a session over cat with empty filters and no selection.
// A nil catalog is treated as empty.
func NewSession(cat *catalog.Catalog, step float64) *Session {
	if cat == nil {
		cat = catalog.Empty()
	}
	s := &Session{cat: cat, tags: NewTagSet(), car: carousel.New(step)}
	s.refresh()
	return s
}

func (s *Session) Catalog() *catalog.Catalog { return s.cat }

func (s *Session) Query() string { return s.query }

func (s *Session) ActiveTags() TagSet { return s.tags.Clone() }

func (s *Session) Selection() Selection { return s.sel }

func (s *Session) Version() uint64 { return s.version }

// SetQuery stores typed search input. An empty string clears the query.
func (s *Session) SetQuery(q string) bool {
	if q == s.query {
		return false
	}
	s.query = q
	s.refresh()
	return true
}

// Transcript feeds recognized speech into the query slot. Blank transcripts
// leave the existing query alone.
func (s *Session) Transcript(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return s.SetQuery(text)
}

// Apply runs a voice command.
func (s *Session) Apply(cmd Command) (bool, error) {
	switch c := cmd.(type) {
	case SearchCommand:
		return s.Transcript(c.Query), nil
	case nil:
		return false, ErrUnknownIntent
	default:
		return false, ErrUnsupportedIntent
	}
}

// SetTags replaces the active tag set.
func (s *Session) SetTags(tags []string) bool {
	next := NewTagSet(tags...)
	if sameSet(next, s.tags) {
		return false
	}
	s.tags = next
	s.refresh()
	return true
}

// ToggleTag adds tag when inactive and removes it when active.
func (s *Session) ToggleTag(tag string) bool {
	if tag == "" {
		return false
	}
	next := s.tags.Clone()
	if next.Has(tag) {
		delete(next, tag)
	} else {
		next[tag] = struct{}{}
	}
	s.tags = next
	s.refresh()
	return true
}

func (s *Session) ClearTags() bool {
	if s.tags.Len() == 0 {
		return false
	}
	s.tags = NewTagSet()
	s.refresh()
	return true
}

// Select applies the select(id) transition. Entering a new selection
// replaces the active tags with the event's tags when it has any and halts
// the carousel. Re-selecting the same id clears the selection but keeps the
// tags it seeded. Unknown ids leave everything unchanged.
func (s *Session) Select(id string) Transition {
	ev, known := s.cat.Get(id)
	next, tr := Next(s.sel, id, known)
	if tr == TransitionIgnored {
		return tr
	}
	s.sel = next
	if tr.Entered() {
		s.car.Halt()
		if len(ev.Tags) > 0 {
			s.tags = NewTagSet(ev.Tags...)
		}
	} else {
		s.car.Release()
	}
	s.refresh()
	return tr
}

// ClearSelection returns to Unselected without touching the tags.
func (s *Session) ClearSelection() bool {
	if !s.sel.IsSelected() {
		return false
	}
	s.sel = Selection{}
	s.car.Release()
	s.refresh()
	return true
}

// SelectedEvent returns the selected event, if any.
func (s *Session) SelectedEvent() (types.Event, bool) {
	id, ok := s.sel.ID()
	if !ok {
		return types.Event{}, false
	}
	return s.cat.Get(id)
}

// ReplaceCatalog swaps in a freshly loaded catalog. A selection whose id is
// gone is dropped; filters are kept.
func (s *Session) ReplaceCatalog(cat *catalog.Catalog) {
	if cat == nil {
		cat = catalog.Empty()
	}
	s.cat = cat
	if id, ok := s.sel.ID(); ok {
		if _, still := cat.Get(id); !still {
			s.sel = Selection{}
			s.car.Release()
		}
	}
	s.refresh()
}

// Displayed is the filtered sequence in catalog order.
func (s *Session) Displayed() []types.Event {
	out := make([]types.Event, len(s.displayed))
	copy(out, s.displayed)
	return out
}

// Related returns the relatives of the selection; empty when unselected.
func (s *Session) Related() []types.Event {
	ev, ok := s.SelectedEvent()
	if !ok {
		return []types.Event{}
	}
	return Related(s.cat.Events(), ev)
}

// Measure records the carousel strip geometry.
func (s *Session) Measure(content, viewport float64) bool {
	before := s.car.Offset()
	wasRunning := s.CarouselRunning()
	s.car.Measure(content, viewport)
	changed := before != s.car.Offset() || wasRunning != s.CarouselRunning()
	if changed {
		s.version++
	}
	return changed
}

// PointerDown pauses the carousel for a user interaction.
func (s *Session) PointerDown() bool {
	if s.car.Paused() {
		return false
	}
	s.car.Pause()
	s.version++
	return true
}

// PointerUp ends an interaction, optionally at a user-adjusted offset.
func (s *Session) PointerUp(offset *float64) bool {
	if !s.car.Paused() && offset == nil {
		return false
	}
	s.car.Resume(offset)
	s.version++
	return true
}

// CarouselRunning reports whether the owner should be delivering frames.
// An empty strip never runs.
func (s *Session) CarouselRunning() bool {
	return len(s.displayed) > 0 && s.car.Running()
}

func (s *Session) CarouselPaused() bool { return s.car.Paused() }

// Frame advances the carousel by one animation frame.
func (s *Session) Frame() bool {
	if !s.CarouselRunning() {
		return false
	}
	if !s.car.Frame() {
		return false
	}
	s.version++
	return true
}

// View projects the current state for a renderer.
func (s *Session) View() types.View {
	id, selected := s.sel.ID()
	return types.View{
		Displayed:       s.Displayed(),
		Related:         s.Related(),
		Selection:       types.Selection{Selected: selected, EventID: id},
		CarouselOffset:  s.car.Offset(),
		CarouselRunning: s.CarouselRunning(),
		ActiveTags:      s.tags.Sorted(),
		Query:           s.query,
		Filtered:        Filtered(s.tags, s.query),
		CatalogSize:     s.cat.Len(),
		Version:         s.version,
	}
}

func (s *Session) refresh() {
	s.displayed = Evaluate(s.cat.Events(), s.tags, s.query)
	s.version++
}

func sameSet(a, b TagSet) bool {
	if a.Len() != b.Len() {
		return false
	}
	for t := range a {
		if !b.Has(t) {
			return false
		}
	}
	return true
}
