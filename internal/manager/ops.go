package manager

import (
	"context"

	"sonard/internal/discovery"
	"sonard/pkg/types"
)

// mutate runs fn on the loop and commits op when fn reports a change. The
// returned view is current either way.
func (m *Manager) mutate(ctx context.Context, op string, fn func(*discovery.Session) bool) (types.View, error) {
	var v types.View
	err := m.do(ctx, func() {
		if fn(m.sess) {
			v = m.commit(op)
			return
		}
		v = m.sess.View()
	})
	return v, err
}

// View returns the current view without changing anything.
func (m *Manager) View(ctx context.Context) (types.View, error) {
	var v types.View
	err := m.do(ctx, func() { v = m.sess.View() })
	return v, err
}

// Search applies typed search input. An empty query clears the text filter.
func (m *Manager) Search(ctx context.Context, query string) (types.View, error) {
	return m.mutate(ctx, "search", func(s *discovery.Session) bool { return s.SetQuery(query) })
}

// Transcript applies recognized speech as a search. Blank transcripts keep
// the current query.
func (m *Manager) Transcript(ctx context.Context, text string) (types.View, error) {
	return m.mutate(ctx, "voice", func(s *discovery.Session) bool { return s.Transcript(text) })
}

// Command decodes and applies a structured voice command.
func (m *Manager) Command(ctx context.Context, req types.VoiceRequest) (types.View, error) {
	cmd, err := discovery.ParseCommand(req)
	if err != nil {
		return types.View{}, err
	}
	var applyErr error
	v, err := m.mutate(ctx, "voice", func(s *discovery.Session) bool {
		changed, err := s.Apply(cmd)
		applyErr = err
		return changed
	})
	if err != nil {
		return types.View{}, err
	}
	if applyErr != nil {
		m.log.Debug().Str("intent", string(cmd.Intent())).Err(applyErr).Msg("voice command rejected")
		return v, applyErr
	}
	return v, nil
}

// SetTags replaces the active tag filters.
func (m *Manager) SetTags(ctx context.Context, tags []string) (types.View, error) {
	return m.mutate(ctx, "set_tags", func(s *discovery.Session) bool { return s.SetTags(tags) })
}

// ToggleTag flips one tag filter.
func (m *Manager) ToggleTag(ctx context.Context, tag string) (types.View, error) {
	return m.mutate(ctx, "toggle_tag", func(s *discovery.Session) bool { return s.ToggleTag(tag) })
}

func (m *Manager) ClearTags(ctx context.Context) (types.View, error) {
	return m.mutate(ctx, "clear_tags", func(s *discovery.Session) bool { return s.ClearTags() })
}

// Select applies the select(id) toggle. Unknown ids leave the session
// untouched and return an event-not-found error alongside the current view.
func (m *Manager) Select(ctx context.Context, id string) (types.View, error) {
	var tr discovery.Transition
	v, err := m.mutate(ctx, "select", func(s *discovery.Session) bool {
		tr = s.Select(id)
		return tr != discovery.TransitionIgnored
	})
	if err != nil {
		return types.View{}, err
	}
	if tr == discovery.TransitionIgnored {
		return v, ErrEventNotFound(id)
	}
	m.log.Debug().Str("event_id", id).Str("transition", tr.String()).Msg("select")
	return v, nil
}

func (m *Manager) ClearSelection(ctx context.Context) (types.View, error) {
	return m.mutate(ctx, "clear_selection", func(s *discovery.Session) bool { return s.ClearSelection() })
}

// Measure reports the carousel strip geometry.
func (m *Manager) Measure(ctx context.Context, content, viewport float64) (types.View, error) {
	return m.mutate(ctx, "measure", func(s *discovery.Session) bool { return s.Measure(content, viewport) })
}

// PointerDown pauses the carousel for a user interaction.
func (m *Manager) PointerDown(ctx context.Context) (types.View, error) {
	return m.mutate(ctx, "pause", func(s *discovery.Session) bool { return s.PointerDown() })
}

// PointerUp ends an interaction; offset, when set, is where the user left
// the strip.
func (m *Manager) PointerUp(ctx context.Context, offset *float64) (types.View, error) {
	return m.mutate(ctx, "resume", func(s *discovery.Session) bool { return s.PointerUp(offset) })
}

// Subscribe returns the current view and a channel of subsequent changes.
// Both are taken on the loop so no change falls between them. The channel
// is closed by cancel or Close.
func (m *Manager) Subscribe(ctx context.Context) (types.View, <-chan Change, func(), error) {
	var (
		v      types.View
		ch     <-chan Change
		cancel func()
	)
	err := m.do(ctx, func() {
		v = m.sess.View()
		ch, cancel = m.bus.Subscribe(m.subBuffer)
	})
	if err != nil {
		return types.View{}, nil, nil, err
	}
	return v, ch, cancel, nil
}
