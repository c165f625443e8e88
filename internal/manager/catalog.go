package manager

import (
	"context"
	"fmt"

	"sonard/internal/catalog"
	"sonard/pkg/types"
)

// Reload fetches a fresh catalog from the supplier and swaps it in. The load
// runs outside the session loop, so requests keep being served meanwhile.
// A failed reload keeps the previous catalog; only a failed first load
// leaves the manager in the error state.
func (m *Manager) Reload(ctx context.Context) error {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	src := m.supplier.Name()
	events, err := m.supplier.Load(ctx)
	if err == nil {
		var cat *catalog.Catalog
		cat, err = catalog.New(events)
		if err == nil {
			catalogLoadsTotal.WithLabelValues(src, "ok").Inc()
			return m.install(ctx, cat, src)
		}
	}
	catalogLoadsTotal.WithLabelValues(src, "error").Inc()
	m.log.Error().Err(err).Str("source", src).Msg("catalog load failed")
	if derr := m.do(ctx, func() {
		m.loads++
		m.lastErr = err.Error()
		if m.state != StateReady {
			m.state = StateError
		}
	}); derr != nil {
		return derr
	}
	return fmt.Errorf("reload catalog from %s: %w", src, err)
}

// ReplaceCatalog installs events directly, bypassing the supplier.
func (m *Manager) ReplaceCatalog(ctx context.Context, events []types.Event, source string) error {
	cat, err := catalog.New(events)
	if err != nil {
		return err
	}
	if source == "" {
		source = "static"
	}
	return m.install(ctx, cat, source)
}

func (m *Manager) install(ctx context.Context, cat *catalog.Catalog, src string) error {
	err := m.do(ctx, func() {
		m.sess.ReplaceCatalog(cat)
		m.loads++
		m.source = src
		m.loadedAt = m.clk.Now()
		m.lastErr = ""
		m.state = StateReady
		m.ready.Store(true)
		m.commit("reload")
	})
	if err == nil {
		m.log.Info().Str("source", src).Int("events", cat.Len()).Msg("catalog loaded")
	}
	return err
}

// Catalog returns the loaded catalog and its tag vocabulary.
func (m *Manager) Catalog(ctx context.Context) (types.CatalogResponse, error) {
	var cat *catalog.Catalog
	if err := m.do(ctx, func() { cat = m.sess.Catalog() }); err != nil {
		return types.CatalogResponse{}, err
	}
	return types.CatalogResponse{Events: cat.Events(), Tags: cat.Tags()}, nil
}
