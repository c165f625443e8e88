package manager

import (
	"context"

	"sonard/pkg/types"
)

// Ready reports whether a catalog has been installed.
func (m *Manager) Ready() bool { return m.ready.Load() }

// Status builds a detailed status response for /status.
func (m *Manager) Status(ctx context.Context) (types.StatusResponse, error) {
	var resp types.StatusResponse
	err := m.do(ctx, func() {
		id, selected := m.sess.Selection().ID()
		now := m.clk.Now()
		resp = types.StatusResponse{
			State:            string(m.state),
			CatalogSize:      m.sess.Catalog().Len(),
			CatalogSource:    m.source,
			Selection:        types.Selection{Selected: selected, EventID: id},
			CarouselRunning:  m.sess.CarouselRunning(),
			CarouselPaused:   m.sess.CarouselPaused(),
			Subscribers:      m.bus.Len(),
			TransitionsTotal: m.transitions,
			LoadsTotal:       m.loads,
			LastError:        m.lastErr,
			UptimeSeconds:    int64(now.Sub(m.startTime).Seconds()),
			ServerTimeUnix:   now.Unix(),
		}
		if !m.loadedAt.IsZero() {
			resp.LoadedAtUnix = m.loadedAt.Unix()
		}
	})
	return resp, err
}
