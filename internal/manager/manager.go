package manager

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"sonard/internal/carousel"
	"sonard/internal/catalog"
	"sonard/internal/common/clock"
	"sonard/internal/discovery"
	"sonard/pkg/types"
)

// Manager owns one discovery session. All session state below the loop
// marker is touched only from run.
type Manager struct {
	supplier      catalog.Supplier
	clk           clock.Clock
	frameInterval time.Duration
	subBuffer     int
	publisher     EventPublisher
	transcriber   Transcriber
	bus           *Broadcaster
	log           zerolog.Logger
	startTime     time.Time

	reqs      chan request
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	ready     atomic.Bool

	// reloadMu serializes supplier loads; the loads run outside the loop.
	reloadMu sync.Mutex

	// loop-owned
	sess        *discovery.Session
	frames      *carousel.Handle
	state       State
	source      string
	loadedAt    time.Time
	lastErr     string
	transitions uint64
	loads       uint64
}

type request struct {
	fn   func()
	done chan struct{}
}

// New returns a Manager serving the given supplier with default tunables.
func New(supplier catalog.Supplier, logger zerolog.Logger) *Manager {
	return NewWithConfig(ManagerConfig{Supplier: supplier, Logger: logger})
}

// do runs fn on the session loop and waits for it to finish.
func (m *Manager) do(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := request{fn: fn, done: make(chan struct{})}
	select {
	case m.reqs <- req:
	case <-m.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	// An accepted request always runs before the loop looks at quit again.
	<-req.done
	return nil
}

func (m *Manager) run() {
	defer close(m.done)
	defer m.stopFrames()
	defer m.bus.Close()
	for {
		var tick <-chan time.Time
		if m.frames != nil {
			tick = m.frames.C
		}
		select {
		case <-m.quit:
			return
		case req := <-m.reqs:
			req.fn()
			m.syncCarousel()
			close(req.done)
		case <-tick:
			if m.sess.Frame() {
				carouselFramesTotal.Inc()
				m.emit("frame")
			}
			m.syncCarousel()
		}
	}
}

// syncCarousel starts or stops the frame source to match the session.
func (m *Manager) syncCarousel() {
	running := m.sess.CarouselRunning()
	switch {
	case running && m.frames == nil:
		m.frames = carousel.Start(m.clk, m.frameInterval)
		m.log.Debug().Msg("carousel started")
	case !running && m.frames != nil:
		m.stopFrames()
		m.log.Debug().Msg("carousel stopped")
	}
}

func (m *Manager) stopFrames() {
	m.frames.Stop()
	m.frames = nil
}

// commit records a state transition and publishes the resulting view.
func (m *Manager) commit(op string) types.View {
	m.transitions++
	engineTransitionsTotal.WithLabelValues(op).Inc()
	v := m.emit(op)
	displayedEvents.Set(float64(len(v.Displayed)))
	m.log.Debug().Str("op", op).Uint64("version", v.Version).Int("displayed", len(v.Displayed)).Msg("transition")
	return v
}

func (m *Manager) emit(op string) types.View {
	v := m.sess.View()
	c := Change{Op: op, View: v}
	m.publisher.Publish(c)
	m.bus.Publish(c)
	return v
}

// Close stops the session loop, the carousel and every subscription. It is
// safe to call more than once.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() { close(m.quit) })
	<-m.done
	return nil
}
