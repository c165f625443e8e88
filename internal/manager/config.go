package manager

import (
	"time"

	"github.com/rs/zerolog"

	"sonard/internal/carousel"
	"sonard/internal/catalog"
	"sonard/internal/common/clock"
	"sonard/internal/discovery"
)

// Defaults applied when corresponding ManagerConfig fields are unset.
const (
	defaultSubscriberBuffer = 16
)

// ManagerConfig encapsulates all tunables for Manager construction.
type ManagerConfig struct {
	// Supplier feeds Reload. Nil means the built-in sample catalog.
	Supplier catalog.Supplier
	// Clock drives carousel frames. Nil means the real clock.
	Clock clock.Clock
	// CarouselStep is the per-frame advance in pixels.
	CarouselStep float64
	// FrameInterval is the time between carousel frames.
	FrameInterval time.Duration
	// SubscriberBuffer bounds each Subscribe channel; the oldest change is
	// dropped when a subscriber falls behind.
	SubscriberBuffer int
	// Publisher receives every change in addition to subscribers.
	Publisher EventPublisher
	// Transcriber backs Listen. Nil means speech recognition is unavailable.
	Transcriber Transcriber
	Logger      zerolog.Logger
}

// NewWithConfig constructs a Manager from ManagerConfig and starts its loop.
// The session starts over an empty catalog; call Reload to populate it.
func NewWithConfig(cfg ManagerConfig) *Manager {
	m := &Manager{
		supplier:      cfg.Supplier,
		clk:           cfg.Clock,
		frameInterval: cfg.FrameInterval,
		subBuffer:     cfg.SubscriberBuffer,
		publisher:     cfg.Publisher,
		transcriber:   cfg.Transcriber,
		log:           cfg.Logger.With().Str("component", "manager").Logger(),
		state:         StateLoading,
		reqs:          make(chan request),
		quit:          make(chan struct{}),
		done:          make(chan struct{}),
	}
	if m.supplier == nil {
		m.supplier = catalog.SampleSupplier{}
	}
	if m.clk == nil {
		m.clk = clock.Real()
	}
	if m.frameInterval <= 0 {
		m.frameInterval = carousel.DefaultFrameInterval
	}
	if m.subBuffer <= 0 {
		m.subBuffer = defaultSubscriberBuffer
	}
	if m.publisher == nil {
		m.publisher = noopPublisher{}
	}
	if m.transcriber == nil {
		m.transcriber = unavailableTranscriber{}
	}
	m.bus = NewBroadcaster()
	m.sess = discovery.NewSession(nil, cfg.CarouselStep)
	m.startTime = m.clk.Now()
	go m.run()
	return m
}
