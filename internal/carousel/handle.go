package carousel

import (
	"sync"
	"time"

	"sonard/internal/common/clock"
)

// DefaultFrameInterval approximates one animation frame at 60 Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// Handle is a running frame source. The owner must call Stop on every exit
// path; Stop is idempotent and safe on a nil Handle.
type Handle struct {
	C <-chan time.Time

	once   sync.Once
	ticker *clock.Ticker
}

// Start begins delivering frame ticks on the returned handle's C.
func Start(clk clock.Clock, interval time.Duration) *Handle {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	tk := clk.NewTicker(interval)
	return &Handle{C: tk.C, ticker: tk}
}

func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.once.Do(h.ticker.Stop)
}
