// Package carousel implements the idle auto-scroll of the event strip.
//
// Driver is plain state advanced one frame at a time by its owner. Handle is
// the cancellable frame source the owner starts while the driver is running.
package carousel

// DefaultStep is the per-frame advance in pixels.
const DefaultStep = 1.0

// Driver tracks the scroll offset of the strip. It is not safe for
// concurrent use; a single owner calls every method.
type Driver struct {
	step     float64
	offset   float64
	content  float64
	viewport float64
	paused   bool
	halted   bool
}

// New returns a driver advancing step pixels per frame. Non-positive steps
// fall back to DefaultStep.
func New(step float64) *Driver {
	if step <= 0 {
		step = DefaultStep
	}
	return &Driver{step: step}
}

// Measure records the strip geometry. The offset is clamped into the new
// extent so a shrinking strip never leaves it past the end.
func (d *Driver) Measure(content, viewport float64) {
	d.content, d.viewport = content, viewport
	if d.offset > d.Extent() {
		d.offset = d.Extent()
	}
}

// Extent is the scrollable distance: content minus viewport, never negative.
func (d *Driver) Extent() float64 {
	if e := d.content - d.viewport; e > 0 {
		return e
	}
	return 0
}

// Measurable reports whether there is anything to scroll.
func (d *Driver) Measurable() bool { return d.Extent() > 0 }

// Running reports whether frames should be scheduled.
func (d *Driver) Running() bool { return !d.halted && !d.paused && d.Measurable() }

func (d *Driver) Paused() bool { return d.paused }
func (d *Driver) Halted() bool { return d.halted }

func (d *Driver) Offset() float64 { return d.offset }

// Frame advances one step, wrapping to zero once the extent is exhausted.
// It reports whether the offset changed; a stopped or unmeasurable driver
// never moves.
func (d *Driver) Frame() bool {
	if !d.Running() {
		return false
	}
	ext := d.Extent()
	if d.offset >= ext {
		d.offset = 0
		return true
	}
	d.offset += d.step
	if d.offset > ext {
		d.offset = ext
	}
	return true
}

// Pause stops advancing while the user interacts with the strip.
func (d *Driver) Pause() { d.paused = true }

// Resume ends an interaction. A non-nil offset is the position the user left
// the strip at. Advancing restarts only if the driver is not halted.
func (d *Driver) Resume(offset *float64) {
	if offset != nil {
		d.ScrollTo(*offset)
	}
	d.paused = false
}

// ScrollTo moves the offset, clamped to [0, Extent].
func (d *Driver) ScrollTo(offset float64) {
	switch {
	case offset < 0:
		offset = 0
	case offset > d.Extent():
		offset = d.Extent()
	}
	d.offset = offset
}

// Halt stops the driver while an event is selected.
func (d *Driver) Halt() { d.halted = true }

// Release lifts a Halt when nothing is selected any more.
func (d *Driver) Release() { d.halted = false }
