package types

// Selection is the wire form of the selection state machine.
type Selection struct {
	// True when an event is selected.
	Selected bool `json:"selected"`
	// Selected event id; empty when nothing is selected.
	// example: 3
	EventID string `json:"event_id,omitempty" example:"3"`
}

// View carries everything a renderer needs after a state change.
type View struct {
	// Events to display, in catalog order.
	Displayed []Event `json:"displayed"`
	// Events sharing a tag with the selection (possibly empty).
	Related []Event `json:"related"`
	// Current selection.
	Selection Selection `json:"selection"`
	// Horizontal scroll offset of the idle carousel, in pixels.
	// example: 42.5
	CarouselOffset float64 `json:"carousel_offset" example:"42.5"`
	// Whether the carousel is currently advancing on its own.
	CarouselRunning bool `json:"carousel_running"`
	// Active tag filters, sorted.
	ActiveTags []string `json:"active_tags"`
	// Current free-text query as entered.
	Query string `json:"query"`
	// True when a tag or text filter was applied. Together with an empty
	// Displayed list it means "no events found".
	Filtered bool `json:"filtered"`
	// Size of the loaded catalog.
	CatalogSize int `json:"catalog_size"`
	// Monotonic state version; bumps on every change.
	Version uint64 `json:"version"`
}
