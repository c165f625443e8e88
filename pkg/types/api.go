package types

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	// Free-text query; matched against name, description and location.
	// example: music
	Query string `json:"query" example:"music"`
}

// TagsRequest is the body of PUT /tags.
type TagsRequest struct {
	// Replacement set of active tags.
	// example: ["energetic"]
	Tags []string `json:"tags" example:"[\"energetic\"]"`
}

// VoiceIntent names the variant of a voice command.
type VoiceIntent string

const (
	IntentSearch   VoiceIntent = "search"
	IntentFilter   VoiceIntent = "filter"
	IntentNavigate VoiceIntent = "navigate"
)

// VoiceRequest is the body of POST /voice. Either Transcript is set (the
// plain recognizer output) or Intent selects a structured command.
type VoiceRequest struct {
	// Raw transcript. Treated as a search command.
	// example: music panel
	Transcript string `json:"transcript,omitempty" example:"music panel"`
	// Structured command variant.
	// example: search
	Intent VoiceIntent `json:"intent,omitempty" example:"search"`
	// Payload of the search variant.
	Query string `json:"query,omitempty"`
	// Payload of the filter variant.
	Tags []string `json:"tags,omitempty"`
	// Payload of the navigate variant.
	Target string `json:"target,omitempty"`
}

// MeasureRequest is the body of POST /carousel/measure.
type MeasureRequest struct {
	// Total scrollable content width in pixels.
	// example: 2400
	ContentWidth float64 `json:"content_width" example:"2400"`
	// Visible viewport width in pixels.
	// example: 800
	ViewportWidth float64 `json:"viewport_width" example:"800"`
}

// ResumeRequest is the optional body of POST /carousel/resume.
type ResumeRequest struct {
	// Offset the user left the strip at; nil keeps the current offset.
	Offset *float64 `json:"offset,omitempty"`
}

// CatalogResponse is returned by GET /catalog.
type CatalogResponse struct {
	// Events in catalog order.
	Events []Event `json:"events"`
	// Sorted tag vocabulary.
	Tags []string `json:"tags"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Overall state: loading, ready or error.
	// example: ready
	State string `json:"state" example:"ready"`
	// Number of events in the loaded catalog.
	// example: 6
	CatalogSize int `json:"catalog_size" example:"6"`
	// Name of the supplier that produced the catalog.
	// example: file
	CatalogSource string `json:"catalog_source" example:"file"`
	// Unix time of the last successful catalog load.
	LoadedAtUnix int64 `json:"loaded_at_unix,omitempty"`
	// Current selection.
	Selection Selection `json:"selection"`
	// Carousel scheduling state.
	CarouselRunning bool `json:"carousel_running"`
	CarouselPaused  bool `json:"carousel_paused"`
	// Number of live /stream subscribers.
	Subscribers int `json:"subscribers"`
	// Total state transitions applied.
	TransitionsTotal uint64 `json:"transitions_total"`
	// Total catalog loads attempted.
	LoadsTotal uint64 `json:"loads_total"`
	// Last error observed by the manager (if any).
	LastError string `json:"last_error,omitempty"`
	// Uptime of the server in seconds.
	UptimeSeconds int64 `json:"uptime_seconds"`
	// Server time in unix seconds.
	ServerTimeUnix int64 `json:"server_time_unix"`
}
