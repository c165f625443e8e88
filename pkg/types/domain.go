package types

// Event is a single catalog entry shown by the browser.
type Event struct {
	// Stable identifier, unique within one catalog snapshot.
	// example: 3
	ID string `json:"id" yaml:"id" toml:"id" example:"3"`
	// Display name.
	// example: Rooftop Silent Disco
	Name string `json:"name" yaml:"name" toml:"name" example:"Rooftop Silent Disco"`
	// Display description.
	Description string `json:"description" yaml:"description" toml:"description"`
	// Category labels. Open vocabulary; membership is all that matters.
	// example: ["energetic"]
	Tags []string `json:"tags" yaml:"tags" toml:"tags" example:"[\"energetic\"]"`
	// Display-only temporal fields, passed through untouched.
	// example: 2025-03-14
	Date      string `json:"date,omitempty" yaml:"date,omitempty" toml:"date,omitempty" example:"2025-03-14"`
	StartTime string `json:"startTime,omitempty" yaml:"startTime,omitempty" toml:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty" yaml:"endTime,omitempty" toml:"endTime,omitempty"`
	// Venue.
	// example: Hall B
	Location string `json:"location" yaml:"location" toml:"location" example:"Hall B"`
	// Optional image URL.
	Image string `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
	// Optional 0-100 scores; not used for filtering.
	Energy          *float64 `json:"energy,omitempty" yaml:"energy,omitempty" toml:"energy,omitempty"`
	Informativeness *float64 `json:"informativeness,omitempty" yaml:"informativeness,omitempty" toml:"informativeness,omitempty"`
}

// HasTag reports whether the event carries tag t.
func (e Event) HasTag(t string) bool {
	for _, tag := range e.Tags {
		if tag == t {
			return true
		}
	}
	return false
}
