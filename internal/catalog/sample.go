package catalog

import "sonard/pkg/types"

// Sample returns the built-in six-event catalog served when no real
// catalog can be loaded and sample fallback is allowed.
func Sample() []types.Event {
	return []types.Event{
		{
			ID:          "1",
			Name:        "Neon Night Run",
			Description: "A glow-in-the-dark 5k loop with pacers and a finish-line DJ.",
			Tags:        []string{"energetic"},
			Date:        "2025-03-14",
			StartTime:   "20:00",
			EndTime:     "22:00",
			Location:    "Riverside Park",
			Energy:      score(92),
		},
		{
			ID:              "2",
			Name:            "Music Industry Panel",
			Description:     "Label heads and independent artists on streaming royalties.",
			Tags:            []string{"informative"},
			Date:            "2025-03-14",
			StartTime:       "14:00",
			EndTime:         "15:30",
			Location:        "Conference Hall A",
			Informativeness: score(85),
		},
		{
			ID:          "3",
			Name:        "Rooftop Silent Disco",
			Description: "Headphones on, three DJ channels, one skyline.",
			Tags:        []string{"energetic"},
			Date:        "2025-03-15",
			StartTime:   "21:00",
			EndTime:     "23:59",
			Location:    "Skyline Terrace",
			Energy:      score(88),
		},
		{
			ID:              "4",
			Name:            "Startup Pitch Breakfast",
			Description:     "Ten founders, five minutes each, coffee included.",
			Tags:            []string{"informative"},
			Date:            "2025-03-15",
			StartTime:       "08:00",
			EndTime:         "10:00",
			Location:        "Innovation Hub",
			Informativeness: score(74),
		},
		{
			ID:          "5",
			Name:        "Street Dance Battle",
			Description: "Crews face off in freestyle rounds judged by the crowd.",
			Tags:        []string{"energetic"},
			Date:        "2025-03-16",
			StartTime:   "17:00",
			EndTime:     "19:00",
			Location:    "Central Plaza",
			Energy:      score(95),
		},
		{
			ID:              "6",
			Name:            "Hackathon Kickoff",
			Description:     "Form teams, hear the challenge briefs and start building.",
			Tags:            []string{"energetic", "informative"},
			Date:            "2025-03-16",
			StartTime:       "10:00",
			EndTime:         "12:00",
			Location:        "Innovation Hub",
			Energy:          score(70),
			Informativeness: score(80),
		},
	}
}

func score(v float64) *float64 { return &v }
