package discovery

import (
	"strings"

	"golang.org/x/text/cases"

	"sonard/pkg/types"
)

// NormalizeQuery trims and case-folds free-text input.
func NormalizeQuery(q string) string {
	return fold(strings.TrimSpace(q))
}

// fold uses full Unicode case folding; a Caser is stateful so one is made per call.
func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(s)
}

// Evaluate returns the events that pass both the tag filter and the text
// filter, in catalog order.
//
// An event passes the tag filter when it carries any active tag (OR across
// tags). It passes the text filter when its folded name, description or
// location contains the normalized query. Empty filters pass everything.
// The result is never nil so an empty match is distinguishable from "no
// filters applied" (see Filtered).
func Evaluate(events []types.Event, active TagSet, query string) []types.Event {
	q := NormalizeQuery(query)
	out := make([]types.Event, 0, len(events))
	for _, e := range events {
		if active.Len() > 0 && !active.Intersects(e.Tags) {
			continue
		}
		if q != "" && !matchesQuery(e, q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Filtered reports whether either filter is in effect.
func Filtered(active TagSet, query string) bool {
	return active.Len() > 0 || NormalizeQuery(query) != ""
}

func matchesQuery(e types.Event, q string) bool {
	return strings.Contains(fold(e.Name), q) ||
		strings.Contains(fold(e.Description), q) ||
		strings.Contains(fold(e.Location), q)
}
