package discovery

import "sonard/pkg/types"

// Related returns the events other than selected that share at least one tag
// with it, in catalog order. A selection without tags has no relatives.
func Related(events []types.Event, selected types.Event) []types.Event {
	out := make([]types.Event, 0)
	if len(selected.Tags) == 0 {
		return out
	}
	for _, e := range events {
		if e.ID == selected.ID {
			continue
		}
		for _, t := range selected.Tags {
			if e.HasTag(t) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
