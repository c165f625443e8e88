package discovery

import (
	"testing"

	"sonard/internal/catalog"
	"sonard/pkg/types"
)

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Sample())
	if err != nil {
		t.Fatalf("sample catalog: %v", err)
	}
	return c
}

func ids(evs []types.Event) []string {
	out := make([]string, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.ID)
	}
	return out
}

func assertIDs(t *testing.T, what string, evs []types.Event, want ...string) {
	t.Helper()
	got := ids(evs)
	if len(got) != len(want) {
		t.Fatalf("%s: got %v want %v", what, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v want %v", what, got, want)
		}
	}
}
