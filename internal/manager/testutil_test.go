package manager

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"sonard/internal/catalog"
	"sonard/internal/common/clock"
	"sonard/pkg/types"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// newTestManager returns a loaded manager over the sample catalog driven by
// a fake clock.
func newTestManager(t *testing.T, cfg ManagerConfig) (*Manager, *clock.FakeClock) {
	t.Helper()
	clk := clock.Fake(time.Unix(1700000000, 0))
	if cfg.Supplier == nil {
		cfg.Supplier = catalog.StaticSupplier{Events: catalog.Sample()}
	}
	cfg.Clock = clk
	cfg.Logger = zerolog.Nop()
	m := NewWithConfig(cfg)
	t.Cleanup(func() { _ = m.Close() })
	if err := m.Reload(testCtx(t)); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	return m, clk
}

func viewIDs(evs []types.Event) []string {
	out := make([]string, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.ID)
	}
	return out
}

func assertIDs(t *testing.T, what string, evs []types.Event, want ...string) {
	t.Helper()
	got := viewIDs(evs)
	if len(got) != len(want) {
		t.Fatalf("%s: got %v want %v", what, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v want %v", what, got, want)
		}
	}
}

// waitView polls the view until cond holds.
func waitView(t *testing.T, m *Manager, cond func(types.View) bool) types.View {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		v, err := m.View(testCtx(t))
		if err != nil {
			t.Fatalf("View: %v", err)
		}
		if cond(v) {
			return v
		}
		if time.Now().After(deadline) {
			t.Fatalf("condition not met; last view %+v", v)
		}
		time.Sleep(time.Millisecond)
	}
}

// fakeSupplier returns a scripted sequence of results.
type fakeSupplier struct {
	results []fakeResult
	calls   int
}

type fakeResult struct {
	events []types.Event
	err    error
}

func (f *fakeSupplier) Name() string { return "fake" }

func (f *fakeSupplier) Load(context.Context) ([]types.Event, error) {
	r := f.results[len(f.results)-1]
	if f.calls < len(f.results) {
		r = f.results[f.calls]
	}
	f.calls++
	return r.events, r.err
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(_ context.Context, audio io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.ReadAll(audio); err != nil {
		return "", errors.New("read audio")
	}
	return f.text, nil
}
