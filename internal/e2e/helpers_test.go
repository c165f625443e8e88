package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"sonard/internal/catalog"
	"sonard/internal/common/clock"
	"sonard/internal/httpapi"
	"sonard/internal/manager"
	"sonard/pkg/types"
)

// newServer wires a manager over sup behind the real mux. The carousel is
// driven by the returned fake clock.
func newServer(t *testing.T, sup catalog.Supplier) (*httptest.Server, *manager.Manager, *clock.FakeClock) {
	t.Helper()
	clk := clock.Fake(time.Unix(1700000000, 0))
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Supplier: sup,
		Clock:    clk,
		Logger:   zerolog.Nop(),
	})
	t.Cleanup(func() { _ = mgr.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mgr.Reload(ctx); err != nil {
		t.Fatalf("initial reload: %v", err)
	}
	httpapi.SetLogger(zerolog.Nop())
	srv := httptest.NewServer(httpapi.NewMux(mgr))
	t.Cleanup(srv.Close)
	return srv, mgr, clk
}

func do(t *testing.T, method, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, body)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, b
}

func decodeView(t *testing.T, b []byte) types.View {
	t.Helper()
	var v types.View
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("decode view: %v (%s)", err, b)
	}
	return v
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
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v want %v", what, got, want)
		}
	}
}
