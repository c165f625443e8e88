package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"sonard/pkg/types"
)

type failingSupplier struct{ err error }

func (f failingSupplier) Name() string { return "failing" }
func (f failingSupplier) Load(context.Context) ([]types.Event, error) {
	return nil, f.err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestFileSupplier(t *testing.T) {
	d := t.TempDir()
	p := writeFile(t, d, "events.json", `[{"id":"1","name":"A"},{"id":"2","name":"B"}]`)
	evs, err := FileSupplier{Path: p}.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(evs) != 2 || evs[1].Name != "B" {
		t.Fatalf("unexpected: %+v", evs)
	}
}

func TestFileSupplierMissingIsUnavailable(t *testing.T) {
	_, err := FileSupplier{Path: filepath.Join(t.TempDir(), "nope.json")}.Load(context.Background())
	if !IsUnavailable(err) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestFileSupplierMalformedIsNotUnavailable(t *testing.T) {
	p := writeFile(t, t.TempDir(), "events.json", `{"events": [`)
	_, err := FileSupplier{Path: p}.Load(context.Background())
	if err == nil || IsUnavailable(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestFallbackSupplier(t *testing.T) {
	var reason error
	f := &FallbackSupplier{
		Primary:    failingSupplier{err: unavailable("x", errors.New("down"))},
		Fallback:   SampleSupplier{},
		OnFallback: func(err error) { reason = err },
	}
	evs, err := f.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(evs) != 6 {
		t.Fatalf("expected sample catalog, got %d events", len(evs))
	}
	if !IsUnavailable(reason) {
		t.Fatalf("OnFallback not told the reason: %v", reason)
	}
}

func TestFallbackSupplierKeepsOtherErrors(t *testing.T) {
	boom := errors.New("malformed")
	f := &FallbackSupplier{Primary: failingSupplier{err: boom}, Fallback: SampleSupplier{}}
	if _, err := f.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected primary error, got %v", err)
	}
	f = &FallbackSupplier{Primary: failingSupplier{err: unavailable("x", boom)}}
	if _, err := f.Load(context.Background()); !IsUnavailable(err) {
		t.Fatalf("expected unavailable without fallback, got %v", err)
	}
}

func TestHTTPSupplierSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events":[{"id":1,"title":"Remote"}]}`))
	}))
	defer srv.Close()
	h := NewHTTPSupplier(srv.URL, time.Second)
	evs, err := h.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(evs) != 1 || evs[0].ID != "1" || evs[0].Name != "Remote" {
		t.Fatalf("unexpected: %+v", evs)
	}
}

func TestHTTPSupplierRetriesThenUnavailable(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	h := NewHTTPSupplier(srv.URL, time.Second)
	h.Backoff, h.MaxBackoff = time.Millisecond, 2*time.Millisecond
	_, err := h.Load(context.Background())
	if !IsUnavailable(err) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestHTTPSupplierRecoversOnRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"a"}]`))
	}))
	defer srv.Close()
	h := NewHTTPSupplier(srv.URL, time.Second)
	h.Backoff = time.Millisecond
	evs, err := h.Load(context.Background())
	if err != nil || len(evs) != 1 {
		t.Fatalf("expected recovery, got %v %+v", err, evs)
	}
}

func TestHTTPSupplierBadBodyNotRetried(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()
	h := NewHTTPSupplier(srv.URL, time.Second)
	_, err := h.Load(context.Background())
	if err == nil || IsUnavailable(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("decode errors must not be retried, hits=%d", hits)
	}
}

type flakySupplier struct {
	fail   bool
	events []types.Event
}

func (f *flakySupplier) Name() string { return "flaky" }
func (f *flakySupplier) Load(context.Context) ([]types.Event, error) {
	if f.fail {
		return nil, unavailable("flaky", errors.New("offline"))
	}
	return f.events, nil
}

func TestCacheSupplierServesLastGood(t *testing.T) {
	primary := &flakySupplier{events: []types.Event{{ID: "c1", Name: "Cached", Tags: []string{"t"}}}}
	c, err := NewCacheSupplier(primary, t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := c.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	primary.fail = true
	evs, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if len(evs) != 1 || evs[0].Name != "Cached" || evs[0].Tags[0] != "t" {
		t.Fatalf("unexpected cached catalog: %+v", evs)
	}
}

func TestCacheSupplierEmptyCachePassesError(t *testing.T) {
	c, err := NewCacheSupplier(&flakySupplier{fail: true}, t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := c.Load(context.Background()); !IsUnavailable(err) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestWatchSignalsOnWrite(t *testing.T) {
	d := t.TempDir()
	p := writeFile(t, d, "events.json", `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, p, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	writeFile(t, d, "other.json", `[]`)
	writeFile(t, d, "events.json", `[{"id":"1"}]`)
	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatalf("no change signal")
	}
	cancel()
	select {
	case _, ok := <-ch:
		for ok {
			_, ok = <-ch
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("channel not closed after cancel")
	}
}
