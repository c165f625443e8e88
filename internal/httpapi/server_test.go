package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sonard/internal/catalog"
	"sonard/internal/discovery"
	"sonard/internal/manager"
	"sonard/pkg/types"
)

// mockService records the last call and returns canned results.
type mockService struct {
	view    types.View
	status  types.StatusResponse
	ready   bool
	err     error
	changes chan manager.Change

	lastOp     string
	lastQuery  string
	lastTags   []string
	lastID     string
	lastVoice  types.VoiceRequest
	lastOffset *float64
	measured   [2]float64
	audio      string
}

func (m *mockService) result(op string) (types.View, error) {
	m.lastOp = op
	return m.view, m.err
}

func (m *mockService) View(context.Context) (types.View, error) { return m.result("view") }
func (m *mockService) Catalog(context.Context) (types.CatalogResponse, error) {
	m.lastOp = "catalog"
	return types.CatalogResponse{Events: catalog.Sample(), Tags: []string{"energetic", "informative"}}, m.err
}
func (m *mockService) Search(_ context.Context, q string) (types.View, error) {
	m.lastQuery = q
	return m.result("search")
}
func (m *mockService) Command(_ context.Context, req types.VoiceRequest) (types.View, error) {
	m.lastVoice = req
	return m.result("voice")
}
func (m *mockService) Listen(_ context.Context, audio io.Reader) (types.View, error) {
	b, err := io.ReadAll(audio)
	if err != nil {
		return types.View{}, err
	}
	m.audio = string(b)
	return m.result("listen")
}
func (m *mockService) SetTags(_ context.Context, tags []string) (types.View, error) {
	m.lastTags = tags
	return m.result("set_tags")
}
func (m *mockService) ToggleTag(_ context.Context, tag string) (types.View, error) {
	m.lastTags = []string{tag}
	return m.result("toggle_tag")
}
func (m *mockService) ClearTags(context.Context) (types.View, error) { return m.result("clear_tags") }
func (m *mockService) Select(_ context.Context, id string) (types.View, error) {
	m.lastID = id
	return m.result("select")
}
func (m *mockService) ClearSelection(context.Context) (types.View, error) {
	return m.result("clear_selection")
}
func (m *mockService) Measure(_ context.Context, content, viewport float64) (types.View, error) {
	m.measured = [2]float64{content, viewport}
	return m.result("measure")
}
func (m *mockService) PointerDown(context.Context) (types.View, error) { return m.result("pause") }
func (m *mockService) PointerUp(_ context.Context, offset *float64) (types.View, error) {
	m.lastOffset = offset
	return m.result("resume")
}
func (m *mockService) Reload(context.Context) error {
	m.lastOp = "reload"
	return m.err
}
func (m *mockService) Subscribe(context.Context) (types.View, <-chan manager.Change, func(), error) {
	if m.err != nil {
		return types.View{}, nil, nil, m.err
	}
	return m.view, m.changes, func() {}, nil
}
func (m *mockService) Status(context.Context) (types.StatusResponse, error) { return m.status, nil }
func (m *mockService) Ready() bool                                          { return m.ready }

type mockHTTPError struct {
	msg  string
	code int
}

func (e mockHTTPError) Error() string   { return e.msg }
func (e mockHTTPError) StatusCode() int { return e.code }

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCatalogHandler(t *testing.T) {
	h := NewMux(&mockService{})
	rec := do(t, h, http.MethodGet, "/catalog", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("content-type=%s", ct)
	}
	var body types.CatalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body.Events) != 6 || len(body.Tags) != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestSearchHandler(t *testing.T) {
	svc := &mockService{view: types.View{Query: "music", Filtered: true}}
	h := NewMux(svc)
	rec := do(t, h, http.MethodPost, "/search", `{"query":"music"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if svc.lastQuery != "music" {
		t.Fatalf("query=%q", svc.lastQuery)
	}
	var v types.View
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !v.Filtered || v.Query != "music" {
		t.Fatalf("view=%+v", v)
	}
}

func TestSearchRequiresJSON(t *testing.T) {
	h := NewMux(&mockService{})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewBufferString(`{"query":"x"}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestContentTypeCaseInsensitive(t *testing.T) {
	h := NewMux(&mockService{})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewBufferString(`{"query":"x"}`))
	req.Header.Set("Content-Type", "Application/JSON; charset=utf-8")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with mixed-case content-type, got %d", rec.Code)
	}
}

func TestBadJSON(t *testing.T) {
	h := NewMux(&mockService{})
	for _, body := range []string{"not-json", `{"query":1}`, `{"nope":"x"}`} {
		rec := do(t, h, http.MethodPost, "/search", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d", body, rec.Code)
		}
		var e types.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil || e.Code != http.StatusBadRequest {
			t.Fatalf("error payload=%q", rec.Body.String())
		}
	}
}

func TestBodyTooLarge(t *testing.T) {
	SetMaxBodyBytes(16)
	defer SetMaxBodyBytes(0)
	h := NewMux(&mockService{})
	rec := do(t, h, http.MethodPost, "/search", `{"query":"`+strings.Repeat("x", 64)+`"}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestVoiceHandlerPassesVariant(t *testing.T) {
	svc := &mockService{}
	h := NewMux(svc)
	rec := do(t, h, http.MethodPost, "/voice", `{"intent":"filter","tags":["energetic"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if svc.lastVoice.Intent != types.IntentFilter || len(svc.lastVoice.Tags) != 1 {
		t.Fatalf("voice=%+v", svc.lastVoice)
	}
}

func TestVoiceAudioHandler(t *testing.T) {
	svc := &mockService{}
	h := NewMux(svc)
	req := httptest.NewRequest(http.MethodPost, "/voice/audio", bytes.NewBufferString("RIFF"))
	req.Header.Set("Content-Type", "audio/wav")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || svc.audio != "RIFF" {
		t.Fatalf("status=%d audio=%q", rec.Code, svc.audio)
	}
}

func TestTagRoutes(t *testing.T) {
	svc := &mockService{}
	h := NewMux(svc)
	if rec := do(t, h, http.MethodPut, "/tags", `{"tags":["a","b"]}`); rec.Code != http.StatusOK || svc.lastOp != "set_tags" || len(svc.lastTags) != 2 {
		t.Fatalf("put: %d %s %v", rec.Code, svc.lastOp, svc.lastTags)
	}
	if rec := do(t, h, http.MethodPost, "/tags/energetic", ""); rec.Code != http.StatusOK || svc.lastOp != "toggle_tag" || svc.lastTags[0] != "energetic" {
		t.Fatalf("toggle: %d %s %v", rec.Code, svc.lastOp, svc.lastTags)
	}
	if rec := do(t, h, http.MethodDelete, "/tags", ""); rec.Code != http.StatusOK || svc.lastOp != "clear_tags" {
		t.Fatalf("delete: %d %s", rec.Code, svc.lastOp)
	}
}

func TestSelectRoutes(t *testing.T) {
	svc := &mockService{}
	h := NewMux(svc)
	if rec := do(t, h, http.MethodPost, "/select/3", ""); rec.Code != http.StatusOK || svc.lastID != "3" {
		t.Fatalf("select: %d %q", rec.Code, svc.lastID)
	}
	if rec := do(t, h, http.MethodDelete, "/select", ""); rec.Code != http.StatusOK || svc.lastOp != "clear_selection" {
		t.Fatalf("clear: %d %s", rec.Code, svc.lastOp)
	}
}

func TestCarouselRoutes(t *testing.T) {
	svc := &mockService{}
	h := NewMux(svc)
	if rec := do(t, h, http.MethodPost, "/carousel/measure", `{"content_width":2400,"viewport_width":800}`); rec.Code != http.StatusOK || svc.measured != [2]float64{2400, 800} {
		t.Fatalf("measure: %d %v", rec.Code, svc.measured)
	}
	if rec := do(t, h, http.MethodPost, "/carousel/pause", ""); rec.Code != http.StatusOK || svc.lastOp != "pause" {
		t.Fatalf("pause: %d", rec.Code)
	}
	if rec := do(t, h, http.MethodPost, "/carousel/resume", ""); rec.Code != http.StatusOK || svc.lastOffset != nil {
		t.Fatalf("resume without body: %d %v", rec.Code, svc.lastOffset)
	}
	if rec := do(t, h, http.MethodPost, "/carousel/resume", `{"offset":120}`); rec.Code != http.StatusOK || svc.lastOffset == nil || *svc.lastOffset != 120 {
		t.Fatalf("resume with offset: %d %v", rec.Code, svc.lastOffset)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", manager.ErrEventNotFound("9"), http.StatusNotFound},
		{"unknown intent", discovery.ErrUnknownIntent, http.StatusBadRequest},
		{"unsupported intent", discovery.ErrUnsupportedIntent, http.StatusNotImplemented},
		{"recognition failed", &discovery.RecognitionError{Reason: "silence"}, http.StatusUnprocessableEntity},
		{"recognition unavailable", discovery.ErrRecognitionUnavailable, http.StatusServiceUnavailable},
		{"closed", manager.ErrClosed, http.StatusServiceUnavailable},
		{"http error", mockHTTPError{msg: "teapot", code: http.StatusTeapot}, http.StatusTeapot},
		{"generic", io.EOF, http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewMux(&mockService{err: c.err})
			rec := do(t, h, http.MethodPost, "/select/9", "")
			if rec.Code != c.want {
				t.Fatalf("status=%d want %d", rec.Code, c.want)
			}
		})
	}
}

func TestReloadHandler(t *testing.T) {
	svc := &mockService{status: types.StatusResponse{State: "ready", CatalogSize: 6}}
	h := NewMux(svc)
	rec := do(t, h, http.MethodPost, "/catalog/reload", "")
	if rec.Code != http.StatusOK || svc.lastOp != "reload" {
		t.Fatalf("status=%d op=%s", rec.Code, svc.lastOp)
	}
	svc.err = errors.Join(catalog.ErrCatalogUnavailable, errors.New("dial tcp"))
	rec = do(t, h, http.MethodPost, "/catalog/reload", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestStatusHandler(t *testing.T) {
	svc := &mockService{status: types.StatusResponse{State: "ready", CatalogSize: 6}}
	h := NewMux(svc)
	rec := do(t, h, http.MethodGet, "/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var body types.StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.CatalogSize != 6 || body.State != "ready" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestReadyz(t *testing.T) {
	h := NewMux(&mockService{ready: true})
	if rec := do(t, h, http.MethodGet, "/readyz", ""); rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	h = NewMux(&mockService{ready: false})
	rec := do(t, h, http.MethodGet, "/readyz", "")
	if rec.Code != http.StatusServiceUnavailable || !strings.Contains(rec.Body.String(), "loading") {
		t.Fatalf("status=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestCORSAndSecurityHeaders(t *testing.T) {
	SetCORSOptions(true, []string{"*"}, []string{"GET", "POST", "OPTIONS"}, []string{"Content-Type"})
	defer SetCORSOptions(false, nil, nil, nil)

	h := NewMux(&mockService{})
	req := httptest.NewRequest(http.MethodGet, "/view", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected X-Content-Type-Options=nosniff, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatalf("expected Access-Control-Allow-Origin to be set")
	}
}

func TestCORSDisabledByDefault(t *testing.T) {
	h := NewMux(&mockService{})
	req := httptest.NewRequest(http.MethodGet, "/view", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected CORS header %q", got)
	}
}
