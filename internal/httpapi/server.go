package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sonard/internal/manager"
	"sonard/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	View(ctx context.Context) (types.View, error)
	Catalog(ctx context.Context) (types.CatalogResponse, error)
	Search(ctx context.Context, query string) (types.View, error)
	Command(ctx context.Context, req types.VoiceRequest) (types.View, error)
	Listen(ctx context.Context, audio io.Reader) (types.View, error)
	SetTags(ctx context.Context, tags []string) (types.View, error)
	ToggleTag(ctx context.Context, tag string) (types.View, error)
	ClearTags(ctx context.Context) (types.View, error)
	Select(ctx context.Context, id string) (types.View, error)
	ClearSelection(ctx context.Context) (types.View, error)
	Measure(ctx context.Context, content, viewport float64) (types.View, error)
	PointerDown(ctx context.Context) (types.View, error)
	PointerUp(ctx context.Context, offset *float64) (types.View, error)
	Reload(ctx context.Context) error
	Subscribe(ctx context.Context) (types.View, <-chan manager.Change, func(), error)
	Status(ctx context.Context) (types.StatusResponse, error)
	Ready() bool
}

type handlers struct {
	svc Service
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if c := corsMiddleware(); c != nil {
		r.Use(c)
	}
	r.Use(middleware.Compress(5))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	h := &handlers{svc: svc}

	r.Get("/catalog", h.catalog)
	r.Post("/catalog/reload", h.reload)
	r.Get("/view", h.view)
	r.Post("/search", h.search)
	r.Post("/voice", h.voice)
	r.Post("/voice/audio", h.voiceAudio)

	r.Route("/tags", func(r chi.Router) {
		r.Put("/", h.setTags)
		r.Delete("/", h.clearTags)
		r.Post("/{tag}", h.toggleTag)
	})
	r.Post("/select/{id}", h.selectEvent)
	r.Delete("/select", h.clearSelection)

	r.Route("/carousel", func(r chi.Router) {
		r.Post("/measure", h.measure)
		r.Post("/pause", h.pause)
		r.Post("/resume", h.resume)
	})

	r.Get("/stream", h.stream)
	r.Get("/status", h.status)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// decodeJSON enforces the JSON content type and body limit. It writes the
// error response itself and reports whether decoding succeeded. An empty
// body is accepted when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	if allowEmpty && r.ContentLength == 0 {
		return true
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// respond writes the view, or maps err to a status code. Handlers whose
// request was canceled write nothing.
func respond(w http.ResponseWriter, r *http.Request, v types.View, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if r.Context().Err() != nil {
		return
	}
	status := statusFor(err)
	if status >= 500 {
		ev := zlog.Error().Err(err).Str("path", r.URL.Path).Int("status", status)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			ev = ev.Str("request_id", rid)
		}
		ev.Msg("request failed")
	}
	writeJSONError(w, status, err.Error())
}

// @Summary  Full event catalog
// @Tags     catalog
// @Produce  json
// @Success  200 {object} types.CatalogResponse
// @Router   /catalog [get]
func (h *handlers) catalog(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Catalog(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, resp)
}

// @Summary  Reload the catalog from its supplier
// @Tags     catalog
// @Produce  json
// @Success  200 {object} types.StatusResponse
// @Failure  502 {object} types.ErrorResponse
// @Router   /catalog/reload [post]
func (h *handlers) reload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	if reloadTimeout > 0 {
		var tcancel context.CancelFunc
		ctx, tcancel = context.WithTimeout(ctx, reloadTimeout)
		defer tcancel()
	}
	if err := h.svc.Reload(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	st, err := h.svc.Status(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, st)
}

// @Summary  Current view
// @Tags     view
// @Produce  json
// @Success  200 {object} types.View
// @Router   /view [get]
func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.View(r.Context())
	respond(w, r, v, err)
}

// @Summary  Typed search
// @Tags     filter
// @Accept   json
// @Produce  json
// @Param    body body types.SearchRequest true "query"
// @Success  200 {object} types.View
// @Router   /search [post]
func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	var req types.SearchRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	v, err := h.svc.Search(r.Context(), req.Query)
	respond(w, r, v, err)
}

// @Summary  Voice command or transcript
// @Tags     voice
// @Accept   json
// @Produce  json
// @Param    body body types.VoiceRequest true "transcript or tagged command"
// @Success  200 {object} types.View
// @Failure  400 {object} types.ErrorResponse
// @Failure  501 {object} types.ErrorResponse
// @Router   /voice [post]
func (h *handlers) voice(w http.ResponseWriter, r *http.Request) {
	var req types.VoiceRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	v, err := h.svc.Command(r.Context(), req)
	respond(w, r, v, err)
}

// @Summary  Transcribe recorded speech and search with it
// @Tags     voice
// @Accept   octet-stream
// @Produce  json
// @Success  200 {object} types.View
// @Failure  422 {object} types.ErrorResponse
// @Failure  503 {object} types.ErrorResponse
// @Router   /voice/audio [post]
func (h *handlers) voiceAudio(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	v, err := h.svc.Listen(r.Context(), body)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	respond(w, r, v, err)
}

// @Summary  Replace active tags
// @Tags     filter
// @Accept   json
// @Produce  json
// @Param    body body types.TagsRequest true "tags"
// @Success  200 {object} types.View
// @Router   /tags [put]
func (h *handlers) setTags(w http.ResponseWriter, r *http.Request) {
	var req types.TagsRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	v, err := h.svc.SetTags(r.Context(), req.Tags)
	respond(w, r, v, err)
}

// @Summary  Clear active tags
// @Tags     filter
// @Produce  json
// @Success  200 {object} types.View
// @Router   /tags [delete]
func (h *handlers) clearTags(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ClearTags(r.Context())
	respond(w, r, v, err)
}

// @Summary  Toggle one tag
// @Tags     filter
// @Produce  json
// @Param    tag path string true "tag"
// @Success  200 {object} types.View
// @Router   /tags/{tag} [post]
func (h *handlers) toggleTag(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ToggleTag(r.Context(), chi.URLParam(r, "tag"))
	respond(w, r, v, err)
}

// @Summary  Select or deselect an event
// @Tags     selection
// @Produce  json
// @Param    id path string true "event id"
// @Success  200 {object} types.View
// @Failure  404 {object} types.ErrorResponse
// @Router   /select/{id} [post]
func (h *handlers) selectEvent(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Select(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, v, err)
}

// @Summary  Clear the selection
// @Tags     selection
// @Produce  json
// @Success  200 {object} types.View
// @Router   /select [delete]
func (h *handlers) clearSelection(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ClearSelection(r.Context())
	respond(w, r, v, err)
}

// @Summary  Report carousel geometry
// @Tags     carousel
// @Accept   json
// @Produce  json
// @Param    body body types.MeasureRequest true "geometry"
// @Success  200 {object} types.View
// @Router   /carousel/measure [post]
func (h *handlers) measure(w http.ResponseWriter, r *http.Request) {
	var req types.MeasureRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	v, err := h.svc.Measure(r.Context(), req.ContentWidth, req.ViewportWidth)
	respond(w, r, v, err)
}

// @Summary  Pause the carousel for an interaction
// @Tags     carousel
// @Produce  json
// @Success  200 {object} types.View
// @Router   /carousel/pause [post]
func (h *handlers) pause(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.PointerDown(r.Context())
	respond(w, r, v, err)
}

// @Summary  End an interaction
// @Tags     carousel
// @Accept   json
// @Produce  json
// @Param    body body types.ResumeRequest false "offset"
// @Success  200 {object} types.View
// @Router   /carousel/resume [post]
func (h *handlers) resume(w http.ResponseWriter, r *http.Request) {
	var req types.ResumeRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}
	v, err := h.svc.PointerUp(r.Context(), req.Offset)
	respond(w, r, v, err)
}

// @Summary  Service status
// @Tags     ops
// @Produce  json
// @Success  200 {object} types.StatusResponse
// @Router   /status [get]
func (h *handlers) status(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, st)
}
