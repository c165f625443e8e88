package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// serverBaseCtx is a process-level context canceled on shutdown so long
// lived handlers such as /stream return promptly.
var serverBaseCtx = context.Background()

// SetBaseContext sets the process-level base context used by handlers.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// joinContexts returns a context canceled when either a or b is done. The
// returned cancel func must be called when the handler ends.
func joinContexts(a, b context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(a)
	stop := context.AfterFunc(b, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// @Summary  Server-Sent Events stream of views
// @Description The first event carries the current view; each later event is
// @Description named after the operation that produced it. Pass frames=0 to
// @Description skip carousel frame events.
// @Tags     view
// @Produce  text/event-stream
// @Param    frames query string false "0 to skip carousel frames"
// @Success  200 {object} types.View
// @Router   /stream [get]
func (h *handlers) stream(w http.ResponseWriter, r *http.Request) {
	fl, ok := w.(http.Flusher)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()

	initial, changes, unsubscribe, err := h.svc.Subscribe(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer unsubscribe()
	skipFrames := r.URL.Query().Get("frames") == "0"

	streamClients.Inc()
	defer streamClients.Dec()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := writeSSE(w, "view", initial); err != nil {
		return
	}
	fl.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-changes:
			if !ok {
				return
			}
			if skipFrames && c.Op == "frame" {
				continue
			}
			if err := writeSSE(w, c.Op, c.View); err != nil {
				return
			}
			fl.Flush()
		}
	}
}

func writeSSE(w io.Writer, event string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, b)
	return err
}
