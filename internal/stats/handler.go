package stats

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/agrilog/agrilog/internal/platform/httpx"
	"github.com/agrilog/agrilog/internal/shared"
)

const defaultTimeout = 30 * time.Second

type Handler struct {
	logger   *slog.Logger
	reporter *Reporter
	timeout  time.Duration
	group    singleflight.Group
}

// NewHandler bounds each shared computation by timeout; zero means 30s.
func NewHandler(logger *slog.Logger, reporter *Reporter, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Handler{logger: logger, reporter: reporter, timeout: timeout}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Summary)
}

// Summary serves the dashboard figures. Concurrent requests share one computation.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summary(r.Context())
	if err != nil {
		h.logger.Error("stats summary failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

func (h *Handler) summary(ctx context.Context) (Summary, error) {
	ch := h.group.DoChan("summary", func() (interface{}, error) {
		// Detached from the first caller, bounded by the handler timeout.
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.timeout)
		defer cancel()
		return h.reporter.Summary(callCtx)
	})
	select {
	case <-ctx.Done():
		return Summary{}, shared.Unavailable("stats: summary", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return Summary{}, res.Err
		}
		return res.Val.(Summary), nil
	}
}
