package masterdata

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrilog/agrilog/internal/platform/httpx"
)

// Handler serves the defaults endpoint.
type Handler struct{}

// NewHandler builds Handler instance.
func NewHandler() *Handler {
	return &Handler{}
}

// MountRoutes registers the defaults route.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.showDefaults)
}

func (h *Handler) showDefaults(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Current())
}
