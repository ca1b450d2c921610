package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agrilog/agrilog/internal/masterdata"
	"github.com/agrilog/agrilog/internal/masterdata/products"
	"github.com/agrilog/agrilog/internal/masterdata/suppliers"
	"github.com/agrilog/agrilog/internal/observability"
	"github.com/agrilog/agrilog/internal/platform/httpx"
	"github.com/agrilog/agrilog/internal/receipts"
	"github.com/agrilog/agrilog/internal/stats"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Database         Pinger
	Cache            Pinger
	DefaultsHandler  *masterdata.Handler
	SuppliersHandler *suppliers.Handler
	ProductsHandler  *products.Handler
	ReceiptsHandler  *receipts.Handler
	StatsHandler     *stats.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with the API routes.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}
	r.Use(requestLogger(params.Logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusNotFound, httpx.KindNotFound, "route not found", nil)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler(params.Config, params.Database, params.Cache))
		if params.DefaultsHandler != nil {
			r.Route("/defaults", params.DefaultsHandler.MountRoutes)
		}
		if params.SuppliersHandler != nil {
			r.Route("/suppliers", params.SuppliersHandler.MountRoutes)
		}
		if params.ProductsHandler != nil {
			r.Route("/products", params.ProductsHandler.MountRoutes)
		}
		if params.ReceiptsHandler != nil {
			r.Route("/receipts", params.ReceiptsHandler.MountRoutes)
		}
		if params.StatsHandler != nil {
			r.Route("/stats", params.StatsHandler.MountRoutes)
		}
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}
	return r
}
