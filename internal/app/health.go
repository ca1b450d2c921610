package app

import (
	"context"
	"net/http"
	"time"

	"github.com/agrilog/agrilog/internal/platform/httpx"
)

// Pinger is satisfied by the pgx pool and the Redis backed stores.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReport is the body of GET /api/health.
type HealthReport struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Database    string    `json:"database"`
	Cache       string    `json:"cache"`
}

func healthHandler(cfg *Config, database, cache Pinger) http.HandlerFunc {
	env := "development"
	if cfg != nil {
		env = cfg.AppEnv
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		report := HealthReport{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Environment: env,
			Database:    probe(ctx, database),
			Cache:       probe(ctx, cache),
		}
		status := http.StatusOK
		if report.Database != "connected" {
			report.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		httpx.JSON(w, status, report)
	}
}

func probe(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	if err := p.Ping(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}
