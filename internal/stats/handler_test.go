package stats

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilog/agrilog/internal/shared"
)

func newTestRouter(reporter *Reporter) http.Handler {
	return newTestRouterWithTimeout(reporter, 0)
}

func newTestRouterWithTimeout(reporter *Reporter, timeout time.Duration) http.Handler {
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reporter, timeout)
	r := chi.NewRouter()
	r.Route("/api/stats", handler.MountRoutes)
	return r
}

func TestStatsEndpoint(t *testing.T) {
	repo := &fakeRepo{
		days:   map[string]DayFigures{"2024-06-01": {Count: 1, Value: 228}},
		totals: Totals{Suppliers: 1, Products: 2, Receipts: 1},
	}
	reporter := NewReporter(repo, time.UTC).WithClock(fixedClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)))

	rr := httptest.NewRecorder()
	newTestRouter(reporter).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"date":"2024-06-01","todayCount":1,"todayValue":228,"suppliers":1,"products":2,"receipts":1}`, rr.Body.String())
}

func TestStatsEndpointUnavailable(t *testing.T) {
	repo := &fakeRepo{err: shared.Unavailable("stats: day", errors.New("dial tcp: connection refused"))}

	rr := httptest.NewRecorder()
	newTestRouter(NewReporter(repo, time.UTC)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

type gatedRepo struct {
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (g *gatedRepo) Day(ctx context.Context, day shared.Date) (DayFigures, error) {
	if g.calls.Add(1) == 1 {
		close(g.entered)
	}
	<-g.release
	return DayFigures{Count: 5}, nil
}

func (g *gatedRepo) Totals(ctx context.Context) (Totals, error) {
	return Totals{}, nil
}

func TestConcurrentStatsRequestsShareOneComputation(t *testing.T) {
	repo := &gatedRepo{entered: make(chan struct{}), release: make(chan struct{})}
	router := newTestRouter(NewReporter(repo, time.UTC))

	var wg sync.WaitGroup
	codes := make([]int, 4)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
			codes[i] = rr.Code
		}(i)
	}

	<-repo.entered
	time.Sleep(100 * time.Millisecond)
	close(repo.release)
	wg.Wait()

	assert.Equal(t, int32(1), repo.calls.Load())
	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
}

type deadlineRepo struct {
	remaining time.Duration
	bounded   bool
}

func (d *deadlineRepo) Day(ctx context.Context, day shared.Date) (DayFigures, error) {
	deadline, ok := ctx.Deadline()
	d.bounded = ok
	d.remaining = time.Until(deadline)
	return DayFigures{}, nil
}

func (d *deadlineRepo) Totals(ctx context.Context) (Totals, error) {
	return Totals{}, nil
}

func TestSharedComputationIsTimeBounded(t *testing.T) {
	repo := &deadlineRepo{}
	router := newTestRouterWithTimeout(NewReporter(repo, time.UTC), 2*time.Second)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, repo.bounded)
	assert.LessOrEqual(t, repo.remaining, 2*time.Second)
	assert.Greater(t, repo.remaining, time.Duration(0))
}

func TestAbandonedStatsRequestIsUnavailable(t *testing.T) {
	repo := &gatedRepo{entered: make(chan struct{}), release: make(chan struct{})}
	defer close(repo.release)
	router := newTestRouter(NewReporter(repo, time.UTC))

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		router.ServeHTTP(rr, req)
	}()

	<-repo.entered
	cancel()
	<-done

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}
