package stats

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrilog/agrilog/internal/shared"
)

// Reporter computes the dashboard figures on every call.
type Reporter struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

// NewReporter builds a reporter whose "today" is the calendar day in loc.
func NewReporter(repo Repository, loc *time.Location) *Reporter {
	if loc == nil {
		loc = time.Local
	}
	return &Reporter{repo: repo, loc: loc, now: time.Now}
}

// WithClock overrides the time source.
func (r *Reporter) WithClock(now func() time.Time) *Reporter {
	r.now = now
	return r
}

// Today returns the current calendar day in the reporter's location.
func (r *Reporter) Today() shared.Date {
	return shared.DateOf(r.now().In(r.loc))
}

// TodayCount is the number of receipts that arrived today.
func (r *Reporter) TodayCount(ctx context.Context) (int, error) {
	f, err := r.repo.Day(ctx, r.Today())
	if err != nil {
		return 0, err
	}
	return f.Count, nil
}

// TodayValue is the sum of today's receipt totals, 0 when there are none.
func (r *Reporter) TodayValue(ctx context.Context) (float64, error) {
	f, err := r.repo.Day(ctx, r.Today())
	if err != nil {
		return 0, err
	}
	return roundCurrency(f.Value), nil
}

// Totals counts suppliers, products and receipts.
func (r *Reporter) Totals(ctx context.Context) (Totals, error) {
	return r.repo.Totals(ctx)
}

// Summary gathers every figure of the dashboard.
func (r *Reporter) Summary(ctx context.Context) (Summary, error) {
	today := r.Today()
	f, err := r.repo.Day(ctx, today)
	if err != nil {
		return Summary{}, err
	}
	totals, err := r.repo.Totals(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Date:       today.String(),
		TodayCount: f.Count,
		TodayValue: roundCurrency(f.Value),
		Totals:     totals,
	}, nil
}

func roundCurrency(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
