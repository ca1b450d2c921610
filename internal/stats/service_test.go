package stats

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilog/agrilog/internal/shared"
)

type fakeRepo struct {
	days   map[string]DayFigures
	totals Totals
	err    error
	asked  []shared.Date
}

func (f *fakeRepo) Day(ctx context.Context, day shared.Date) (DayFigures, error) {
	f.asked = append(f.asked, day)
	if f.err != nil {
		return DayFigures{}, f.err
	}
	return f.days[day.String()], nil
}

func (f *fakeRepo) Totals(ctx context.Context) (Totals, error) {
	if f.err != nil {
		return Totals{}, f.err
	}
	return f.totals, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTodayFigures(t *testing.T) {
	repo := &fakeRepo{days: map[string]DayFigures{"2024-06-01": {Count: 3, Value: 512.345}}}
	reporter := NewReporter(repo, time.UTC).WithClock(fixedClock(time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)))

	count, err := reporter.TodayCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	value, err := reporter.TodayValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 512.35, value)
}

func TestTodayValueIsZeroOnEmptyDay(t *testing.T) {
	reporter := NewReporter(&fakeRepo{}, time.UTC).WithClock(fixedClock(time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)))

	value, err := reporter.TodayValue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, value)
}

func TestTodayFollowsConfiguredLocation(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)
	repo := &fakeRepo{}
	// 23:30 UTC on 31 May is already 1 June in Rome.
	reporter := NewReporter(repo, rome).WithClock(fixedClock(time.Date(2024, 5, 31, 23, 30, 0, 0, time.UTC)))

	_, err = reporter.TodayCount(context.Background())
	require.NoError(t, err)
	require.Len(t, repo.asked, 1)
	assert.Equal(t, "2024-06-01", repo.asked[0].String())
}

func TestSummary(t *testing.T) {
	repo := &fakeRepo{
		days:   map[string]DayFigures{"2024-06-01": {Count: 2, Value: 278}},
		totals: Totals{Suppliers: 4, Products: 7, Receipts: 19},
	}
	reporter := NewReporter(repo, time.UTC).WithClock(fixedClock(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)))

	summary, err := reporter.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Date: "2024-06-01", TodayCount: 2, TodayValue: 278, Totals: repo.totals}, summary)
}

func TestSummaryPropagatesBackendFailure(t *testing.T) {
	repo := &fakeRepo{err: shared.Unavailable("stats: day", errors.New("connection refused"))}
	_, err := NewReporter(repo, time.UTC).Summary(context.Background())
	require.ErrorIs(t, err, shared.ErrUnavailable)
}
