// Package stats aggregates receipts for the dashboard.
package stats

// Totals counts the records of each collection.
type Totals struct {
	Suppliers int `json:"suppliers"`
	Products  int `json:"products"`
	Receipts  int `json:"receipts"`
}

// DayFigures summarises the receipts of a single arrival day.
type DayFigures struct {
	Count int
	Value float64
}

// Summary is the body of GET /api/stats.
type Summary struct {
	Date       string  `json:"date"`
	TodayCount int     `json:"todayCount"`
	TodayValue float64 `json:"todayValue"`
	Totals
}
