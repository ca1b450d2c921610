package stats

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrilog/agrilog/internal/platform/db"
	"github.com/agrilog/agrilog/internal/shared"
)

// Repository reads aggregates straight from the store; nothing is cached.
type Repository interface {
	Day(ctx context.Context, day shared.Date) (DayFigures, error)
	Totals(ctx context.Context) (Totals, error)
}

type dbtx interface {
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) Day(ctx context.Context, day shared.Date) (DayFigures, error) {
	var f DayFigures
	err := r.db.QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(total_price), 0)::float8
		FROM goods_receipts WHERE arrival_date = $1`, day.Time).Scan(&f.Count, &f.Value)
	if err != nil {
		return DayFigures{}, db.Classify("stats: day", err)
	}
	return f, nil
}

func (r *repository) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := r.db.QueryRow(ctx, `SELECT
		(SELECT COUNT(*) FROM suppliers),
		(SELECT COUNT(*) FROM products),
		(SELECT COUNT(*) FROM goods_receipts)`).Scan(&t.Suppliers, &t.Products, &t.Receipts)
	if err != nil {
		return Totals{}, db.Classify("stats: totals", err)
	}
	return t, nil
}
