package receipts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrilog/agrilog/internal/masterdata/products"
	mdshared "github.com/agrilog/agrilog/internal/masterdata/shared"
	"github.com/agrilog/agrilog/internal/platform/db"
	"github.com/agrilog/agrilog/internal/shared"
)

// Repository persists goods receipts. Reads expand supplier and product references.
type Repository interface {
	List(ctx context.Context, filters mdshared.ListFilters) ([]GoodsReceipt, error)
	Get(ctx context.Context, id uuid.UUID) (GoodsReceipt, error)
	Create(ctx context.Context, receipt GoodsReceipt) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, receipt GoodsReceipt) error
	Delete(ctx context.Context, id uuid.UUID) error
	// LotCodes returns the lot codes already issued for a product on a day,
	// ignoring the receipt identified by exclude.
	LotCodes(ctx context.Context, productID uuid.UUID, day shared.Date, exclude uuid.UUID) ([]string, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const selectExpanded = `SELECT g.id, g.arrival_date, g.arrival_time, g.supplier_id, g.product_id, g.lot_code, g.quality,
	g.packaging, g.package_count, g.gross_weight_kg, g.net_weight_kg, g.price_per_kg, g.shrinkage_pct,
	g.marketable_weight_kg, g.total_price, g.document_number, g.document_date, g.document_attached, g.organic,
	g.notes, g.created_at, g.updated_at,
	s.id, s.legal_name, p.id, p.category, p.variety
FROM goods_receipts g
LEFT JOIN suppliers s ON s.id = g.supplier_id
LEFT JOIN products p ON p.id = g.product_id`

func scanReceipt(row pgx.Row) (GoodsReceipt, error) {
	var (
		g            GoodsReceipt
		arrival      time.Time
		docDate      *time.Time
		supplierID   *uuid.UUID
		supplierName *string
		productID    *uuid.UUID
		productCat   *string
		productVar   *string
	)
	err := row.Scan(&g.ID, &arrival, &g.ArrivalTime, &g.SupplierID, &g.ProductID, &g.LotCode, &g.Quality,
		&g.Packaging, &g.PackageCount, &g.GrossWeightKg, &g.NetWeightKg, &g.PricePerKg, &g.ShrinkagePct,
		&g.MarketableWeightKg, &g.TotalPrice, &g.DocumentNumber, &docDate, &g.DocumentAttached, &g.Organic,
		&g.Notes, &g.CreatedAt, &g.UpdatedAt,
		&supplierID, &supplierName, &productID, &productCat, &productVar)
	if err != nil {
		return GoodsReceipt{}, err
	}
	g.ArrivalDate = shared.DateOf(arrival)
	if docDate != nil {
		d := shared.DateOf(*docDate)
		g.DocumentDate = &d
	}
	if supplierID != nil {
		g.Supplier = &SupplierRef{ID: *supplierID, LegalName: deref(supplierName)}
	}
	if productID != nil {
		g.Product = &ProductRef{ID: *productID, Category: products.Category(deref(productCat)), Variety: deref(productVar)}
	}
	return g, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *repository) List(ctx context.Context, filters mdshared.ListFilters) ([]GoodsReceipt, error) {
	query := selectExpanded
	args := []interface{}{}
	if filters.Search != "" {
		query += ` WHERE g.lot_code ILIKE $1 ESCAPE '\'`
		args = append(args, filters.Pattern())
	}
	query += ` ORDER BY g.created_at DESC, g.id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, db.Classify("receipts: list", err)
	}
	defer rows.Close()

	receipts := []GoodsReceipt{}
	for rows.Next() {
		g, err := scanReceipt(rows)
		if err != nil {
			return nil, db.Classify("receipts: list", err)
		}
		receipts = append(receipts, g)
	}
	return receipts, db.Classify("receipts: list", rows.Err())
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (GoodsReceipt, error) {
	g, err := scanReceipt(r.db.QueryRow(ctx, selectExpanded+` WHERE g.id = $1`, id))
	if err != nil {
		return GoodsReceipt{}, db.Classify("receipts: get", err)
	}
	return g, nil
}

func documentDateArg(d *shared.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

func (r *repository) Create(ctx context.Context, g GoodsReceipt) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO goods_receipts (id, arrival_date, arrival_time, supplier_id, product_id, lot_code, quality,
		packaging, package_count, gross_weight_kg, net_weight_kg, price_per_kg, shrinkage_pct, marketable_weight_kg,
		total_price, document_number, document_date, document_attached, organic, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.db.Exec(ctx, query, id, g.ArrivalDate.Time, g.ArrivalTime, g.SupplierID, g.ProductID, g.LotCode,
		g.Quality, g.Packaging, g.PackageCount, g.GrossWeightKg, g.NetWeightKg, g.PricePerKg, g.ShrinkagePct,
		g.MarketableWeightKg, g.TotalPrice, g.DocumentNumber, documentDateArg(g.DocumentDate), g.DocumentAttached,
		g.Organic, g.Notes, time.Now().UTC())
	if err != nil {
		return uuid.Nil, db.Classify("receipts: create", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, g GoodsReceipt) error {
	query := `UPDATE goods_receipts SET arrival_date = $1, arrival_time = $2, supplier_id = $3, product_id = $4,
		lot_code = $5, quality = $6, packaging = $7, package_count = $8, gross_weight_kg = $9, net_weight_kg = $10,
		price_per_kg = $11, shrinkage_pct = $12, marketable_weight_kg = $13, total_price = $14, document_number = $15,
		document_date = $16, document_attached = $17, organic = $18, notes = $19, updated_at = $20
		WHERE id = $21`
	tag, err := r.db.Exec(ctx, query, g.ArrivalDate.Time, g.ArrivalTime, g.SupplierID, g.ProductID, g.LotCode,
		g.Quality, g.Packaging, g.PackageCount, g.GrossWeightKg, g.NetWeightKg, g.PricePerKg, g.ShrinkagePct,
		g.MarketableWeightKg, g.TotalPrice, g.DocumentNumber, documentDateArg(g.DocumentDate), g.DocumentAttached,
		g.Organic, g.Notes, time.Now().UTC(), id)
	if err != nil {
		return db.Classify("receipts: update", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goods_receipts WHERE id = $1`, id)
	if err != nil {
		return db.Classify("receipts: delete", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) LotCodes(ctx context.Context, productID uuid.UUID, day shared.Date, exclude uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT lot_code FROM goods_receipts WHERE product_id = $1 AND arrival_date = $2 AND id <> $3`,
		productID, day.Time, exclude)
	if err != nil {
		return nil, db.Classify("receipts: lot codes", err)
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, db.Classify("receipts: lot codes", err)
	}
	return codes, nil
}
