package products

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrilog/agrilog/internal/masterdata/shared"
	"github.com/agrilog/agrilog/internal/platform/db"
	internalShared "github.com/agrilog/agrilog/internal/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Product, error)
	Get(ctx context.Context, id uuid.UUID) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id uuid.UUID, product Product) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const productColumns = `id, category, variety, sub_variety, code, description, organic, size_sortable, created_at`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Category, &p.Variety, &p.SubVariety, &p.Code, &p.Description, &p.Organic, &p.SizeSortable, &p.CreatedAt)
	return p, err
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []interface{}{}
	if filters.Search != "" {
		query += ` WHERE variety ILIKE $1 ESCAPE '\' OR sub_variety ILIKE $1 ESCAPE '\' OR code ILIKE $1 ESCAPE '\'`
		args = append(args, filters.Pattern())
	}
	query += ` ORDER BY category ASC, variety ASC, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, db.Classify("products: list", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, db.Classify("products: list", err)
		}
		products = append(products, p)
	}
	return products, db.Classify("products: list", rows.Err())
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return Product{}, db.Classify("products: get", err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	product.ID = uuid.New()
	product.CreatedAt = time.Now().UTC()
	_, err := r.db.Exec(ctx, `INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		product.ID, product.Category, product.Variety, product.SubVariety, product.Code, product.Description,
		product.Organic, product.SizeSortable, product.CreatedAt)
	if err != nil {
		return Product{}, db.Classify("products: create", err)
	}
	return product, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, product Product) (Product, error) {
	query := `UPDATE products SET category = $1, variety = $2, sub_variety = $3, code = $4, description = $5,
		organic = $6, size_sortable = $7 WHERE id = $8 RETURNING ` + productColumns
	updated, err := scanProduct(r.db.QueryRow(ctx, query, product.Category, product.Variety, product.SubVariety,
		product.Code, product.Description, product.Organic, product.SizeSortable, id))
	if err != nil {
		return Product{}, db.Classify("products: update", err)
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return db.Classify("products: delete", err)
	}
	if tag.RowsAffected() == 0 {
		return internalShared.ErrNotFound
	}
	return nil
}
