package suppliers

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
	List(ctx context.Context, filters shared.ListFilters) ([]Supplier, error)
	Get(ctx context.Context, id uuid.UUID) (Supplier, error)
	Create(ctx context.Context, supplier Supplier) (Supplier, error)
	Update(ctx context.Context, id uuid.UUID, supplier Supplier) (Supplier, error)
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

const supplierColumns = `id, legal_name, tax_id, fiscal_code, street, city, postal_code, province, country,
	phone, email, iban, payment_terms, payment_days, discount_pct, organic, organic_certification, notes, created_at`

func scanSupplier(row pgx.Row) (Supplier, error) {
	var s Supplier
	err := row.Scan(&s.ID, &s.LegalName, &s.TaxID, &s.FiscalCode, &s.Street, &s.City, &s.PostalCode, &s.Province, &s.Country,
		&s.Phone, &s.Email, &s.IBAN, &s.PaymentTerms, &s.PaymentDays, &s.DiscountPct, &s.Organic, &s.OrganicCertification, &s.Notes, &s.CreatedAt)
	return s, err
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers`
	args := []interface{}{}
	if filters.Search != "" {
		query += ` WHERE legal_name ILIKE $1 ESCAPE '\' OR tax_id ILIKE $1 ESCAPE '\'`
		args = append(args, filters.Pattern())
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, db.Classify("suppliers: list", err)
	}
	defer rows.Close()

	suppliers := []Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, db.Classify("suppliers: list", err)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, db.Classify("suppliers: list", rows.Err())
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (Supplier, error) {
	s, err := scanSupplier(r.db.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		return Supplier{}, db.Classify("suppliers: get", err)
	}
	return s, nil
}

func (r *repository) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	supplier.ID = uuid.New()
	supplier.CreatedAt = time.Now().UTC()
	query := `INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.Exec(ctx, query, supplier.ID, supplier.LegalName, supplier.TaxID, supplier.FiscalCode, supplier.Street,
		supplier.City, supplier.PostalCode, supplier.Province, supplier.Country, supplier.Phone, supplier.Email, supplier.IBAN,
		supplier.PaymentTerms, supplier.PaymentDays, supplier.DiscountPct, supplier.Organic, supplier.OrganicCertification,
		supplier.Notes, supplier.CreatedAt)
	if err != nil {
		return Supplier{}, db.Classify("suppliers: create", err)
	}
	return supplier, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, supplier Supplier) (Supplier, error) {
	query := `UPDATE suppliers SET legal_name = $1, tax_id = $2, fiscal_code = $3, street = $4, city = $5, postal_code = $6,
		province = $7, country = $8, phone = $9, email = $10, iban = $11, payment_terms = $12, payment_days = $13,
		discount_pct = $14, organic = $15, organic_certification = $16, notes = $17
		WHERE id = $18 RETURNING ` + supplierColumns
	updated, err := scanSupplier(r.db.QueryRow(ctx, query, supplier.LegalName, supplier.TaxID, supplier.FiscalCode, supplier.Street,
		supplier.City, supplier.PostalCode, supplier.Province, supplier.Country, supplier.Phone, supplier.Email, supplier.IBAN,
		supplier.PaymentTerms, supplier.PaymentDays, supplier.DiscountPct, supplier.Organic, supplier.OrganicCertification,
		supplier.Notes, id))
	if err != nil {
		return Supplier{}, db.Classify("suppliers: update", err)
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return db.Classify("suppliers: delete", err)
	}
	if tag.RowsAffected() == 0 {
		return internalShared.ErrNotFound
	}
	return nil
}
