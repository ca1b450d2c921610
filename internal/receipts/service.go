package receipts

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/agrilog/agrilog/internal/masterdata/products"
	mdshared "github.com/agrilog/agrilog/internal/masterdata/shared"
	"github.com/agrilog/agrilog/internal/masterdata/suppliers"
	"github.com/agrilog/agrilog/internal/shared"
)

// SupplierReader resolves supplier references.
type SupplierReader interface {
	Get(ctx context.Context, id uuid.UUID) (suppliers.Supplier, error)
}

// ProductReader resolves product references.
type ProductReader interface {
	Get(ctx context.Context, id uuid.UUID) (products.Product, error)
}

// Observer is notified about persisted receipts.
type Observer interface {
	ReceiptRecorded(category string, marketableKg, total float64)
}

// Preview is the derivation of a receipt input without persisting it.
type Preview struct {
	NetWeightKg        float64 `json:"netWeightKg"`
	MarketableWeightKg float64 `json:"marketableWeightKg"`
	TotalPrice         float64 `json:"totalPrice"`
	LotCode            string  `json:"lotCode"`
}

type Service struct {
	repo      Repository
	suppliers SupplierReader
	products  ProductReader
	observer  Observer
}

func NewService(repo Repository, suppliers SupplierReader, products ProductReader) *Service {
	return &Service{repo: repo, suppliers: suppliers, products: products}
}

// WithObserver attaches an observer for recorded receipts.
func (s *Service) WithObserver(o Observer) *Service {
	s.observer = o
	return s
}

func (s *Service) List(ctx context.Context, filters mdshared.ListFilters) ([]GoodsReceipt, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (GoodsReceipt, error) {
	return s.repo.Get(ctx, id)
}

// prepare validates the input, resolves both references and fills the derived fields.
// The returned product is needed for the lot code category.
func (s *Service) prepare(ctx context.Context, input ReceiptInput) (GoodsReceipt, products.Product, error) {
	v := &shared.ValidationError{}
	draft, m := input.parse(v)
	if err := v.OrNil(); err != nil {
		return GoodsReceipt{}, products.Product{}, err
	}

	if _, err := s.suppliers.Get(ctx, draft.SupplierID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return GoodsReceipt{}, products.Product{}, shared.UnresolvedReference("supplierId", draft.SupplierID.String())
		}
		return GoodsReceipt{}, products.Product{}, err
	}
	product, err := s.products.Get(ctx, draft.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return GoodsReceipt{}, products.Product{}, shared.UnresolvedReference("productId", draft.ProductID.String())
		}
		return GoodsReceipt{}, products.Product{}, err
	}

	derived, err := Derive(m)
	if err != nil {
		return GoodsReceipt{}, products.Product{}, err
	}
	derived.Apply(&draft)
	return draft, product, nil
}

func (s *Service) nextLot(ctx context.Context, product products.Product, day shared.Date, exclude uuid.UUID) (string, error) {
	existing, err := s.repo.LotCodes(ctx, product.ID, day, exclude)
	if err != nil {
		return "", err
	}
	return LotCode(NextLotSequence(existing), product.Category, day), nil
}

// Create records a delivery, assigning its lot code, and returns the expanded record.
func (s *Service) Create(ctx context.Context, input ReceiptInput) (GoodsReceipt, error) {
	draft, product, err := s.prepare(ctx, input)
	if err != nil {
		return GoodsReceipt{}, err
	}
	if draft.LotCode, err = s.nextLot(ctx, product, draft.ArrivalDate, uuid.Nil); err != nil {
		return GoodsReceipt{}, err
	}
	id, err := s.repo.Create(ctx, draft)
	if err != nil {
		return GoodsReceipt{}, err
	}
	if s.observer != nil {
		s.observer.ReceiptRecorded(string(product.Category), draft.MarketableWeightKg, draft.TotalPrice)
	}
	return s.repo.Get(ctx, id)
}

// Update replaces the receipt and recomputes its derived fields. The stored lot
// code is kept unless the input asks for a new one.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input ReceiptInput) (GoodsReceipt, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return GoodsReceipt{}, err
	}
	draft, product, err := s.prepare(ctx, input)
	if err != nil {
		return GoodsReceipt{}, err
	}
	draft.LotCode = existing.LotCode
	if input.RegenerateLot || draft.LotCode == "" {
		if draft.LotCode, err = s.nextLot(ctx, product, draft.ArrivalDate, id); err != nil {
			return GoodsReceipt{}, err
		}
	}
	if err := s.repo.Update(ctx, id, draft); err != nil {
		return GoodsReceipt{}, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the receipt.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Preview runs the full create validation and derivation without persisting.
func (s *Service) Preview(ctx context.Context, input ReceiptInput) (Preview, error) {
	draft, product, err := s.prepare(ctx, input)
	if err != nil {
		return Preview{}, err
	}
	lot, err := s.nextLot(ctx, product, draft.ArrivalDate, uuid.Nil)
	if err != nil {
		return Preview{}, err
	}
	return Preview{
		NetWeightKg:        draft.NetWeightKg,
		MarketableWeightKg: draft.MarketableWeightKg,
		TotalPrice:         draft.TotalPrice,
		LotCode:            lot,
	}, nil
}

// NextLotCode returns the lot code a new receipt for product on day would get.
func (s *Service) NextLotCode(ctx context.Context, productID uuid.UUID, day shared.Date) (string, error) {
	product, err := s.products.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.UnresolvedReference("productId", productID.String())
		}
		return "", err
	}
	return s.nextLot(ctx, product, day, uuid.Nil)
}
