package suppliers

import (
	"context"

	"github.com/google/uuid"

	"github.com/agrilog/agrilog/internal/masterdata/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Supplier, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (Supplier, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input SupplierInput) (Supplier, error) {
	supplier := input.toSupplier()
	if err := s.validate(supplier); err != nil {
		return Supplier{}, err
	}
	return s.repo.Create(ctx, supplier)
}

// Update replaces every field of the supplier. The creation timestamp is kept.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input SupplierInput) (Supplier, error) {
	supplier := input.toSupplier()
	if err := s.validate(supplier); err != nil {
		return Supplier{}, err
	}
	return s.repo.Update(ctx, id, supplier)
}

// Delete removes the supplier. Goods receipts that reference it are left untouched.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
