package products

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

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Product, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input ProductInput) (Product, error) {
	product := input.toProduct()
	if err := s.validate(product); err != nil {
		return Product{}, err
	}
	return s.repo.Create(ctx, product)
}

// Update replaces every field of the product. The creation timestamp is kept.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input ProductInput) (Product, error) {
	product := input.toProduct()
	if err := s.validate(product); err != nil {
		return Product{}, err
	}
	return s.repo.Update(ctx, id, product)
}

// Delete removes the product. Goods receipts that reference it are left untouched.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
