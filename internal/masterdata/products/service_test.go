package products

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrilog/agrilog/internal/masterdata/shared"
	internalShared "github.com/agrilog/agrilog/internal/shared"
)

type memoryProductRepo struct {
	items map[uuid.UUID]Product
}

func newMemoryProductRepo() *memoryProductRepo {
	return &memoryProductRepo{items: make(map[uuid.UUID]Product)}
}

func (r *memoryProductRepo) List(ctx context.Context, filters shared.ListFilters) ([]Product, error) {
	out := []Product{}
	for _, p := range r.items {
		if filters.Matches(p.Variety, p.SubVariety, p.Code) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Variety < out[j].Variety
	})
	return out, nil
}

func (r *memoryProductRepo) Get(ctx context.Context, id uuid.UUID) (Product, error) {
	p, ok := r.items[id]
	if !ok {
		return Product{}, internalShared.ErrNotFound
	}
	return p, nil
}

func (r *memoryProductRepo) Create(ctx context.Context, product Product) (Product, error) {
	product.ID = uuid.New()
	product.CreatedAt = time.Now()
	r.items[product.ID] = product
	return product, nil
}

func (r *memoryProductRepo) Update(ctx context.Context, id uuid.UUID, product Product) (Product, error) {
	existing, ok := r.items[id]
	if !ok {
		return Product{}, internalShared.ErrNotFound
	}
	product.ID = id
	product.CreatedAt = existing.CreatedAt
	r.items[id] = product
	return product, nil
}

func (r *memoryProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return internalShared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func TestCreateNormalisesCategoryAndDefaults(t *testing.T) {
	svc := NewService(newMemoryProductRepo())

	p, err := svc.Create(context.Background(), ProductInput{Category: " pg ", Variety: "Royal Summer"})
	require.NoError(t, err)
	assert.Equal(t, CategoryYellowPeach, p.Category)
	assert.True(t, p.SizeSortable)
	assert.False(t, p.Organic)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := NewService(newMemoryProductRepo())

	_, err := svc.Create(context.Background(), ProductInput{Category: "XX", Variety: "Hayward"})
	require.ErrorIs(t, err, internalShared.ErrValidation)
	fields := internalShared.FieldsOf(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "category", fields[0].Field)
}

func TestCreateRejectsMissingVariety(t *testing.T) {
	svc := NewService(newMemoryProductRepo())

	_, err := svc.Create(context.Background(), ProductInput{Category: "KW"})
	require.ErrorIs(t, err, internalShared.ErrValidation)
}

func TestSizeSortableCanBeDisabled(t *testing.T) {
	svc := NewService(newMemoryProductRepo())
	off := false

	p, err := svc.Create(context.Background(), ProductInput{Category: "KW", Variety: "Hayward", SizeSortable: &off})
	require.NoError(t, err)
	assert.False(t, p.SizeSortable)
}

func TestListOrderedByCategoryThenVariety(t *testing.T) {
	svc := NewService(newMemoryProductRepo())
	ctx := context.Background()
	for _, in := range []ProductInput{
		{Category: "PG", Variety: "Zee Lady"},
		{Category: "KW", Variety: "Hayward"},
		{Category: "PG", Variety: "Agostina"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, shared.ListFilters{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Hayward", list[0].Variety)
	assert.Equal(t, "Agostina", list[1].Variety)
	assert.Equal(t, "Zee Lady", list[2].Variety)
}

func TestCategoryValid(t *testing.T) {
	for _, opt := range Categories {
		assert.True(t, opt.Code.Valid(), opt.Code)
	}
	assert.False(t, Category("pg").Valid())
	assert.False(t, Category("").Valid())
}
