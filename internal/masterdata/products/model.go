package products

import (
	"time"

	"github.com/google/uuid"
)

// Category is the short code of a fruit category. It is embedded in lot codes.
type Category string

const (
	CategoryYellowNectarine Category = "NG"
	CategoryYellowPeach     Category = "PG"
	CategoryClingPeach      Category = "PR"
	CategoryWhitePeach      Category = "PB"
	CategoryKiwi            Category = "KW"
)

// CategoryOption pairs a code with its display label.
type CategoryOption struct {
	Code  Category `json:"code"`
	Label string   `json:"label"`
}

// Categories lists the recognised categories in display order.
var Categories = []CategoryOption{
	{CategoryYellowNectarine, "Nettarine Gialle"},
	{CategoryYellowPeach, "Pesche Gialle"},
	{CategoryClingPeach, "Percoche"},
	{CategoryWhitePeach, "Pesche Bianche"},
	{CategoryKiwi, "Kiwi"},
}

// Valid reports whether c is a recognised category.
func (c Category) Valid() bool {
	for _, opt := range Categories {
		if opt.Code == c {
			return true
		}
	}
	return false
}

// Schema defaults.
const (
	DefaultOrganic      = false
	DefaultSizeSortable = true
)

// Product represents a product variety.
type Product struct {
	ID           uuid.UUID `json:"id"`
	Category     Category  `json:"category"`
	Variety      string    `json:"variety"`
	SubVariety   string    `json:"subVariety"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	Organic      bool      `json:"organic"`
	SizeSortable bool      `json:"sizeSortable"`
	CreatedAt    time.Time `json:"createdAt"`
}
