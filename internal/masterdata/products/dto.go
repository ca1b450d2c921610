package products

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// ProductInput is the full body of create and update requests.
type ProductInput struct {
	Category     string `json:"category" validate:"required"`
	Variety      string `json:"variety" validate:"required"`
	SubVariety   string `json:"subVariety"`
	Code         string `json:"code"`
	Description  string `json:"description"`
	Organic      bool   `json:"organic"`
	SizeSortable *bool  `json:"sizeSortable"`
}

func (in ProductInput) toProduct() Product {
	p := Product{
		Category:     Category(upper.String(strings.TrimSpace(in.Category))),
		Variety:      strings.TrimSpace(in.Variety),
		SubVariety:   strings.TrimSpace(in.SubVariety),
		Code:         strings.TrimSpace(in.Code),
		Description:  in.Description,
		Organic:      in.Organic,
		SizeSortable: DefaultSizeSortable,
	}
	if in.SizeSortable != nil {
		p.SizeSortable = *in.SizeSortable
	}
	return p
}
