// Package masterdata exposes the schema defaults and enumerations shared by
// the supplier, product and receipt forms.
package masterdata

import (
	"github.com/agrilog/agrilog/internal/masterdata/products"
	"github.com/agrilog/agrilog/internal/masterdata/suppliers"
	"github.com/agrilog/agrilog/internal/receipts"
)

// SupplierDefaults are applied to omitted supplier fields.
type SupplierDefaults struct {
	Country     string  `json:"country"`
	PaymentDays int     `json:"paymentDays"`
	DiscountPct float64 `json:"discountPct"`
	Organic     bool    `json:"organic"`
}

// ProductDefaults are applied to omitted product fields.
type ProductDefaults struct {
	Organic      bool `json:"organic"`
	SizeSortable bool `json:"sizeSortable"`
}

// PackagingOption pairs a packaging type with its tare per package.
type PackagingOption struct {
	Code   receipts.PackagingType `json:"code"`
	TareKg float64                `json:"tareKg"`
}

// ReceiptDefaults are applied to omitted receipt fields.
type ReceiptDefaults struct {
	Quality    receipts.QualityGrade   `json:"quality"`
	Packaging  receipts.PackagingType  `json:"packaging"`
	Qualities  []receipts.QualityGrade `json:"qualities"`
	Packagings []PackagingOption       `json:"packagings"`
}

// Defaults is the body of GET /api/defaults.
type Defaults struct {
	Supplier   SupplierDefaults          `json:"supplier"`
	Product    ProductDefaults           `json:"product"`
	Receipt    ReceiptDefaults           `json:"receipt"`
	Categories []products.CategoryOption `json:"categories"`
}

// Current collects the defaults declared by each entity package.
func Current() Defaults {
	packagings := make([]PackagingOption, 0, 2)
	for _, p := range []receipts.PackagingType{receipts.PackagingBins, receipts.PackagingCassette} {
		tare, _ := receipts.TarePerPackage(p)
		packagings = append(packagings, PackagingOption{Code: p, TareKg: tare.InexactFloat64()})
	}
	return Defaults{
		Supplier: SupplierDefaults{
			Country:     suppliers.DefaultCountry,
			PaymentDays: suppliers.DefaultPaymentDays,
			DiscountPct: suppliers.DefaultDiscountPct,
			Organic:     suppliers.DefaultOrganic,
		},
		Product: ProductDefaults{
			Organic:      products.DefaultOrganic,
			SizeSortable: products.DefaultSizeSortable,
		},
		Receipt: ReceiptDefaults{
			Quality:    receipts.DefaultQuality,
			Packaging:  receipts.DefaultPackaging,
			Qualities:  []receipts.QualityGrade{receipts.QualityFirst, receipts.QualitySecond, receipts.QualityThird},
			Packagings: packagings,
		},
		Categories: products.Categories,
	}
}
