package receipts

import (
	"time"

	"github.com/google/uuid"

	"github.com/agrilog/agrilog/internal/masterdata/products"
	"github.com/agrilog/agrilog/internal/shared"
)

// QualityGrade is the commercial grade of a delivery.
type QualityGrade string

const (
	QualityFirst  QualityGrade = "I"
	QualitySecond QualityGrade = "II"
	QualityThird  QualityGrade = "III"
)

// Valid reports whether q is a recognised grade.
func (q QualityGrade) Valid() bool {
	switch q {
	case QualityFirst, QualitySecond, QualityThird:
		return true
	}
	return false
}

// PackagingType determines the tare subtracted per package.
type PackagingType string

const (
	PackagingBins     PackagingType = "bins"
	PackagingCassette PackagingType = "cassette"
)

// Valid reports whether p is a recognised packaging type.
func (p PackagingType) Valid() bool {
	_, ok := tareKg[p]
	return ok
}

// Schema defaults.
const (
	DefaultQuality   = QualityFirst
	DefaultPackaging = PackagingBins
)

// SupplierRef is the expanded supplier reference of a receipt.
type SupplierRef struct {
	ID        uuid.UUID `json:"id"`
	LegalName string    `json:"legalName"`
}

// ProductRef is the expanded product reference of a receipt.
type ProductRef struct {
	ID       uuid.UUID         `json:"id"`
	Category products.Category `json:"category"`
	Variety  string            `json:"variety"`
}

// GoodsReceipt records one delivery of fruit from a supplier.
// Supplier and Product are nil when the referenced record no longer exists.
type GoodsReceipt struct {
	ID                 uuid.UUID     `json:"id"`
	ArrivalDate        shared.Date   `json:"arrivalDate"`
	ArrivalTime        string        `json:"arrivalTime"`
	SupplierID         uuid.UUID     `json:"supplierId"`
	Supplier           *SupplierRef  `json:"supplier"`
	ProductID          uuid.UUID     `json:"productId"`
	Product            *ProductRef   `json:"product"`
	LotCode            string        `json:"lotCode"`
	Quality            QualityGrade  `json:"quality"`
	Packaging          PackagingType `json:"packaging"`
	PackageCount       int           `json:"packageCount"`
	GrossWeightKg      float64       `json:"grossWeightKg"`
	NetWeightKg        float64       `json:"netWeightKg"`
	PricePerKg         float64       `json:"pricePerKg"`
	ShrinkagePct       *float64      `json:"shrinkagePct"`
	MarketableWeightKg float64       `json:"marketableWeightKg"`
	TotalPrice         float64       `json:"totalPrice"`
	DocumentNumber     string        `json:"documentNumber"`
	DocumentDate       *shared.Date  `json:"documentDate"`
	DocumentAttached   bool          `json:"documentAttached"`
	Organic            bool          `json:"organic"`
	Notes              string        `json:"notes"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          *time.Time    `json:"updatedAt"`
}
