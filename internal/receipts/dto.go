package receipts

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agrilog/agrilog/internal/shared"
)

// ReceiptInput is the full body of create, update and preview requests.
type ReceiptInput struct {
	ArrivalDate      string   `json:"arrivalDate" validate:"required,datetime=2006-01-02"`
	ArrivalTime      string   `json:"arrivalTime" validate:"omitempty,datetime=15:04"`
	SupplierID       string   `json:"supplierId" validate:"required,uuid"`
	ProductID        string   `json:"productId" validate:"required,uuid"`
	Quality          string   `json:"quality" validate:"omitempty,oneof=I II III"`
	Packaging        string   `json:"packaging" validate:"omitempty,oneof=bins cassette"`
	PackageCount     int      `json:"packageCount" validate:"gt=0"`
	GrossWeightKg    float64  `json:"grossWeightKg" validate:"gt=0"`
	NetWeightKg      *float64 `json:"netWeightKg" validate:"omitempty,gte=0"`
	PricePerKg       *float64 `json:"pricePerKg" validate:"required,gte=0"`
	ShrinkagePct     *float64 `json:"shrinkagePct" validate:"omitempty,gte=0,lte=100"`
	DocumentNumber   string   `json:"documentNumber"`
	DocumentDate     string   `json:"documentDate" validate:"omitempty,datetime=2006-01-02"`
	DocumentAttached bool     `json:"documentAttached"`
	Organic          bool     `json:"organic"`
	Notes            string   `json:"notes"`
	// RegenerateLot asks an update to assign a fresh lot code.
	RegenerateLot bool `json:"regenerateLot"`
}

// parse converts the input into a receipt draft plus its measurements,
// collecting every field failure into v.
func (in ReceiptInput) parse(v *shared.ValidationError) (GoodsReceipt, Measurements) {
	draft := GoodsReceipt{
		ArrivalTime:      strings.TrimSpace(in.ArrivalTime),
		Quality:          QualityGrade(strings.ToUpper(strings.TrimSpace(in.Quality))),
		Packaging:        PackagingType(strings.ToLower(strings.TrimSpace(in.Packaging))),
		PackageCount:     in.PackageCount,
		GrossWeightKg:    in.GrossWeightKg,
		ShrinkagePct:     in.ShrinkagePct,
		DocumentNumber:   strings.TrimSpace(in.DocumentNumber),
		DocumentAttached: in.DocumentAttached,
		Organic:          in.Organic,
		Notes:            in.Notes,
	}
	if draft.Quality == "" {
		draft.Quality = DefaultQuality
	}
	if draft.Packaging == "" {
		draft.Packaging = DefaultPackaging
	}
	if !draft.Quality.Valid() {
		v.Add("quality", "must be one of I II III")
	}

	if in.ArrivalDate == "" {
		v.Add("arrivalDate", "is required")
	} else if d, err := shared.ParseDate(in.ArrivalDate); err != nil {
		v.Add("arrivalDate", "%v", err)
	} else {
		draft.ArrivalDate = d
	}
	if draft.ArrivalTime != "" {
		if _, err := time.Parse("15:04", draft.ArrivalTime); err != nil {
			v.Add("arrivalTime", "must be HH:MM")
		}
	}
	if in.DocumentDate != "" {
		if d, err := shared.ParseDate(in.DocumentDate); err != nil {
			v.Add("documentDate", "%v", err)
		} else {
			draft.DocumentDate = &d
		}
	}
	draft.SupplierID = parseRef(v, "supplierId", in.SupplierID)
	draft.ProductID = parseRef(v, "productId", in.ProductID)

	m := Measurements{
		Packaging:     draft.Packaging,
		PackageCount:  in.PackageCount,
		GrossWeightKg: in.GrossWeightKg,
		NetWeightKg:   in.NetWeightKg,
		ShrinkagePct:  in.ShrinkagePct,
	}
	if in.PricePerKg == nil {
		v.Add("pricePerKg", "is required")
	} else {
		m.PricePerKg = *in.PricePerKg
		draft.PricePerKg = *in.PricePerKg
	}
	checkMeasurements(m, v)
	return draft, m
}

func parseRef(v *shared.ValidationError, field, raw string) uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		v.Add(field, "is required")
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		v.Add(field, "must be a valid identifier")
		return uuid.Nil
	}
	return id
}
