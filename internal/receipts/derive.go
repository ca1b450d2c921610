package receipts

import (
	"github.com/shopspring/decimal"

	"github.com/agrilog/agrilog/internal/shared"
)

// Rounding applied when derived values are stored.
const (
	WeightPlaces   = 1
	CurrencyPlaces = 2
)

var (
	tareKg = map[PackagingType]decimal.Decimal{
		PackagingBins:     decimal.NewFromInt(30),
		PackagingCassette: decimal.RequireFromString("1.5"),
	}
	hundred = decimal.NewFromInt(100)
)

// TarePerPackage returns the empty weight of one package of type p.
func TarePerPackage(p PackagingType) (decimal.Decimal, bool) {
	tare, ok := tareKg[p]
	return tare, ok
}

// Measurements are the raw inputs of the derivation.
type Measurements struct {
	Packaging     PackagingType
	PackageCount  int
	GrossWeightKg float64
	// NetWeightKg is used as given when set; otherwise it is derived from the tare.
	NetWeightKg  *float64
	PricePerKg   float64
	ShrinkagePct *float64
}

// Derived holds the computed quantities at full precision.
type Derived struct {
	NetWeight        decimal.Decimal
	MarketableWeight decimal.Decimal
	TotalPrice       decimal.Decimal
}

// NetWeight subtracts the tare of count packages from gross.
func NetWeight(gross decimal.Decimal, count int, packaging PackagingType) decimal.Decimal {
	tare, _ := TarePerPackage(packaging)
	return gross.Sub(tare.Mul(decimal.NewFromInt(int64(count))))
}

// MarketableWeight applies the expected shrinkage; a nil shrinkage leaves net unchanged.
func MarketableWeight(net decimal.Decimal, shrinkagePct *decimal.Decimal) decimal.Decimal {
	if shrinkagePct == nil {
		return net
	}
	return net.Mul(decimal.NewFromInt(1).Sub(shrinkagePct.Div(hundred)))
}

// TotalPrice is the marketable weight priced per kilogram.
func TotalPrice(marketable, pricePerKg decimal.Decimal) decimal.Decimal {
	return marketable.Mul(pricePerKg)
}

// Derive validates m and computes net weight, marketable weight and total price.
// Invalid input is rejected, never clamped.
func Derive(m Measurements) (Derived, error) {
	v := &shared.ValidationError{}
	checkMeasurements(m, v)
	if err := v.OrNil(); err != nil {
		return Derived{}, err
	}

	gross := decimal.NewFromFloat(m.GrossWeightKg)
	var net decimal.Decimal
	if m.NetWeightKg != nil {
		net = decimal.NewFromFloat(*m.NetWeightKg)
	} else {
		net = NetWeight(gross, m.PackageCount, m.Packaging)
		if net.IsNegative() {
			return Derived{}, shared.Invalid("grossWeightKg", "tare of %d %s packages exceeds gross weight", m.PackageCount, m.Packaging)
		}
	}

	var shrinkage *decimal.Decimal
	if m.ShrinkagePct != nil {
		s := decimal.NewFromFloat(*m.ShrinkagePct)
		shrinkage = &s
	}
	marketable := MarketableWeight(net, shrinkage)
	return Derived{
		NetWeight:        net,
		MarketableWeight: marketable,
		TotalPrice:       TotalPrice(marketable, decimal.NewFromFloat(m.PricePerKg)),
	}, nil
}

func checkMeasurements(m Measurements, v *shared.ValidationError) {
	if !m.Packaging.Valid() {
		v.Add("packaging", "must be one of bins cassette")
	}
	if m.PackageCount <= 0 {
		v.Add("packageCount", "must be greater than 0")
	}
	if m.GrossWeightKg <= 0 {
		v.Add("grossWeightKg", "must be greater than 0")
	}
	if m.NetWeightKg != nil {
		switch {
		case *m.NetWeightKg < 0:
			v.Add("netWeightKg", "must not be negative")
		case *m.NetWeightKg > m.GrossWeightKg:
			v.Add("netWeightKg", "must not exceed gross weight")
		}
	}
	if m.PricePerKg < 0 {
		v.Add("pricePerKg", "must not be negative")
	}
	if m.ShrinkagePct != nil && (*m.ShrinkagePct < 0 || *m.ShrinkagePct > 100) {
		v.Add("shrinkagePct", "must be between 0 and 100")
	}
}

// Apply stores the derived values on r, rounded for storage.
func (d Derived) Apply(r *GoodsReceipt) {
	r.NetWeightKg = d.NetWeight.Round(WeightPlaces).InexactFloat64()
	r.MarketableWeightKg = d.MarketableWeight.Round(WeightPlaces).InexactFloat64()
	r.TotalPrice = d.TotalPrice.Round(CurrencyPlaces).InexactFloat64()
}
