package suppliers

import (
	"github.com/agrilog/agrilog/internal/shared"
)

func (s *Service) validate(sup Supplier) error {
	v := &shared.ValidationError{}
	if sup.LegalName == "" {
		v.Add("legalName", "is required")
	}
	if sup.TaxID == "" {
		v.Add("taxId", "is required")
	}
	if sup.PaymentDays < 0 {
		v.Add("paymentDays", "must not be negative")
	}
	if sup.DiscountPct < 0 || sup.DiscountPct > 100 {
		v.Add("discountPct", "must be between 0 and 100")
	}
	return v.OrNil()
}
