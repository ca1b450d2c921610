package suppliers

import "strings"

// SupplierInput is the full body of create and update requests. Omitted
// optional fields take the schema defaults, since updates replace the record.
type SupplierInput struct {
	LegalName            string   `json:"legalName" validate:"required"`
	TaxID                string   `json:"taxId" validate:"required"`
	FiscalCode           string   `json:"fiscalCode"`
	Street               string   `json:"street"`
	City                 string   `json:"city"`
	PostalCode           string   `json:"postalCode"`
	Province             string   `json:"province"`
	Country              string   `json:"country"`
	Phone                string   `json:"phone"`
	Email                string   `json:"email" validate:"omitempty,email"`
	IBAN                 string   `json:"iban"`
	PaymentTerms         string   `json:"paymentTerms"`
	PaymentDays          *int     `json:"paymentDays" validate:"omitempty,gte=0"`
	DiscountPct          *float64 `json:"discountPct" validate:"omitempty,gte=0,lte=100"`
	Organic              bool     `json:"organic"`
	OrganicCertification string   `json:"organicCertification"`
	Notes                string   `json:"notes"`
}

func (in SupplierInput) toSupplier() Supplier {
	s := Supplier{
		LegalName:            strings.TrimSpace(in.LegalName),
		TaxID:                strings.TrimSpace(in.TaxID),
		FiscalCode:           strings.TrimSpace(in.FiscalCode),
		Street:               in.Street,
		City:                 in.City,
		PostalCode:           strings.TrimSpace(in.PostalCode),
		Province:             strings.TrimSpace(in.Province),
		Country:              strings.TrimSpace(in.Country),
		Phone:                strings.TrimSpace(in.Phone),
		Email:                strings.TrimSpace(in.Email),
		IBAN:                 strings.ReplaceAll(strings.ToUpper(in.IBAN), " ", ""),
		PaymentTerms:         in.PaymentTerms,
		PaymentDays:          DefaultPaymentDays,
		DiscountPct:          DefaultDiscountPct,
		Organic:              in.Organic,
		OrganicCertification: in.OrganicCertification,
		Notes:                in.Notes,
	}
	if s.Country == "" {
		s.Country = DefaultCountry
	}
	if in.PaymentDays != nil {
		s.PaymentDays = *in.PaymentDays
	}
	if in.DiscountPct != nil {
		s.DiscountPct = *in.DiscountPct
	}
	return s
}
