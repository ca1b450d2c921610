package suppliers

import (
	"time"

	"github.com/google/uuid"
)

// Schema defaults. The presentation layer reads them from /api/defaults.
const (
	DefaultCountry     = "Italia"
	DefaultPaymentDays = 30
	DefaultDiscountPct = 0.0
	DefaultOrganic     = false
)

// Supplier represents a supplier entity
type Supplier struct {
	ID                   uuid.UUID `json:"id"`
	LegalName            string    `json:"legalName"`
	TaxID                string    `json:"taxId"`
	FiscalCode           string    `json:"fiscalCode"`
	Street               string    `json:"street"`
	City                 string    `json:"city"`
	PostalCode           string    `json:"postalCode"`
	Province             string    `json:"province"`
	Country              string    `json:"country"`
	Phone                string    `json:"phone"`
	Email                string    `json:"email"`
	IBAN                 string    `json:"iban"`
	PaymentTerms         string    `json:"paymentTerms"`
	PaymentDays          int       `json:"paymentDays"`
	DiscountPct          float64   `json:"discountPct"`
	Organic              bool      `json:"organic"`
	OrganicCertification string    `json:"organicCertification"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"createdAt"`
}
