package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/comdesk/comdesk-api/pkg/billing"
)

// Quotation is a finalized sales quotation ready for rendering: the assigned
// document number, the addressed vendor, line items and computed totals.
type Quotation struct {
	ID              uuid.UUID          `json:"id"`
	Number          string             `json:"number"`
	Date            string             `json:"date"`
	SalesPersonCode string             `json:"sales_person_code"`
	VendorName      string             `json:"vendor_name"`
	VendorAddress   string             `json:"vendor_address"`
	VendorEmail     string             `json:"vendor_email"`
	VendorContact   string             `json:"vendor_contact"`
	VendorMobile    string             `json:"vendor_mobile"`
	Title           string             `json:"title"`
	Subject         string             `json:"subject"`
	Intro           string             `json:"intro"`
	AnnexureText    string             `json:"annexure_text"`
	PriceValidity   string             `json:"price_validity"`
	Items           []billing.LineItem `json:"items"`
	Totals          billing.Totals     `json:"totals"`
	AmountInWords   string             `json:"amount_in_words"`
	GeneratedAt     time.Time          `json:"generated_at"`
}
