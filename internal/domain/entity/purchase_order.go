package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/comdesk/comdesk-api/pkg/billing"
)

// PurchaseOrder is a finalized purchase order: vendor, bill-to/ship-to
// addresses, the end customer, line items and computed totals.
type PurchaseOrder struct {
	ID              uuid.UUID          `json:"id"`
	Number          string             `json:"number"`
	Date            string             `json:"date"`
	SalesPersonCode string             `json:"sales_person_code"`
	VendorName      string             `json:"vendor_name"`
	VendorAddress   string             `json:"vendor_address"`
	VendorContact   string             `json:"vendor_contact"`
	VendorMobile    string             `json:"vendor_mobile"`
	GSTNo           string             `json:"gst_no"`
	PANNo           string             `json:"pan_no"`
	MSMENo          string             `json:"msme_no"`
	BillToCompany   string             `json:"bill_to_company"`
	BillToAddress   string             `json:"bill_to_address"`
	ShipToCompany   string             `json:"ship_to_company"`
	ShipToAddress   string             `json:"ship_to_address"`
	EndCompany      string             `json:"end_company"`
	EndAddress      string             `json:"end_address"`
	EndPerson       string             `json:"end_person"`
	EndMobile       string             `json:"end_mobile"`
	EndEmail        string             `json:"end_email"`
	PaymentTerms    string             `json:"payment_terms"`
	DeliveryTerms   string             `json:"delivery_terms"`
	PreparedBy      string             `json:"prepared_by"`
	AuthorizedBy    string             `json:"authorized_by"`
	Items           []billing.LineItem `json:"items"`
	Totals          billing.Totals     `json:"totals"`
	AmountInWords   string             `json:"amount_in_words"`
	GeneratedAt     time.Time          `json:"generated_at"`
}
