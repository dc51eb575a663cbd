package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/comdesk/comdesk-api/pkg/billing"
)

// InvoiceReference carries the reference block printed on a tax invoice.
type InvoiceReference struct {
	SuppliersReference string `json:"suppliers_reference"`
	Other              string `json:"other"`
}

// InvoiceDetails carries the dispatch and payment terms block.
type InvoiceDetails struct {
	BuyersOrderNo     string `json:"buyers_order_no"`
	BuyersOrderDate   string `json:"buyers_order_date"`
	DispatchedThrough string `json:"dispatched_through"`
	PaymentTerms      string `json:"payment_terms"`
	TermsOfDelivery   string `json:"terms_of_delivery"`
	Destination       string `json:"destination"`
}

// Invoice is a finalized tax invoice with the fixed SGST/CGST split applied.
type Invoice struct {
	ID            uuid.UUID             `json:"id"`
	Number        string                `json:"number"`
	Date          string                `json:"date"`
	Reference     InvoiceReference      `json:"reference"`
	Vendor        Vendor                `json:"vendor"`
	Buyer         EndUser               `json:"buyer"`
	Details       InvoiceDetails        `json:"details"`
	Items         []billing.InvoiceItem `json:"items"`
	Totals        billing.InvoiceTotals `json:"totals"`
	AmountInWords string                `json:"amount_in_words"`
	TaxInWords    string                `json:"tax_in_words"`
	Declaration   string                `json:"declaration"`
	GeneratedAt   time.Time             `json:"generated_at"`
}
