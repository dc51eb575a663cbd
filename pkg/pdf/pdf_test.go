package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comdesk/comdesk-api/pkg/billing"
)

var testBranding = Branding{
	CompanyName:    "Comdesk Solutions",
	CompanyAddress: "14 MG Road, Bengaluru 560001",
	CompanyEmail:   "sales@comdesk.example",
	CompanyPhone:   "+91 80 4000 1000",
	CompanyGSTNo:   "29COMDESK1Z5",
}

func TestRenderQuotation(t *testing.T) {
	items := []billing.LineItem{
		{Name: "Annual Licence", Basic: 10000, TaxPercent: 18, Qty: 1},
		{Name: "Support Pack", Basic: 2500, TaxPercent: 12, Qty: 2},
	}

	out, err := RenderQuotation(QuotationData{
		Number:        "COM/SP1/Q1/12-05-2025/2025-2026_003",
		Date:          "12-05-2025",
		VendorName:    "Acme Traders",
		VendorAddress: "Plot 7, MIDC\nMumbai 400001",
		VendorContact: "Ravi",
		Title:         "Commercial Proposal",
		Subject:       "Renewal of annual licence",
		Intro:         "With reference to your enquiry, we are pleased to quote as under.",
		AnnexureText:  "Prices are in INR and exclusive of freight.",
		PriceValidity: "30 days",
		SalesPerson:   "SP1",
		SalesName:     "Ravi",
		SalesEmail:    "ravi@comdesk.example",
		Items:         items,
		Totals:        billing.Calculate(items),
		AmountInWords: "Sixteen Thousand Six Hundred Rupees Only/-",
	}, testBranding)

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderPurchaseOrder(t *testing.T) {
	items := []billing.LineItem{
		{Name: "Support Pack", Basic: 2500, TaxPercent: 12, Qty: 2},
	}

	out, err := RenderPurchaseOrder(PurchaseOrderData{
		Number:        "COM/SP1/2025/Q2_004",
		Date:          "20-08-2025",
		VendorName:    "Acme Traders",
		VendorAddress: "Plot 7, MIDC, Mumbai 400001",
		GSTNo:         "27ACME",
		PANNo:         "ACMEP1234F",
		BillToCompany: "Comdesk Solutions",
		BillToAddress: "14 MG Road, Bengaluru 560001",
		ShipToCompany: "Bharat Infra",
		ShipToAddress: "Connaught Place, Delhi 110001",
		EndCompany:    "Bharat Infra",
		EndAddress:    "Connaught Place, Delhi 110001",
		EndPerson:     "Suresh",
		PaymentTerms:  "45 days from invoice",
		DeliveryTerms: "2 weeks",
		PreparedBy:    "Ravi",
		AuthorizedBy:  "Asha",
		Items:         items,
		Totals:        billing.Calculate(items),
		AmountInWords: "Five Thousand Six Hundred Rupees Only/-",
	}, testBranding)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderInvoice(t *testing.T) {
	items := []billing.InvoiceItem{
		{Description: "Annual support", HSN: "9983", Quantity: 1, UnitRate: 1000},
		{Description: "Installation", HSN: "9954", Quantity: 2, UnitRate: 500},
	}

	out, err := RenderInvoice(InvoiceData{
		Number: "COM/25-26/Q1/05",
		Date:   "10-06-2025",
		Vendor: InvoiceParty{
			Name:    testBranding.CompanyName,
			Address: testBranding.CompanyAddress,
			GSTNo:   testBranding.CompanyGSTNo,
		},
		Buyer: InvoiceParty{
			Name:    "Bharat Infra",
			Address: "Connaught Place, Delhi 110001",
			GSTNo:   "07BHARAT",
		},
		PaymentTerms:  "Immediate",
		Destination:   "Delhi",
		Items:         items,
		Totals:        billing.CalculateInvoice(items),
		AmountInWords: "Two Thousand Three Hundred Sixty Rupees Only/-",
		TaxInWords:    "Three Hundred Sixty Rupees Only/-",
		Declaration:   "We declare that this invoice shows the actual price of the goods described.",
	}, testBranding)

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestSanitizeReplacesNonLatin(t *testing.T) {
	assert.Equal(t, "Rs. 1,000", sanitize("₹1,000"))
	assert.Equal(t, "10\" rack - 'new'", sanitize("10” rack – ‘new’"))
}

func TestAmountIndianGrouping(t *testing.T) {
	assert.Equal(t, "12,34,567.89", amount(1234567.89))
	assert.Equal(t, "1,000.00", amount(1000))
}
