// Package billing computes taxable totals for commercial documents.
//
// Grand totals are rounded to the nearest whole rupee using banker's rounding
// (half to even), and the signed difference is reported as a round-off line.
package billing

import "math"

// LineItem is a priced catalog line on a quotation or purchase order.
// Basic is the pre-tax unit price; TaxPercent applies per unit.
type LineItem struct {
	Name       string  `json:"name"`
	Basic      float64 `json:"basic"`
	TaxPercent float64 `json:"tax_percent"`
	Qty        int     `json:"qty"`
}

// Totals is the result of a quotation/purchase-order totals computation.
// GrandTotal == UnroundedTotal + RoundOff holds exactly.
type Totals struct {
	BaseSubtotal   float64 `json:"base_subtotal"`
	TaxSubtotal    float64 `json:"tax_subtotal"`
	UnroundedTotal float64 `json:"unrounded_total"`
	GrandTotal     float64 `json:"grand_total"`
	RoundOff       float64 `json:"round_off"`
}

// Calculate computes per-item percentage tax and the rounded grand total.
// An empty item list yields all-zero totals.
func Calculate(items []LineItem) Totals {
	var base, tax, total float64
	for _, it := range items {
		taxAmt := it.Basic * it.TaxPercent / 100
		perUnit := it.Basic + taxAmt
		qty := float64(it.Qty)

		base += it.Basic * qty
		tax += taxAmt * qty
		total += perUnit * qty
	}

	rounded := math.RoundToEven(total)
	return Totals{
		BaseSubtotal:   base,
		TaxSubtotal:    tax,
		UnroundedTotal: total,
		GrandTotal:     rounded,
		RoundOff:       rounded - total,
	}
}

// InvoiceItem is a free-form line on a tax invoice. Quantities may be
// fractional (e.g. part-period licences).
type InvoiceItem struct {
	Description string  `json:"description"`
	HSN         string  `json:"hsn"`
	Quantity    float64 `json:"quantity"`
	UnitRate    float64 `json:"unit_rate"`
}

// InvoiceTotals is the result of the fixed-split tax invoice computation.
type InvoiceTotals struct {
	BasicAmount    float64 `json:"basic_amount"`
	SGST           float64 `json:"sgst"`
	CGST           float64 `json:"cgst"`
	UnroundedTotal float64 `json:"unrounded_total"`
	FinalAmount    float64 `json:"final_amount"`
	RoundOff       float64 `json:"round_off"`
}

// invoiceTaxRate is each half of the fixed 18% intrastate split.
const invoiceTaxRate = 0.09

// CalculateInvoice computes tax invoice totals with the fixed 9% SGST + 9%
// CGST split. This is deliberately a separate operation from Calculate: the
// rate is hard-coded rather than carried per item, and each component is
// rounded to two decimals before the whole-rupee rounding of the final amount.
func CalculateInvoice(items []InvoiceItem) InvoiceTotals {
	var basic float64
	for _, it := range items {
		basic += it.Quantity * it.UnitRate
	}
	basic = round2(basic)

	sgst := round2(basic * invoiceTaxRate)
	cgst := round2(basic * invoiceTaxRate)
	unrounded := basic + sgst + cgst
	final := math.RoundToEven(unrounded)

	return InvoiceTotals{
		BasicAmount:    basic,
		SGST:           sgst,
		CGST:           cgst,
		UnroundedTotal: unrounded,
		FinalAmount:    final,
		RoundOff:       final - unrounded,
	}
}

// round2 rounds to two decimal places, half to even.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
