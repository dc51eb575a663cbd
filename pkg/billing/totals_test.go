package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSingleItem(t *testing.T) {
	totals := Calculate([]LineItem{
		{Name: "Licence", Basic: 10000, TaxPercent: 18, Qty: 1},
	})

	assert.InDelta(t, 10000, totals.BaseSubtotal, 1e-9)
	assert.InDelta(t, 1800, totals.TaxSubtotal, 1e-9)
	assert.InDelta(t, 11800, totals.UnroundedTotal, 1e-9)
	assert.InDelta(t, 11800, totals.GrandTotal, 1e-9)
	assert.InDelta(t, 0, totals.RoundOff, 1e-9)
}

func TestCalculateMultipleItems(t *testing.T) {
	totals := Calculate([]LineItem{
		{Name: "A", Basic: 100, TaxPercent: 18, Qty: 3},
		{Name: "B", Basic: 250, TaxPercent: 12, Qty: 2},
	})

	assert.InDelta(t, 800, totals.BaseSubtotal, 1e-9)
	assert.InDelta(t, 114, totals.TaxSubtotal, 1e-9)
	assert.InDelta(t, 914, totals.GrandTotal, 1e-9)
}

func TestCalculateRoundOff(t *testing.T) {
	totals := Calculate([]LineItem{
		{Name: "A", Basic: 100.004, TaxPercent: 0, Qty: 1},
	})

	assert.InDelta(t, 100, totals.GrandTotal, 1e-9)
	assert.InDelta(t, -0.004, totals.RoundOff, 1e-9)
	assert.InDelta(t, totals.UnroundedTotal+totals.RoundOff, totals.GrandTotal, 1e-9)
}

func TestCalculateHalfRoundsToEven(t *testing.T) {
	up := Calculate([]LineItem{{Name: "A", Basic: 101.5, TaxPercent: 0, Qty: 1}})
	down := Calculate([]LineItem{{Name: "A", Basic: 100.5, TaxPercent: 0, Qty: 1}})

	assert.InDelta(t, 102, up.GrandTotal, 1e-9)
	assert.InDelta(t, 100, down.GrandTotal, 1e-9)
}

func TestCalculateEmpty(t *testing.T) {
	totals := Calculate(nil)
	assert.Zero(t, totals.GrandTotal)
	assert.Zero(t, totals.RoundOff)
}

func TestCalculateInvoiceFixedSplit(t *testing.T) {
	totals := CalculateInvoice([]InvoiceItem{
		{Description: "Annual support", Quantity: 1, UnitRate: 1000},
	})

	assert.InDelta(t, 1000, totals.BasicAmount, 1e-9)
	assert.InDelta(t, 90, totals.SGST, 1e-9)
	assert.InDelta(t, 90, totals.CGST, 1e-9)
	assert.InDelta(t, 1180, totals.FinalAmount, 1e-9)
	assert.InDelta(t, 0, totals.RoundOff, 1e-9)
}

func TestCalculateInvoiceFractionalQuantity(t *testing.T) {
	totals := CalculateInvoice([]InvoiceItem{
		{Description: "Part-period licence", Quantity: 0.5, UnitRate: 999},
	})

	assert.InDelta(t, 499.5, totals.BasicAmount, 1e-9)
	assert.InDelta(t, 44.96, totals.SGST, 1e-9)
	assert.InDelta(t, 44.96, totals.CGST, 1e-9)
	assert.InDelta(t, 589.42, totals.UnroundedTotal, 1e-9)
	assert.InDelta(t, 589, totals.FinalAmount, 1e-9)
	assert.InDelta(t, -0.42, totals.RoundOff, 1e-9)
}

func TestCalculateInvoiceRoundOffIdentity(t *testing.T) {
	totals := CalculateInvoice([]InvoiceItem{
		{Description: "A", Quantity: 3, UnitRate: 123.45},
		{Description: "B", Quantity: 1.25, UnitRate: 678.9},
	})

	assert.InDelta(t, totals.UnroundedTotal+totals.RoundOff, totals.FinalAmount, 1e-9)
}
