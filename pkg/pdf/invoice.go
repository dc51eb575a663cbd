package pdf

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/comdesk/comdesk-api/pkg/billing"
)

// InvoiceParty is a party box on the tax invoice.
type InvoiceParty struct {
	Name    string
	Address string
	GSTNo   string
	Mobile  string
	Email   string
	MSMENo  string
}

// InvoiceData is everything the tax-invoice layout needs.
type InvoiceData struct {
	Number             string
	Date               string
	SuppliersReference string
	OtherReference     string
	Vendor             InvoiceParty
	Buyer              InvoiceParty
	BuyersOrderNo      string
	BuyersOrderDate    string
	DispatchedThrough  string
	PaymentTerms       string
	TermsOfDelivery    string
	Destination        string
	Items              []billing.InvoiceItem
	Totals             billing.InvoiceTotals
	AmountInWords      string
	TaxInWords         string
	Declaration        string
}

// invoiceCols are the item table widths: Sl, Description, HSN, Qty, Rate, Amount.
var invoiceCols = []float64{10, 80, 20, 15, 25, 30}

// RenderInvoice produces the tax invoice with the fixed SGST/CGST split,
// HSN summary and declaration blocks.
func RenderInvoice(data InvoiceData, b Branding) ([]byte, error) {
	pdf := newDoc()
	pdf.SetHeaderFunc(func() {
		drawLogo(pdf, b)
		pdf.SetY(10)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 7, sanitize(b.CompanyName), "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 6, "TAX INVOICE", "", 1, "C", false, 0, "")
		pdf.SetDrawColor(120, 120, 120)
		pdf.Line(15, pdf.GetY()+1, 195, pdf.GetY()+1)
		pdf.SetY(pdf.GetY() + 4)
	})
	pageFooter(pdf, b)
	pdf.AddPage()

	// Seller / buyer boxes.
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(90, 5, "Seller", "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 5, "Buyer", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 8)
	yTop := pdf.GetY()
	seller := data.Vendor.Name + "\n" + data.Vendor.Address + "\nGST No: " + data.Vendor.GSTNo
	if data.Vendor.MSMENo != "" {
		seller += "\nMSME No: " + data.Vendor.MSMENo
	}
	pdf.MultiCell(90, 4, sanitize(seller), "1", "L", false)
	hLeft := pdf.GetY() - yTop
	pdf.SetXY(105, yTop)
	buyer := data.Buyer.Name + "\n" + data.Buyer.Address + "\nGST No: " + data.Buyer.GSTNo
	if data.Buyer.Mobile != "" {
		buyer += "\nMobile: " + data.Buyer.Mobile + "  Email: " + data.Buyer.Email
	}
	pdf.MultiCell(90, 4, sanitize(buyer), "1", "L", false)
	if pdf.GetY()-yTop < hLeft {
		pdf.SetY(yTop + hLeft)
	}
	pdf.Ln(2)

	// Invoice details grid.
	grid := [][2]string{
		{"Invoice No: " + data.Number, "Date: " + data.Date},
		{"Supplier's Ref: " + data.SuppliersReference, "Other Ref: " + data.OtherReference},
		{"Buyer's Order No: " + data.BuyersOrderNo, "Order Date: " + data.BuyersOrderDate},
		{"Dispatched Through: " + data.DispatchedThrough, "Destination: " + data.Destination},
		{"Payment Terms: " + data.PaymentTerms, "Delivery Terms: " + data.TermsOfDelivery},
	}
	pdf.SetFont("Arial", "", 8)
	for _, row := range grid {
		pdf.CellFormat(90, 5, sanitize(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 5, sanitize(row[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// Item table.
	headers := []string{"Sl", "Description of Goods", "HSN/SAC", "Qty", "Rate", "Amount"}
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(invoiceCols[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i, it := range data.Items {
		lineAmount := it.Quantity * it.UnitRate
		desc := strings.Split(sanitize(it.Description), "\n")

		pdf.CellFormat(invoiceCols[0], 5, inr.Sprintf("%d", i+1), "LTR", 0, "C", false, 0, "")
		pdf.CellFormat(invoiceCols[1], 5, desc[0], "LTR", 0, "L", false, 0, "")
		pdf.CellFormat(invoiceCols[2], 5, sanitize(it.HSN), "LTR", 0, "C", false, 0, "")
		pdf.CellFormat(invoiceCols[3], 5, inr.Sprintf("%.2f", it.Quantity), "LTR", 0, "C", false, 0, "")
		pdf.CellFormat(invoiceCols[4], 5, amount(it.UnitRate), "LTR", 0, "R", false, 0, "")
		pdf.CellFormat(invoiceCols[5], 5, amount(lineAmount), "LTR", 1, "R", false, 0, "")
		for _, line := range desc[1:] {
			pdf.CellFormat(invoiceCols[0], 4, "", "LR", 0, "C", false, 0, "")
			pdf.CellFormat(invoiceCols[1], 4, line, "LR", 0, "L", false, 0, "")
			pdf.CellFormat(invoiceCols[2], 4, "", "LR", 0, "C", false, 0, "")
			pdf.CellFormat(invoiceCols[3], 4, "", "LR", 0, "C", false, 0, "")
			pdf.CellFormat(invoiceCols[4], 4, "", "LR", 0, "R", false, 0, "")
			pdf.CellFormat(invoiceCols[5], 4, "", "LR", 1, "R", false, 0, "")
		}
		// close the row
		totalW := 0.0
		for _, w := range invoiceCols {
			totalW += w
		}
		pdf.CellFormat(totalW, 0, "", "T", 1, "", false, 0, "")
	}

	// Totals rows.
	labelW := invoiceCols[0] + invoiceCols[1] + invoiceCols[2] + invoiceCols[3] + invoiceCols[4]
	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 8)
		pdf.CellFormat(labelW, 5, label, "1", 0, "R", false, 0, "")
		pdf.CellFormat(invoiceCols[5], 5, value, "1", 1, "R", false, 0, "")
	}
	row("Basic Amount", amount(data.Totals.BasicAmount), false)
	row("SGST @ 9%", amount(data.Totals.SGST), false)
	row("CGST @ 9%", amount(data.Totals.CGST), false)
	if data.Totals.RoundOff != 0 {
		row("Round Off", amount(data.Totals.RoundOff), false)
	}
	row("Total", amount(data.Totals.FinalAmount), true)
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(32, 5, "Amount in Words:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.MultiCell(0, 5, sanitize(data.AmountInWords), "", "L", false)
	pdf.Ln(2)

	// HSN/SAC tax summary.
	hsnSummary(pdf, data)
	pdf.Ln(1)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(28, 5, "Tax in Words:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.MultiCell(0, 5, sanitize(data.TaxInWords), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(0, 5, "Declaration", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.MultiCell(0, 4, sanitize(data.Declaration), "", "L", false)
	pdf.Ln(6)

	drawStamp(pdf, b, 150, pdf.GetY())
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, sanitize("For "+data.Vendor.Name), "", 1, "R", false, 0, "")
	pdf.Ln(14)
	pdf.CellFormat(0, 5, "Authorized Signatory", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// hsnSummary draws the per-HSN taxable value breakdown with the 9%+9% split.
func hsnSummary(pdf *gofpdf.Fpdf, data InvoiceData) {
	type hsnRow struct {
		hsn   string
		value float64
	}
	var rows []hsnRow
	index := map[string]int{}
	for _, it := range data.Items {
		value := it.Quantity * it.UnitRate
		if i, ok := index[it.HSN]; ok {
			rows[i].value += value
			continue
		}
		index[it.HSN] = len(rows)
		rows = append(rows, hsnRow{hsn: it.HSN, value: value})
	}

	headers := []string{"HSN/SAC", "Taxable Value", "SGST Rate", "SGST Amt", "CGST Rate", "CGST Amt"}
	widths := []float64{30, 40, 25, 30, 25, 30}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 5, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	var totalValue, totalSGST, totalCGST float64
	for _, r := range rows {
		sgst := r.value * invoiceHalfRate
		cgst := r.value * invoiceHalfRate
		totalValue += r.value
		totalSGST += sgst
		totalCGST += cgst

		pdf.CellFormat(widths[0], 5, sanitize(r.hsn), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 5, amount(r.value), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 5, "9%", "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 5, amount(sgst), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 5, "9%", "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 5, amount(cgst), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(widths[0], 5, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[1], 5, amount(totalValue), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2], 5, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[3], 5, amount(totalSGST), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 5, "", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[5], 5, amount(totalCGST), "1", 1, "R", false, 0, "")
}

// invoiceHalfRate mirrors the billing package's fixed split for display rows.
const invoiceHalfRate = 0.09
