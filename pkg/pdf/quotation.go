package pdf

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/comdesk/comdesk-api/pkg/billing"
)

// QuotationData is everything the two-page quotation layout needs.
type QuotationData struct {
	Number        string
	Date          string
	VendorName    string
	VendorAddress string
	VendorEmail   string
	VendorContact string
	VendorMobile  string
	Title         string
	Subject       string
	Intro         string
	AnnexureText  string
	PriceValidity string
	SalesPerson   string
	SalesName     string
	SalesEmail    string
	SalesMobile   string
	Items         []billing.LineItem
	Totals        billing.Totals
	AmountInWords string
}

// RenderQuotation produces the two-page quotation: a cover letter addressed
// to the vendor followed by the commercial annexure table.
func RenderQuotation(data QuotationData, b Branding) ([]byte, error) {
	pdf := newDoc()
	pdf.SetHeaderFunc(func() {
		drawLogo(pdf, b)
		pdf.SetY(10)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 7, sanitize(b.CompanyName), "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, sanitize(data.Title), "", 1, "C", false, 0, "")
		pdf.SetDrawColor(120, 120, 120)
		pdf.Line(15, pdf.GetY()+2, 195, pdf.GetY()+2)
		pdf.SetY(pdf.GetY() + 6)
	})
	pageFooter(pdf, b)

	// Page one: cover letter.
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(120, 5, "To,", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, sanitize("Ref: "+data.Number), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(120, 5, sanitize(data.VendorName), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, sanitize("Date: "+data.Date), "", 1, "R", false, 0, "")
	pdf.MultiCell(110, 5, sanitize(data.VendorAddress), "", "L", false)
	if data.VendorContact != "" {
		pdf.CellFormat(0, 5, sanitize("Kind Attn: "+data.VendorContact), "", 1, "L", false, 0, "")
	}
	if data.VendorEmail != "" {
		pdf.CellFormat(0, 5, sanitize("Email: "+data.VendorEmail), "", 1, "L", false, 0, "")
	}
	if data.VendorMobile != "" {
		pdf.CellFormat(0, 5, sanitize("Mobile: "+data.VendorMobile), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.MultiCell(0, 5, sanitize("Subject: "+data.Subject), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, "Dear Sir/Madam,", "", 1, "L", false, 0, "")
	pdf.Ln(1)
	pdf.MultiCell(0, 5, sanitize(data.Intro), "", "J", false)
	pdf.Ln(3)
	pdf.MultiCell(0, 5, sanitize("The commercial terms are enclosed as an annexure to this letter. "+
		"Prices are valid "+data.PriceValidity+" from the date of this quotation."), "", "J", false)
	pdf.Ln(6)

	pdf.CellFormat(0, 5, "Thanking you,", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, sanitize("For "+b.CompanyName), "", 1, "L", false, 0, "")
	drawStamp(pdf, b, 15, pdf.GetY()+2)
	pdf.Ln(22)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 5, sanitize(data.SalesName), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	if data.SalesEmail != "" {
		pdf.CellFormat(0, 5, sanitize("Email: "+data.SalesEmail), "", 1, "L", false, 0, "")
	}
	if data.SalesMobile != "" {
		pdf.CellFormat(0, 5, sanitize("Mobile: "+data.SalesMobile), "", 1, "L", false, 0, "")
	}

	// Page two: commercial annexure.
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, sanitize(data.AnnexureText), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, sanitize("Quotation Ref: "+data.Number+"    Date: "+data.Date), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	itemTable(pdf, data.Items)
	totalsBlock(pdf, data.Totals)

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(35, 5, "Amount in Words:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, sanitize(data.AmountInWords), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// quoteCols are the annexure table widths, summing to the 180mm text width.
var quoteCols = []float64{10, 60, 22, 14, 22, 24, 10, 18}

// itemTable draws the line-item table shared by quotations and POs.
func itemTable(pdf *gofpdf.Fpdf, items []billing.LineItem) {
	headers := []string{"Sl", "Description", "Basic", "GST %", "GST Amt", "Unit Price", "Qty", "Total"}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(quoteCols[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i, it := range items {
		gstAmt := it.Basic * it.TaxPercent / 100
		unit := it.Basic + gstAmt
		total := unit * float64(it.Qty)

		pdf.CellFormat(quoteCols[0], 6, inr.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(quoteCols[1], 6, sanitize(it.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(quoteCols[2], 6, amount(it.Basic), "1", 0, "R", false, 0, "")
		pdf.CellFormat(quoteCols[3], 6, inr.Sprintf("%.1f", it.TaxPercent), "1", 0, "C", false, 0, "")
		pdf.CellFormat(quoteCols[4], 6, amount(gstAmt), "1", 0, "R", false, 0, "")
		pdf.CellFormat(quoteCols[5], 6, amount(unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(quoteCols[6], 6, inr.Sprintf("%d", it.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(quoteCols[7], 6, amount(total), "1", 1, "R", false, 0, "")
	}
}

// totalsBlock draws the subtotal/GST/round-off/grand-total rows under the table.
func totalsBlock(pdf *gofpdf.Fpdf, t billing.Totals) {
	labelW := quoteCols[0] + quoteCols[1] + quoteCols[2] + quoteCols[3] + quoteCols[4] + quoteCols[5] + quoteCols[6]
	valueW := quoteCols[7]

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 8)
		pdf.CellFormat(labelW, 6, label, "1", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, 6, value, "1", 1, "R", false, 0, "")
	}

	row("Total Basic Amount", amount(t.BaseSubtotal), false)
	row("Total GST", amount(t.TaxSubtotal), false)
	if t.RoundOff != 0 {
		row("Round Off", amount(t.RoundOff), false)
	}
	row("Grand Total", amount(t.GrandTotal), true)
}
