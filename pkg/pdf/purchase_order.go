package pdf

import (
	"bytes"

	"github.com/comdesk/comdesk-api/pkg/billing"
)

// PurchaseOrderData is everything the purchase-order layout needs.
type PurchaseOrderData struct {
	Number        string
	Date          string
	VendorName    string
	VendorAddress string
	VendorContact string
	VendorMobile  string
	GSTNo         string
	PANNo         string
	MSMENo        string
	BillToCompany string
	BillToAddress string
	ShipToCompany string
	ShipToAddress string
	EndCompany    string
	EndAddress    string
	EndPerson     string
	EndMobile     string
	EndEmail      string
	PaymentTerms  string
	DeliveryTerms string
	PreparedBy    string
	AuthorizedBy  string
	Items         []billing.LineItem
	Totals        billing.Totals
	AmountInWords string
}

// RenderPurchaseOrder produces the single-page purchase order.
func RenderPurchaseOrder(data PurchaseOrderData, b Branding) ([]byte, error) {
	pdf := newDoc()
	pdf.SetHeaderFunc(func() {
		drawLogo(pdf, b)
		pdf.SetY(10)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 7, sanitize(b.CompanyName), "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 6, "PURCHASE ORDER", "", 1, "C", false, 0, "")
		pdf.SetDrawColor(120, 120, 120)
		pdf.Line(15, pdf.GetY()+1, 195, pdf.GetY()+1)
		pdf.SetY(pdf.GetY() + 4)
	})
	pageFooter(pdf, b)
	pdf.AddPage()

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(120, 5, sanitize("PO Number: "+data.Number), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, sanitize("Date: "+data.Date), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Vendor and registration block.
	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(90, 5, "To (Vendor)", "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 5, "Registration", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 8)
	yTop := pdf.GetY()
	pdf.MultiCell(90, 4, sanitize(data.VendorName+"\n"+data.VendorAddress+"\nContact: "+data.VendorContact+"\nMobile: "+data.VendorMobile), "1", "L", false)
	hLeft := pdf.GetY() - yTop
	pdf.SetXY(105, yTop)
	pdf.MultiCell(90, 4, sanitize("GST No: "+data.GSTNo+"\nPAN No: "+data.PANNo+"\nMSME No: "+data.MSMENo), "1", "L", false)
	if pdf.GetY()-yTop < hLeft {
		pdf.SetY(yTop + hLeft)
	}
	pdf.Ln(2)

	// Bill-to / ship-to block.
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(90, 5, "Bill To", "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 5, "Ship To", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 8)
	yTop = pdf.GetY()
	pdf.MultiCell(90, 4, sanitize(data.BillToCompany+"\n"+data.BillToAddress), "1", "L", false)
	hLeft = pdf.GetY() - yTop
	pdf.SetXY(105, yTop)
	pdf.MultiCell(90, 4, sanitize(data.ShipToCompany+"\n"+data.ShipToAddress), "1", "L", false)
	if pdf.GetY()-yTop < hLeft {
		pdf.SetY(yTop + hLeft)
	}
	pdf.Ln(2)

	// End customer block.
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, "End Customer", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 8)
	end := data.EndCompany + ", " + data.EndAddress
	if data.EndPerson != "" {
		end += "\nAttn: " + data.EndPerson + "  Mobile: " + data.EndMobile + "  Email: " + data.EndEmail
	}
	pdf.MultiCell(0, 4, sanitize(end), "1", "L", false)
	pdf.Ln(3)

	itemTable(pdf, data.Items)
	totalsBlock(pdf, data.Totals)

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(35, 5, "Amount in Words:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(0, 5, sanitize(data.AmountInWords), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, sanitize("Payment Terms: "+data.PaymentTerms), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, sanitize("Delivery Terms: "+data.DeliveryTerms), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Signature block.
	drawStamp(pdf, b, 150, pdf.GetY())
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(90, 5, sanitize("Prepared By: "+data.PreparedBy), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, sanitize("For "+data.AuthorizedBy), "", 1, "R", false, 0, "")
	pdf.Ln(16)
	pdf.CellFormat(90, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Authorized Signatory", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
