// Package pdf renders the three commercial papers (quotation, purchase order,
// tax invoice) as fixed-layout A4 documents. The layouts are deliberately
// hand-placed to reproduce the organization's established paper forms; this
// is not a general layout engine.
package pdf

import (
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Branding carries the fixed organization identity printed on every document.
type Branding struct {
	CompanyName    string
	CompanyAddress string
	CompanyEmail   string
	CompanyPhone   string
	CompanyGSTNo   string
	LogoPath       string
	StampPath      string
}

// inr formats amounts with Indian digit grouping (12,34,567.89).
var inr = message.NewPrinter(language.MustParse("en-IN"))

// amount renders a currency value with two decimals and Indian grouping.
func amount(v float64) string {
	return inr.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

var textReplacer = strings.NewReplacer(
	"₹", "Rs. ",
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-",
	" ", " ",
)

// sanitize makes text safe for the built-in latin-1 fonts.
func sanitize(s string) string {
	s = textReplacer.Replace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || (r >= 0x20 && r <= 0xff) {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// fileExists reports whether an optional asset can be drawn.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// newDoc creates an A4 portrait document with the standard margins.
func newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetLeftMargin(15)
	pdf.SetRightMargin(15)
	return pdf
}

// drawLogo places the company logo at the top-left if the asset is present.
func drawLogo(pdf *gofpdf.Fpdf, b Branding) {
	if fileExists(b.LogoPath) {
		pdf.ImageOptions(b.LogoPath, 15, 8, 32, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}
}

// drawStamp places the company stamp above the signature block.
func drawStamp(pdf *gofpdf.Fpdf, b Branding, x, y float64) {
	if fileExists(b.StampPath) {
		pdf.ImageOptions(b.StampPath, x, y, 28, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}
}

// pageFooter registers the standard footer: rule, contact line, page number.
func pageFooter(pdf *gofpdf.Fpdf, b Branding) {
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetDrawColor(120, 120, 120)
		pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
		pdf.SetFont("Arial", "", 7)
		pdf.SetTextColor(90, 90, 90)
		contact := sanitize(b.CompanyAddress)
		if b.CompanyEmail != "" {
			contact += " | " + b.CompanyEmail
		}
		if b.CompanyPhone != "" {
			contact += " | " + b.CompanyPhone
		}
		pdf.CellFormat(0, 4, contact, "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 4, inr.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
}
