// Package docnum builds and parses the structured document numbers stamped on
// quotations, purchase orders and tax invoices. Parsing never fails: malformed
// input degrades to a well-defined default so a bad number in a request can
// never break generation.
package docnum

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prefix is the organization code carried by every document number.
const Prefix = "COM"

// DefaultSalesPerson is used when a number cannot be parsed.
const DefaultSalesPerson = "SP1"

// QuarterOf returns the fiscal quarter for the given time. The fiscal year
// starts in April: Apr-Jun is Q1, Jul-Sep is Q2, Oct-Dec is Q3, Jan-Mar is Q4.
func QuarterOf(t time.Time) string {
	switch t.Month() {
	case time.April, time.May, time.June:
		return "Q1"
	case time.July, time.August, time.September:
		return "Q2"
	case time.October, time.November, time.December:
		return "Q3"
	default:
		return "Q4"
	}
}

// yearRange returns the calendar year pair, e.g. "2025-2026".
func yearRange(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), t.Year()+1)
}

// shortYearRange returns the two-digit year pair, e.g. "25-26".
func shortYearRange(t time.Time) string {
	return fmt.Sprintf("%02d-%02d", t.Year()%100, (t.Year()+1)%100)
}

// seqInt converts a zero-padded sequence component to an int, defaulting to 1.
func seqInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Quotation is the parsed form of a quotation number:
// COM/{salesperson}/{quarter}/{dd-mm-yyyy}/{yyyy-yyyy}_{seq}.
type Quotation struct {
	Prefix      string
	SalesPerson string
	Quarter     string
	Date        string
	YearRange   string
	Sequence    string
}

// String reassembles the quotation number.
func (q Quotation) String() string {
	return fmt.Sprintf("%s/%s/%s/%s/%s_%s", q.Prefix, q.SalesPerson, q.Quarter, q.Date, q.YearRange, q.Sequence)
}

// SequenceInt returns the numeric sequence, defaulting to 1.
func (q Quotation) SequenceInt() int { return seqInt(q.Sequence) }

// FormatQuotation builds a quotation number for the given salesperson and
// sequence. The date, quarter and year range are always taken from now; a
// caller-supplied date is never preserved in the year-range component.
func FormatQuotation(salesPerson string, seq int, now time.Time) string {
	return Quotation{
		Prefix:      Prefix,
		SalesPerson: salesPerson,
		Quarter:     QuarterOf(now),
		Date:        now.Format("02-01-2006"),
		YearRange:   yearRange(now),
		Sequence:    fmt.Sprintf("%03d", seq),
	}.String()
}

// defaultQuotation is the fallback returned for unparseable input.
func defaultQuotation(now time.Time) Quotation {
	return Quotation{
		Prefix:      Prefix,
		SalesPerson: DefaultSalesPerson,
		Quarter:     QuarterOf(now),
		Date:        now.Format("02-01-2006"),
		YearRange:   yearRange(now),
		Sequence:    "001",
	}
}

// ParseQuotation splits a quotation number into its components. Structural
// failures (too few segments, non-numeric sequence) yield the default tuple.
func ParseQuotation(s string, now time.Time) Quotation {
	parts := strings.Split(s, "/")
	if len(parts) < 5 {
		return defaultQuotation(now)
	}
	tail := strings.SplitN(parts[4], "_", 2)
	seq := "001"
	if len(tail) == 2 {
		if !isDigits(tail[1]) {
			return defaultQuotation(now)
		}
		seq = tail[1]
	}
	return Quotation{
		Prefix:      parts[0],
		SalesPerson: parts[1],
		Quarter:     parts[2],
		Date:        parts[3],
		YearRange:   tail[0],
		Sequence:    seq,
	}
}

// NextQuotation produces the next quotation number after last. The sequence
// continues (last+1) only while the salesperson and fiscal quarter are
// unchanged; a different salesperson or a new quarter resets it to 1. With no
// previous number the fallback sequence (the registry's current value) is used.
func NextQuotation(last, salesPerson string, fallback int, now time.Time) string {
	if last == "" {
		return FormatQuotation(salesPerson, fallback, now)
	}
	prev := ParseQuotation(last, now)
	if prev.SalesPerson == salesPerson && prev.Quarter == QuarterOf(now) {
		return FormatQuotation(salesPerson, prev.SequenceInt()+1, now)
	}
	return FormatQuotation(salesPerson, 1, now)
}

// PurchaseOrder is the parsed form of a purchase-order number:
// COM/{salesperson}/{yyyy}/{quarter}_{seq}.
type PurchaseOrder struct {
	Prefix      string
	SalesPerson string
	Year        string
	Quarter     string
	Sequence    string
}

// String reassembles the purchase-order number.
func (p PurchaseOrder) String() string {
	return fmt.Sprintf("%s/%s/%s/%s_%s", p.Prefix, p.SalesPerson, p.Year, p.Quarter, p.Sequence)
}

// SequenceInt returns the numeric sequence, defaulting to 1.
func (p PurchaseOrder) SequenceInt() int { return seqInt(p.Sequence) }

// FormatPurchaseOrder builds a purchase-order number for the given salesperson
// and sequence, stamped with the current year and fiscal quarter.
func FormatPurchaseOrder(salesPerson string, seq int, now time.Time) string {
	return PurchaseOrder{
		Prefix:      Prefix,
		SalesPerson: salesPerson,
		Year:        strconv.Itoa(now.Year()),
		Quarter:     QuarterOf(now),
		Sequence:    fmt.Sprintf("%03d", seq),
	}.String()
}

func defaultPurchaseOrder(now time.Time) PurchaseOrder {
	return PurchaseOrder{
		Prefix:      Prefix,
		SalesPerson: DefaultSalesPerson,
		Year:        strconv.Itoa(now.Year()),
		Quarter:     QuarterOf(now),
		Sequence:    "001",
	}
}

// ParsePurchaseOrder splits a purchase-order number into its components,
// falling back to the default tuple on structural failure.
func ParsePurchaseOrder(s string, now time.Time) PurchaseOrder {
	parts := strings.Split(s, "/")
	if len(parts) < 4 {
		return defaultPurchaseOrder(now)
	}
	tail := strings.SplitN(parts[3], "_", 2)
	seq := "001"
	if len(tail) == 2 {
		if !isDigits(tail[1]) {
			return defaultPurchaseOrder(now)
		}
		seq = tail[1]
	}
	return PurchaseOrder{
		Prefix:      parts[0],
		SalesPerson: parts[1],
		Year:        parts[2],
		Quarter:     tail[0],
		Sequence:    seq,
	}
}

// NextPurchaseOrder produces the next purchase-order number after last, with
// the same salesperson+quarter continuation rule as quotations.
func NextPurchaseOrder(last, salesPerson string, fallback int, now time.Time) string {
	if last == "" {
		return FormatPurchaseOrder(salesPerson, fallback, now)
	}
	prev := ParsePurchaseOrder(last, now)
	if prev.SalesPerson == salesPerson && prev.Quarter == QuarterOf(now) {
		return FormatPurchaseOrder(salesPerson, prev.SequenceInt()+1, now)
	}
	return FormatPurchaseOrder(salesPerson, 1, now)
}

// Invoice is the parsed form of an invoice number:
// COM/{yy-yy}/{quarter}/{seq}. Invoices carry no salesperson component and
// use a two-digit sequence.
type Invoice struct {
	Prefix    string
	YearRange string
	Quarter   string
	Sequence  string
}

// String reassembles the invoice number.
func (i Invoice) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", i.Prefix, i.YearRange, i.Quarter, i.Sequence)
}

// SequenceInt returns the numeric sequence, defaulting to 1.
func (i Invoice) SequenceInt() int { return seqInt(i.Sequence) }

// FormatInvoice builds an invoice number for the given sequence, stamped with
// the short year range and current fiscal quarter.
func FormatInvoice(seq int, now time.Time) string {
	return Invoice{
		Prefix:    Prefix,
		YearRange: shortYearRange(now),
		Quarter:   QuarterOf(now),
		Sequence:  fmt.Sprintf("%02d", seq),
	}.String()
}

func defaultInvoice(now time.Time) Invoice {
	return Invoice{
		Prefix:    Prefix,
		YearRange: shortYearRange(now),
		Quarter:   QuarterOf(now),
		Sequence:  "01",
	}
}

// ParseInvoice splits an invoice number into its components, falling back to
// the default tuple on structural failure.
func ParseInvoice(s string, now time.Time) Invoice {
	parts := strings.Split(s, "/")
	if len(parts) < 4 || !isDigits(parts[3]) {
		return defaultInvoice(now)
	}
	return Invoice{
		Prefix:    parts[0],
		YearRange: parts[1],
		Quarter:   parts[2],
		Sequence:  parts[3],
	}
}

// NextInvoice produces the next invoice number after last. Invoices continue
// the sequence within a fiscal quarter regardless of salesperson; a new
// quarter resets it to 1.
func NextInvoice(last string, fallback int, now time.Time) string {
	if last == "" {
		return FormatInvoice(fallback, now)
	}
	prev := ParseInvoice(last, now)
	if prev.Quarter == QuarterOf(now) {
		return FormatInvoice(prev.SequenceInt()+1, now)
	}
	return FormatInvoice(1, now)
}
