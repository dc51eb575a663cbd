// Package numwords spells out currency amounts in the Indian numbering system
// (thousand, lakh, crore) for the amount-in-words line on commercial papers.
package numwords

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// below100 spells 1..99.
func below100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}

// below1000 spells 1..999.
func below1000(n int64) string {
	if n < 100 {
		return below100(n)
	}
	s := ones[n/100] + " Hundred"
	if n%100 != 0 {
		s += " " + below100(n%100)
	}
	return s
}

// Words converts a non-negative integer to words in the Indian system.
// Zero yields "Zero". Amounts of a crore crore and above keep stacking crore
// groups, matching how such figures are conventionally read out.
func Words(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + Words(-n)
	}

	var parts []string
	if n >= 1e7 {
		parts = append(parts, Words(n/1e7)+" Crore")
		n %= 1e7
	}
	if n >= 1e5 {
		parts = append(parts, below100(n/1e5)+" Lakh")
		n %= 1e5
	}
	if n >= 1000 {
		parts = append(parts, below100(n/1000)+" Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, below1000(n))
	}
	return strings.Join(parts, " ")
}

// Rupees renders an amount as the customary words line, e.g.
// "One Thousand One Hundred Eighty Rupees Only/-" or, with a fractional part,
// "Ninety Rupees And Fifty Paise Only/-".
func Rupees(amount float64) string {
	rupees := int64(amount)
	paise := int64(math.RoundToEven((amount - float64(rupees)) * 100))
	if paise >= 100 {
		rupees++
		paise = 0
	}

	if paise > 0 {
		return Words(rupees) + " Rupees And " + Words(paise) + " Paise Only/-"
	}
	return Words(rupees) + " Rupees Only/-"
}
