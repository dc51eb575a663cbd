package entity

// Product is a catalog entry with its pre-tax unit price and tax rate.
// The catalog is loaded from the products file at startup.
type Product struct {
	Name       string  `json:"name"`
	Basic      float64 `json:"basic"`
	TaxPercent float64 `json:"tax_percent"`
}
