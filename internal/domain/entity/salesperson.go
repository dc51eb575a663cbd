package entity

// SalesPerson is a back-office staff account. Accounts are declared in
// configuration; the code (e.g. "SP1") is embedded in quotation and
// purchase-order numbers.
type SalesPerson struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	PasswordHash string `json:"-"`
}
