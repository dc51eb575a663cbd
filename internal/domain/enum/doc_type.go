package enum

// DocType identifies which commercial paper a sequence counter or number
// belongs to. Each type owns an independent counter.
type DocType string

const (
	DocTypeQuotation     DocType = "quotation"
	DocTypePurchaseOrder DocType = "purchase_order"
	DocTypeInvoice       DocType = "invoice"
)

// Valid reports whether d is one of the known document types.
func (d DocType) Valid() bool {
	switch d {
	case DocTypeQuotation, DocTypePurchaseOrder, DocTypeInvoice:
		return true
	}
	return false
}

func (d DocType) String() string {
	return string(d)
}
