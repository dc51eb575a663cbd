package request

// LineItemRequest is one row of the quotation or purchase-order item table.
// Basic and TaxPercent may be omitted when the name matches a catalog
// product.
type LineItemRequest struct {
	Name       string  `json:"name" binding:"required"`
	Basic      float64 `json:"basic" binding:"min=0"`
	TaxPercent float64 `json:"tax_percent" binding:"min=0,max=100"`
	Qty        int     `json:"qty" binding:"required,min=1"`
}

// GenerateQuotationRequest represents a quotation generation request
type GenerateQuotationRequest struct {
	VendorName     string            `json:"vendor_name" binding:"required"`
	Title          string            `json:"title"`
	Subject        string            `json:"subject"`
	Intro          string            `json:"intro"`
	AnnexureText   string            `json:"annexure_text"`
	PriceValidity  string            `json:"price_validity"`
	Items          []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	NumberOverride string            `json:"number_override"`
	AutoIncrement  *bool             `json:"auto_increment"`
}

// GeneratePurchaseOrderRequest represents a purchase-order generation request
type GeneratePurchaseOrderRequest struct {
	VendorName     string            `json:"vendor_name" binding:"required"`
	BillToCompany  string            `json:"bill_to_company"`
	BillToAddress  string            `json:"bill_to_address"`
	ShipToCompany  string            `json:"ship_to_company"`
	ShipToAddress  string            `json:"ship_to_address"`
	EndUserName    string            `json:"end_user_name"`
	PaymentTerms   string            `json:"payment_terms"`
	DeliveryTerms  string            `json:"delivery_terms"`
	PreparedBy     string            `json:"prepared_by"`
	AuthorizedBy   string            `json:"authorized_by"`
	Items          []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	NumberOverride string            `json:"number_override"`
	AutoIncrement  *bool             `json:"auto_increment"`
}

// InvoiceItemRequest is one row of the tax-invoice item table
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	HSN         string  `json:"hsn"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitRate    float64 `json:"unit_rate" binding:"min=0"`
}

// GenerateInvoiceRequest represents a tax-invoice generation request
type GenerateInvoiceRequest struct {
	BuyerName          string               `json:"buyer_name" binding:"required"`
	SuppliersReference string               `json:"suppliers_reference"`
	OtherReference     string               `json:"other_reference"`
	BuyersOrderNo      string               `json:"buyers_order_no"`
	BuyersOrderDate    string               `json:"buyers_order_date"`
	DispatchedThrough  string               `json:"dispatched_through"`
	PaymentTerms       string               `json:"payment_terms"`
	TermsOfDelivery    string               `json:"terms_of_delivery"`
	Destination        string               `json:"destination"`
	Items              []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	NumberOverride     string               `json:"number_override"`
	AutoIncrement      *bool                `json:"auto_increment"`
}
