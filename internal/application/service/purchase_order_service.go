package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comdesk/comdesk-api/internal/domain/entity"
	"github.com/comdesk/comdesk-api/internal/domain/enum"
	"github.com/comdesk/comdesk-api/internal/domain/repository"
	"github.com/comdesk/comdesk-api/pkg/apperror"
	"github.com/comdesk/comdesk-api/pkg/billing"
	"github.com/comdesk/comdesk-api/pkg/docnum"
	"github.com/comdesk/comdesk-api/pkg/numwords"
	"github.com/comdesk/comdesk-api/pkg/pdf"
)

// PurchaseOrderService owns the purchase-order numbering run and renders
// purchase orders.
type PurchaseOrderService struct {
	sequenceRepo repository.SequenceRepository
	vendorRepo   repository.VendorRepository
	endUserRepo  repository.EndUserRepository
	productRepo  repository.ProductRepository
	branding     pdf.Branding

	mu         sync.Mutex
	lastNumber string
	now        func() time.Time
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	sequenceRepo repository.SequenceRepository,
	vendorRepo repository.VendorRepository,
	endUserRepo repository.EndUserRepository,
	productRepo repository.ProductRepository,
	branding pdf.Branding,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		sequenceRepo: sequenceRepo,
		vendorRepo:   vendorRepo,
		endUserRepo:  endUserRepo,
		productRepo:  productRepo,
		branding:     branding,
		now:          time.Now,
	}
}

// GeneratePurchaseOrderInput represents the purchase-order form submission
type GeneratePurchaseOrderInput struct {
	SalesPersonCode string
	VendorName      string
	BillToCompany   string
	BillToAddress   string
	ShipToCompany   string
	ShipToAddress   string
	EndUserName     string
	PaymentTerms    string
	DeliveryTerms   string
	PreparedBy      string
	AuthorizedBy    string
	Items           []QuotationItemInput
	NumberOverride  string
	AutoIncrement   *bool
}

// GeneratePurchaseOrderOutput carries the finalized purchase order and PDF
type GeneratePurchaseOrderOutput struct {
	PurchaseOrder *entity.PurchaseOrder
	PDF           []byte
}

// PreviewNumber returns the number the next generated purchase order would
// get, without assigning it.
func (s *PurchaseOrderService) PreviewNumber(ctx context.Context, salesPersonCode string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	fallback := s.sequenceRepo.Peek(ctx, enum.DocTypePurchaseOrder)
	return docnum.NextPurchaseOrder(s.lastNumber, salesPersonCode, fallback, s.now())
}

// LastNumber returns the most recently assigned purchase-order number.
func (s *PurchaseOrderService) LastNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastNumber
}

// Generate finalizes a purchase order: assigns the number, computes totals,
// renders the PDF and advances the counter.
func (s *PurchaseOrderService) Generate(ctx context.Context, input *GeneratePurchaseOrderInput) (*GeneratePurchaseOrderOutput, error) {
	items, err := s.resolveItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	code := input.SalesPersonCode
	if code == "" {
		code = docnum.DefaultSalesPerson
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	number := strings.TrimSpace(input.NumberOverride)
	if number == "" {
		fallback := s.sequenceRepo.Peek(ctx, enum.DocTypePurchaseOrder)
		number = docnum.NextPurchaseOrder(s.lastNumber, code, fallback, now)
	} else {
		number = docnum.ParsePurchaseOrder(number, now).String()
	}

	totals := billing.Calculate(items)
	words := numwords.Rupees(totals.GrandTotal)
	date := now.Format("02-01-2006")

	po := &entity.PurchaseOrder{
		ID:              uuid.New(),
		Number:          number,
		Date:            date,
		SalesPersonCode: code,
		BillToCompany:   input.BillToCompany,
		BillToAddress:   input.BillToAddress,
		ShipToCompany:   input.ShipToCompany,
		ShipToAddress:   input.ShipToAddress,
		PaymentTerms:    input.PaymentTerms,
		DeliveryTerms:   input.DeliveryTerms,
		PreparedBy:      input.PreparedBy,
		AuthorizedBy:    input.AuthorizedBy,
		Items:           items,
		Totals:          totals,
		AmountInWords:   words,
		GeneratedAt:     now,
	}

	if vendor, err := s.vendorRepo.GetByName(ctx, input.VendorName); err == nil && vendor != nil {
		po.VendorName = vendor.Name
		po.VendorAddress = vendor.Address
		po.VendorContact = vendor.Contact
		po.VendorMobile = vendor.Mobile
		po.GSTNo = vendor.GSTNo
		po.PANNo = vendor.PANNo
		po.MSMENo = vendor.MSMENo
	} else {
		po.VendorName = input.VendorName
	}

	if end, err := s.endUserRepo.GetByName(ctx, input.EndUserName); err == nil && end != nil {
		po.EndCompany = end.Name
		po.EndAddress = end.Address
		po.EndPerson = end.ContactPerson
		po.EndMobile = end.Mobile
		po.EndEmail = end.Email
	} else {
		po.EndCompany = input.EndUserName
	}

	data := pdf.PurchaseOrderData{
		Number:        po.Number,
		Date:          po.Date,
		VendorName:    po.VendorName,
		VendorAddress: po.VendorAddress,
		VendorContact: po.VendorContact,
		VendorMobile:  po.VendorMobile,
		GSTNo:         po.GSTNo,
		PANNo:         po.PANNo,
		MSMENo:        po.MSMENo,
		BillToCompany: po.BillToCompany,
		BillToAddress: po.BillToAddress,
		ShipToCompany: po.ShipToCompany,
		ShipToAddress: po.ShipToAddress,
		EndCompany:    po.EndCompany,
		EndAddress:    po.EndAddress,
		EndPerson:     po.EndPerson,
		EndMobile:     po.EndMobile,
		EndEmail:      po.EndEmail,
		PaymentTerms:  po.PaymentTerms,
		DeliveryTerms: po.DeliveryTerms,
		PreparedBy:    po.PreparedBy,
		AuthorizedBy:  po.AuthorizedBy,
		Items:         po.Items,
		Totals:        po.Totals,
		AmountInWords: po.AmountInWords,
	}

	rendered, err := pdf.RenderPurchaseOrder(data, s.branding)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to render purchase order PDF")
	}

	s.lastNumber = po.Number
	if input.AutoIncrement == nil || *input.AutoIncrement {
		if _, err := s.sequenceRepo.Advance(ctx, enum.DocTypePurchaseOrder); err != nil {
			return nil, err
		}
	}

	return &GeneratePurchaseOrderOutput{PurchaseOrder: po, PDF: rendered}, nil
}

// ResetSequence restarts the purchase-order run from 1.
func (s *PurchaseOrderService) ResetSequence(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sequenceRepo.Reset(ctx, enum.DocTypePurchaseOrder); err != nil {
		return err
	}
	s.lastNumber = ""
	return nil
}

func (s *PurchaseOrderService) resolveItems(ctx context.Context, inputs []QuotationItemInput) ([]billing.LineItem, error) {
	if len(inputs) == 0 {
		return nil, apperror.NewBadRequestError("Add at least one item")
	}
	items := make([]billing.LineItem, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Name) == "" {
			return nil, apperror.NewBadRequestError("Item name is required")
		}
		if in.Qty <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}
		item := billing.LineItem{
			Name:       in.Name,
			Basic:      in.Basic,
			TaxPercent: in.TaxPercent,
			Qty:        in.Qty,
		}
		if item.Basic == 0 && item.TaxPercent == 0 {
			if p, err := s.productRepo.GetByName(ctx, in.Name); err == nil && p != nil {
				item.Basic = p.Basic
				item.TaxPercent = p.TaxPercent
			}
		}
		items = append(items, item)
	}
	return items, nil
}
