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

// InvoiceService owns the tax-invoice numbering run and renders invoices.
// Invoice numbers carry no salesperson segment, so continuation only checks
// the fiscal quarter. The assigned sequence is written back to the counter
// so a manual override re-anchors the run.
type InvoiceService struct {
	sequenceRepo repository.SequenceRepository
	endUserRepo  repository.EndUserRepository
	branding     pdf.Branding
	declaration  string

	mu         sync.Mutex
	lastNumber string
	now        func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	sequenceRepo repository.SequenceRepository,
	endUserRepo repository.EndUserRepository,
	branding pdf.Branding,
	declaration string,
) *InvoiceService {
	return &InvoiceService{
		sequenceRepo: sequenceRepo,
		endUserRepo:  endUserRepo,
		branding:     branding,
		declaration:  declaration,
		now:          time.Now,
	}
}

// InvoiceItemInput is one line of the invoice form
type InvoiceItemInput struct {
	Description string
	HSN         string
	Quantity    float64
	UnitRate    float64
}

// GenerateInvoiceInput represents the tax-invoice form submission
type GenerateInvoiceInput struct {
	BuyerName          string
	SuppliersReference string
	OtherReference     string
	BuyersOrderNo      string
	BuyersOrderDate    string
	DispatchedThrough  string
	PaymentTerms       string
	TermsOfDelivery    string
	Destination        string
	Items              []InvoiceItemInput
	NumberOverride     string
	AutoIncrement      *bool
}

// GenerateInvoiceOutput carries the finalized invoice and its rendered PDF
type GenerateInvoiceOutput struct {
	Invoice *entity.Invoice
	PDF     []byte
}

// PreviewNumber returns the number the next generated invoice would get,
// without assigning it.
func (s *InvoiceService) PreviewNumber(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	fallback := s.sequenceRepo.Peek(ctx, enum.DocTypeInvoice)
	return docnum.NextInvoice(s.lastNumber, fallback, s.now())
}

// LastNumber returns the most recently assigned invoice number.
func (s *InvoiceService) LastNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastNumber
}

// Generate finalizes a tax invoice: assigns the number, applies the fixed
// SGST/CGST split, renders the PDF and re-anchors the counter.
func (s *InvoiceService) Generate(ctx context.Context, input *GenerateInvoiceInput) (*GenerateInvoiceOutput, error) {
	items, err := resolveInvoiceItems(input.Items)
	if err != nil {
		return nil, err
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	number := strings.TrimSpace(input.NumberOverride)
	if number == "" {
		fallback := s.sequenceRepo.Peek(ctx, enum.DocTypeInvoice)
		number = docnum.NextInvoice(s.lastNumber, fallback, now)
	} else {
		number = docnum.ParseInvoice(number, now).String()
	}
	seq := docnum.ParseInvoice(number, now).SequenceInt()

	totals := billing.CalculateInvoice(items)
	date := now.Format("02-01-2006")

	seller := entity.Vendor{
		Name:    s.branding.CompanyName,
		Address: s.branding.CompanyAddress,
		Email:   s.branding.CompanyEmail,
		Mobile:  s.branding.CompanyPhone,
		GSTNo:   s.branding.CompanyGSTNo,
	}

	inv := &entity.Invoice{
		ID:     uuid.New(),
		Number: number,
		Date:   date,
		Reference: entity.InvoiceReference{
			SuppliersReference: input.SuppliersReference,
			Other:              input.OtherReference,
		},
		Vendor: seller,
		Details: entity.InvoiceDetails{
			BuyersOrderNo:     input.BuyersOrderNo,
			BuyersOrderDate:   input.BuyersOrderDate,
			DispatchedThrough: input.DispatchedThrough,
			PaymentTerms:      input.PaymentTerms,
			TermsOfDelivery:   input.TermsOfDelivery,
			Destination:       input.Destination,
		},
		Items:         items,
		Totals:        totals,
		AmountInWords: numwords.Rupees(totals.FinalAmount),
		TaxInWords:    numwords.Rupees(totals.SGST + totals.CGST),
		Declaration:   s.declaration,
		GeneratedAt:   now,
	}

	if buyer, err := s.endUserRepo.GetByName(ctx, input.BuyerName); err == nil && buyer != nil {
		inv.Buyer = *buyer
	} else {
		inv.Buyer = entity.EndUser{Name: input.BuyerName}
	}

	data := pdf.InvoiceData{
		Number:             inv.Number,
		Date:               inv.Date,
		SuppliersReference: inv.Reference.SuppliersReference,
		OtherReference:     inv.Reference.Other,
		Vendor: pdf.InvoiceParty{
			Name:    seller.Name,
			Address: seller.Address,
			GSTNo:   seller.GSTNo,
			Mobile:  seller.Mobile,
			Email:   seller.Email,
		},
		Buyer: pdf.InvoiceParty{
			Name:    inv.Buyer.Name,
			Address: inv.Buyer.Address,
			GSTNo:   inv.Buyer.GSTNo,
			Mobile:  inv.Buyer.Mobile,
			Email:   inv.Buyer.Email,
		},
		BuyersOrderNo:     inv.Details.BuyersOrderNo,
		BuyersOrderDate:   inv.Details.BuyersOrderDate,
		DispatchedThrough: inv.Details.DispatchedThrough,
		PaymentTerms:      inv.Details.PaymentTerms,
		TermsOfDelivery:   inv.Details.TermsOfDelivery,
		Destination:       inv.Details.Destination,
		Items:             inv.Items,
		Totals:            inv.Totals,
		AmountInWords:     inv.AmountInWords,
		TaxInWords:        inv.TaxInWords,
		Declaration:       inv.Declaration,
	}

	rendered, err := pdf.RenderInvoice(data, s.branding)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to render invoice PDF")
	}

	s.lastNumber = inv.Number

	// Anchor the counter to the assigned sequence so the run survives a
	// restart, then advance past it when the operator keeps auto mode on.
	if err := s.sequenceRepo.Set(ctx, enum.DocTypeInvoice, seq); err != nil {
		return nil, err
	}
	if input.AutoIncrement == nil || *input.AutoIncrement {
		if _, err := s.sequenceRepo.Advance(ctx, enum.DocTypeInvoice); err != nil {
			return nil, err
		}
	}

	return &GenerateInvoiceOutput{Invoice: inv, PDF: rendered}, nil
}

// ResetSequence restarts the invoice run from 1.
func (s *InvoiceService) ResetSequence(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sequenceRepo.Reset(ctx, enum.DocTypeInvoice); err != nil {
		return err
	}
	s.lastNumber = ""
	return nil
}

func resolveInvoiceItems(inputs []InvoiceItemInput) ([]billing.InvoiceItem, error) {
	if len(inputs) == 0 {
		return nil, apperror.NewBadRequestError("Add at least one item")
	}
	items := make([]billing.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Description) == "" {
			return nil, apperror.NewBadRequestError("Item description is required")
		}
		if in.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		items = append(items, billing.InvoiceItem{
			Description: in.Description,
			HSN:         in.HSN,
			Quantity:    in.Quantity,
			UnitRate:    in.UnitRate,
		})
	}
	return items, nil
}
