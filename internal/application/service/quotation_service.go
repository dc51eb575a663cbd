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

// QuotationService owns the quotation numbering run and renders quotations.
// The last assigned number is held in memory; the persisted counter only
// backs the run when there is no in-memory continuation to extend.
type QuotationService struct {
	sequenceRepo    repository.SequenceRepository
	vendorRepo      repository.VendorRepository
	productRepo     repository.ProductRepository
	salesPersonRepo repository.SalesPersonRepository
	branding        pdf.Branding

	mu         sync.Mutex
	lastNumber string
	now        func() time.Time
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	sequenceRepo repository.SequenceRepository,
	vendorRepo repository.VendorRepository,
	productRepo repository.ProductRepository,
	salesPersonRepo repository.SalesPersonRepository,
	branding pdf.Branding,
) *QuotationService {
	return &QuotationService{
		sequenceRepo:    sequenceRepo,
		vendorRepo:      vendorRepo,
		productRepo:     productRepo,
		salesPersonRepo: salesPersonRepo,
		branding:        branding,
		now:             time.Now,
	}
}

// QuotationItemInput is one line of the quotation form. Basic and TaxPercent
// default from the product catalog when the name matches a catalog entry.
type QuotationItemInput struct {
	Name       string
	Basic      float64
	TaxPercent float64
	Qty        int
}

// GenerateQuotationInput represents the quotation form submission
type GenerateQuotationInput struct {
	SalesPersonCode string
	VendorName      string
	Title           string
	Subject         string
	Intro           string
	AnnexureText    string
	PriceValidity   string
	Items           []QuotationItemInput
	// NumberOverride replaces the computed number when set.
	NumberOverride string
	// AutoIncrement advances the persisted counter after generation.
	// Nil means true.
	AutoIncrement *bool
}

// GenerateQuotationOutput carries the finalized quotation and its rendered PDF
type GenerateQuotationOutput struct {
	Quotation *entity.Quotation
	PDF       []byte
}

// PreviewNumber returns the number the next generated quotation would get,
// without assigning it.
func (s *QuotationService) PreviewNumber(ctx context.Context, salesPersonCode string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	fallback := s.sequenceRepo.Peek(ctx, enum.DocTypeQuotation)
	return docnum.NextQuotation(s.lastNumber, salesPersonCode, fallback, s.now())
}

// LastNumber returns the most recently assigned quotation number, or "" when
// no quotation has been generated yet.
func (s *QuotationService) LastNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastNumber
}

// Generate finalizes a quotation: assigns the number, computes totals,
// renders the PDF and advances the counter.
func (s *QuotationService) Generate(ctx context.Context, input *GenerateQuotationInput) (*GenerateQuotationOutput, error) {
	items, err := s.resolveItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	sp := s.lookupSalesPerson(ctx, input.SalesPersonCode)

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	number := strings.TrimSpace(input.NumberOverride)
	if number == "" {
		fallback := s.sequenceRepo.Peek(ctx, enum.DocTypeQuotation)
		number = docnum.NextQuotation(s.lastNumber, sp.Code, fallback, now)
	} else {
		// Normalize an operator-supplied number through the codec so a
		// partially edited value still yields a well-formed one.
		number = docnum.ParseQuotation(number, now).String()
	}

	totals := billing.Calculate(items)
	words := numwords.Rupees(totals.GrandTotal)
	date := now.Format("02-01-2006")

	q := &entity.Quotation{
		ID:              uuid.New(),
		Number:          number,
		Date:            date,
		SalesPersonCode: sp.Code,
		Title:           input.Title,
		Subject:         input.Subject,
		Intro:           input.Intro,
		AnnexureText:    input.AnnexureText,
		PriceValidity:   input.PriceValidity,
		Items:           items,
		Totals:          totals,
		AmountInWords:   words,
		GeneratedAt:     now,
	}

	if vendor, err := s.vendorRepo.GetByName(ctx, input.VendorName); err == nil && vendor != nil {
		q.VendorName = vendor.Name
		q.VendorAddress = vendor.Address
		q.VendorEmail = vendor.Email
		q.VendorContact = vendor.Contact
		q.VendorMobile = vendor.Mobile
	} else {
		q.VendorName = input.VendorName
	}

	data := pdf.QuotationData{
		Number:        q.Number,
		Date:          q.Date,
		VendorName:    q.VendorName,
		VendorAddress: q.VendorAddress,
		VendorEmail:   q.VendorEmail,
		VendorContact: q.VendorContact,
		VendorMobile:  q.VendorMobile,
		Title:         q.Title,
		Subject:       q.Subject,
		Intro:         q.Intro,
		AnnexureText:  q.AnnexureText,
		PriceValidity: q.PriceValidity,
		SalesPerson:   sp.Code,
		SalesName:     sp.Name,
		SalesEmail:    sp.Email,
		SalesMobile:   sp.Mobile,
		Items:         q.Items,
		Totals:        q.Totals,
		AmountInWords: q.AmountInWords,
	}

	rendered, err := pdf.RenderQuotation(data, s.branding)
	if err != nil {
		return nil, apperror.NewAppError(500, "Failed to render quotation PDF")
	}

	s.lastNumber = q.Number
	if input.AutoIncrement == nil || *input.AutoIncrement {
		if _, err := s.sequenceRepo.Advance(ctx, enum.DocTypeQuotation); err != nil {
			return nil, err
		}
	}

	return &GenerateQuotationOutput{Quotation: q, PDF: rendered}, nil
}

// ResetSequence restarts the quotation run from 1.
func (s *QuotationService) ResetSequence(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sequenceRepo.Reset(ctx, enum.DocTypeQuotation); err != nil {
		return err
	}
	s.lastNumber = ""
	return nil
}

func (s *QuotationService) resolveItems(ctx context.Context, inputs []QuotationItemInput) ([]billing.LineItem, error) {
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

// lookupSalesPerson resolves the signing salesperson; an unknown code falls
// back to a bare account carrying the default code so number generation
// still works.
func (s *QuotationService) lookupSalesPerson(ctx context.Context, code string) entity.SalesPerson {
	if code == "" {
		code = docnum.DefaultSalesPerson
	}
	if sp, err := s.salesPersonRepo.GetByCode(ctx, code); err == nil && sp != nil {
		return *sp
	}
	return entity.SalesPerson{Code: code}
}
