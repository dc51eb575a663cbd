package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comdesk/comdesk-api/internal/domain/entity"
	"github.com/comdesk/comdesk-api/internal/domain/enum"
	"github.com/comdesk/comdesk-api/pkg/pdf"
)

type stubSequenceRepo struct {
	values map[enum.DocType]int
}

func newStubSequenceRepo() *stubSequenceRepo {
	return &stubSequenceRepo{values: map[enum.DocType]int{}}
}

func (s *stubSequenceRepo) Peek(_ context.Context, docType enum.DocType) int {
	if v, ok := s.values[docType]; ok {
		return v
	}
	return 1
}

func (s *stubSequenceRepo) Advance(_ context.Context, docType enum.DocType) (int, error) {
	s.values[docType]++
	return s.values[docType], nil
}

func (s *stubSequenceRepo) Set(_ context.Context, docType enum.DocType, value int) error {
	s.values[docType] = value
	return nil
}

func (s *stubSequenceRepo) Reset(_ context.Context, docType enum.DocType) error {
	s.values[docType] = 1
	return nil
}

type stubVendorRepo struct {
	vendors map[string]entity.Vendor
}

func (s stubVendorRepo) List(_ context.Context) ([]entity.Vendor, error) { return nil, nil }

func (s stubVendorRepo) GetByName(_ context.Context, name string) (*entity.Vendor, error) {
	if v, ok := s.vendors[name]; ok {
		return &v, nil
	}
	return nil, nil
}

type stubEndUserRepo struct {
	endUsers map[string]entity.EndUser
}

func (s stubEndUserRepo) List(_ context.Context) ([]entity.EndUser, error) { return nil, nil }

func (s stubEndUserRepo) GetByName(_ context.Context, name string) (*entity.EndUser, error) {
	if e, ok := s.endUsers[name]; ok {
		return &e, nil
	}
	return nil, nil
}

type stubProductRepo struct {
	products map[string]entity.Product
}

func (s stubProductRepo) List(_ context.Context) ([]entity.Product, error) { return nil, nil }

func (s stubProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	if p, ok := s.products[name]; ok {
		return &p, nil
	}
	return nil, nil
}

type stubSalesPersonRepo struct {
	accounts map[string]entity.SalesPerson
}

func (s stubSalesPersonRepo) List(_ context.Context) ([]entity.SalesPerson, error) { return nil, nil }

func (s stubSalesPersonRepo) GetByCode(_ context.Context, code string) (*entity.SalesPerson, error) {
	if sp, ok := s.accounts[code]; ok {
		return &sp, nil
	}
	return nil, nil
}

var testBranding = pdf.Branding{
	CompanyName:    "Comdesk Solutions",
	CompanyAddress: "14 MG Road, Bengaluru 560001",
	CompanyEmail:   "sales@comdesk.example",
	CompanyPhone:   "+91 80 4000 1000",
	CompanyGSTNo:   "29COMDESK1Z5",
}

func newTestQuotationService(seq *stubSequenceRepo, now time.Time) *QuotationService {
	svc := NewQuotationService(
		seq,
		stubVendorRepo{vendors: map[string]entity.Vendor{
			"Acme Traders": {Name: "Acme Traders", Address: "Mumbai", Contact: "Ravi", Mobile: "9000000002"},
		}},
		stubProductRepo{products: map[string]entity.Product{
			"Annual Licence": {Name: "Annual Licence", Basic: 10000, TaxPercent: 18},
		}},
		stubSalesPersonRepo{accounts: map[string]entity.SalesPerson{
			"SP1": {Code: "SP1", Name: "Ravi", Email: "ravi@comdesk.example"},
			"SP2": {Code: "SP2", Name: "Asha", Email: "asha@comdesk.example"},
		}},
		testBranding,
	)
	svc.now = func() time.Time { return now }
	return svc
}

func TestQuotationGenerateAssignsNumberAndAdvances(t *testing.T) {
	seq := newStubSequenceRepo()
	svc := newTestQuotationService(seq, time.Date(2025, time.May, 12, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	out, err := svc.Generate(ctx, &GenerateQuotationInput{
		SalesPersonCode: "SP1",
		VendorName:      "Acme Traders",
		Items:           []QuotationItemInput{{Name: "Annual Licence", Qty: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, "COM/SP1/Q1/12-05-2025/2025-2026_001", out.Quotation.Number)
	assert.Equal(t, out.Quotation.Number, svc.LastNumber())
	assert.Equal(t, 1, seq.values[enum.DocTypeQuotation])

	// Catalog lookup filled in price and tax for the named product.
	assert.InDelta(t, 10000, out.Quotation.Totals.BaseSubtotal, 1e-9)
	assert.InDelta(t, 11800, out.Quotation.Totals.GrandTotal, 1e-9)
	assert.Equal(t, "Eleven Thousand Eight Hundred Rupees Only/-", out.Quotation.AmountInWords)

	// Vendor directory lookup filled the address block.
	assert.Equal(t, "Mumbai", out.Quotation.VendorAddress)

	require.NotEmpty(t, out.PDF)
	assert.Equal(t, "%PDF", string(out.PDF[:4]))
}

func TestQuotationSequenceContinuation(t *testing.T) {
	seq := newStubSequenceRepo()
	svc := newTestQuotationService(seq, time.Date(2025, time.May, 12, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	items := []QuotationItemInput{{Name: "Annual Licence", Qty: 1}}

	first, err := svc.Generate(ctx, &GenerateQuotationInput{SalesPersonCode: "SP1", VendorName: "Acme Traders", Items: items})
	require.NoError(t, err)
	second, err := svc.Generate(ctx, &GenerateQuotationInput{SalesPersonCode: "SP1", VendorName: "Acme Traders", Items: items})
	require.NoError(t, err)

	assert.Equal(t, "COM/SP1/Q1/12-05-2025/2025-2026_001", first.Quotation.Number)
	assert.Equal(t, "COM/SP1/Q1/12-05-2025/2025-2026_002", second.Quotation.Number)

	// A different salesperson starts their own run at 1.
	third, err := svc.Generate(ctx, &GenerateQuotationInput{SalesPersonCode: "SP2", VendorName: "Acme Traders", Items: items})
	require.NoError(t, err)
	assert.Equal(t, "COM/SP2/Q1/12-05-2025/2025-2026_001", third.Quotation.Number)
}

func TestQuotationAutoIncrementOff(t *testing.T) {
	seq := newStubSequenceRepo()
	svc := newTestQuotationService(seq, time.Date(2025, time.May, 12, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	off := false
	_, err := svc.Generate(ctx, &GenerateQuotationInput{
		SalesPersonCode: "SP1",
		VendorName:      "Acme Traders",
		Items:           []QuotationItemInput{{Name: "Annual Licence", Qty: 1}},
		AutoIncrement:   &off,
	})
	require.NoError(t, err)

	assert.Zero(t, seq.values[enum.DocTypeQuotation])
}

func TestQuotationNumberOverrideIsNormalized(t *testing.T) {
	seq := newStubSequenceRepo()
	svc := newTestQuotationService(seq, time.Date(2025, time.May, 12, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	out, err := svc.Generate(ctx, &GenerateQuotationInput{
		SalesPersonCode: "SP1",
		VendorName:      "Acme Traders",
		Items:           []QuotationItemInput{{Name: "Annual Licence", Qty: 1}},
		NumberOverride:  "COM/SP7/Q1/01-04-2025/2025-2026_031",
	})
	require.NoError(t, err)
	assert.Equal(t, "COM/SP7/Q1/01-04-2025/2025-2026_031", out.Quotation.Number)

	// Garbage overrides degrade to the default tuple instead of failing.
	out, err = svc.Generate(ctx, &GenerateQuotationInput{
		SalesPersonCode: "SP1",
		VendorName:      "Acme Traders",
		Items:           []QuotationItemInput{{Name: "Annual Licence", Qty: 1}},
		NumberOverride:  "garbage",
	})
	require.NoError(t, err)
	assert.Equal(t, "COM/SP1/Q1/12-05-2025/2025-2026_001", out.Quotation.Number)
}

func TestQuotationValidation(t *testing.T) {
	svc := newTestQuotationService(newStubSequenceRepo(), time.Now())
	ctx := context.Background()

	_, err := svc.Generate(ctx, &GenerateQuotationInput{SalesPersonCode: "SP1", VendorName: "Acme Traders"})
	assert.Error(t, err)

	_, err = svc.Generate(ctx, &GenerateQuotationInput{
		SalesPersonCode: "SP1",
		VendorName:      "Acme Traders",
		Items:           []QuotationItemInput{{Name: "Annual Licence", Qty: 0}},
	})
	assert.Error(t, err)
}

func TestQuotationResetSequence(t *testing.T) {
	seq := newStubSequenceRepo()
	svc := newTestQuotationService(seq, time.Date(2025, time.May, 12, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := svc.Generate(ctx, &GenerateQuotationInput{
		SalesPersonCode: "SP1",
		VendorName:      "Acme Traders",
		Items:           []QuotationItemInput{{Name: "Annual Licence", Qty: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetSequence(ctx))
	assert.Empty(t, svc.LastNumber())
	assert.Equal(t, 1, seq.values[enum.DocTypeQuotation])

	// The next run starts over from the registry value.
	assert.Equal(t, "COM/SP1/Q1/12-05-2025/2025-2026_001", svc.PreviewNumber(ctx, "SP1"))
}

func newTestPurchaseOrderService(seq *stubSequenceRepo, now time.Time) *PurchaseOrderService {
	svc := NewPurchaseOrderService(
		seq,
		stubVendorRepo{vendors: map[string]entity.Vendor{
			"Acme Traders": {Name: "Acme Traders", Address: "Mumbai", GSTNo: "27ACME", PANNo: "ACMEP1234F"},
		}},
		stubEndUserRepo{endUsers: map[string]entity.EndUser{
			"Bharat Infra": {Name: "Bharat Infra", Address: "Delhi", ContactPerson: "Suresh"},
		}},
		stubProductRepo{products: map[string]entity.Product{
			"Support Pack": {Name: "Support Pack", Basic: 2500, TaxPercent: 12},
		}},
		testBranding,
	)
	svc.now = func() time.Time { return now }
	return svc
}

func TestPurchaseOrderGenerate(t *testing.T) {
	seq := newStubSequenceRepo()
	svc := newTestPurchaseOrderService(seq, time.Date(2025, time.August, 20, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	out, err := svc.Generate(ctx, &GeneratePurchaseOrderInput{
		SalesPersonCode: "SP1",
		VendorName:      "Acme Traders",
		EndUserName:     "Bharat Infra",
		Items:           []QuotationItemInput{{Name: "Support Pack", Qty: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "COM/SP1/2025/Q2_001", out.PurchaseOrder.Number)
	assert.Equal(t, "27ACME", out.PurchaseOrder.GSTNo)
	assert.Equal(t, "Bharat Infra", out.PurchaseOrder.EndCompany)
	assert.InDelta(t, 5000, out.PurchaseOrder.Totals.BaseSubtotal, 1e-9)
	assert.InDelta(t, 5600, out.PurchaseOrder.Totals.GrandTotal, 1e-9)
	assert.Equal(t, "%PDF", string(out.PDF[:4]))
	assert.Equal(t, 1, seq.values[enum.DocTypePurchaseOrder])
}

func TestPurchaseOrderContinuation(t *testing.T) {
	seq := newStubSequenceRepo()
	svc := newTestPurchaseOrderService(seq, time.Date(2025, time.August, 20, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	input := func(sp string) *GeneratePurchaseOrderInput {
		return &GeneratePurchaseOrderInput{
			SalesPersonCode: sp,
			VendorName:      "Acme Traders",
			Items:           []QuotationItemInput{{Name: "Support Pack", Qty: 1}},
		}
	}

	first, err := svc.Generate(ctx, input("SP1"))
	require.NoError(t, err)
	second, err := svc.Generate(ctx, input("SP1"))
	require.NoError(t, err)
	other, err := svc.Generate(ctx, input("SP2"))
	require.NoError(t, err)

	assert.Equal(t, "COM/SP1/2025/Q2_001", first.PurchaseOrder.Number)
	assert.Equal(t, "COM/SP1/2025/Q2_002", second.PurchaseOrder.Number)
	assert.Equal(t, "COM/SP2/2025/Q2_001", other.PurchaseOrder.Number)
}

func newTestInvoiceService(seq *stubSequenceRepo, now time.Time) *InvoiceService {
	svc := NewInvoiceService(
		seq,
		stubEndUserRepo{endUsers: map[string]entity.EndUser{
			"Bharat Infra": {Name: "Bharat Infra", Address: "Delhi", GSTNo: "07BHARAT"},
		}},
		testBranding,
		"We declare that this invoice shows the actual price of the goods described.",
	)
	svc.now = func() time.Time { return now }
	return svc
}

func TestInvoiceGenerate(t *testing.T) {
	seq := newStubSequenceRepo()
	svc := newTestInvoiceService(seq, time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	out, err := svc.Generate(ctx, &GenerateInvoiceInput{
		BuyerName: "Bharat Infra",
		Items:     []InvoiceItemInput{{Description: "Annual support", HSN: "9983", Quantity: 1, UnitRate: 1000}},
	})
	require.NoError(t, err)

	assert.Equal(t, "COM/25-26/Q1/01", out.Invoice.Number)
	assert.Equal(t, "07BHARAT", out.Invoice.Buyer.GSTNo)
	assert.InDelta(t, 90, out.Invoice.Totals.SGST, 1e-9)
	assert.InDelta(t, 90, out.Invoice.Totals.CGST, 1e-9)
	assert.InDelta(t, 1180, out.Invoice.Totals.FinalAmount, 1e-9)
	assert.Equal(t, "One Thousand One Hundred Eighty Rupees Only/-", out.Invoice.AmountInWords)
	assert.Equal(t, "One Hundred Eighty Rupees Only/-", out.Invoice.TaxInWords)
	assert.Equal(t, "%PDF", string(out.PDF[:4]))

	// Counter anchored to the assigned sequence, then advanced past it.
	assert.Equal(t, 2, seq.values[enum.DocTypeInvoice])
}

func TestInvoiceOverrideReanchorsCounter(t *testing.T) {
	seq := newStubSequenceRepo()
	svc := newTestInvoiceService(seq, time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	out, err := svc.Generate(ctx, &GenerateInvoiceInput{
		BuyerName:      "Bharat Infra",
		Items:          []InvoiceItemInput{{Description: "Annual support", Quantity: 1, UnitRate: 1000}},
		NumberOverride: "COM/25-26/Q1/40",
	})
	require.NoError(t, err)

	assert.Equal(t, "COM/25-26/Q1/40", out.Invoice.Number)
	assert.Equal(t, 41, seq.values[enum.DocTypeInvoice])

	// The run continues from the override.
	next, err := svc.Generate(ctx, &GenerateInvoiceInput{
		BuyerName: "Bharat Infra",
		Items:     []InvoiceItemInput{{Description: "Annual support", Quantity: 1, UnitRate: 1000}},
	})
	require.NoError(t, err)
	assert.Equal(t, "COM/25-26/Q1/41", next.Invoice.Number)
}

func TestInvoicePreviewDoesNotAssign(t *testing.T) {
	seq := newStubSequenceRepo()
	svc := newTestInvoiceService(seq, time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	assert.Equal(t, "COM/25-26/Q1/01", svc.PreviewNumber(ctx))
	assert.Equal(t, "COM/25-26/Q1/01", svc.PreviewNumber(ctx))
	assert.Empty(t, svc.LastNumber())
	assert.Zero(t, seq.values[enum.DocTypeInvoice])
}
