package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/receipt"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/pkg/apperror"
	"github.com/salimdiab/pos-console/pkg/printer"
)

// stubProductRepo serves the catalog; everything else is never called by the
// receipt service.
type stubProductRepo struct {
	repository.ProductRepository
	catalog      []entity.CatalogProduct
	catalogCalls int
}

func (r *stubProductRepo) Catalog(ctx context.Context) ([]entity.CatalogProduct, error) {
	r.catalogCalls++
	return r.catalog, nil
}

type stubReceiptRepo struct {
	submitted [][]receipt.SubmissionItem
	err       error
}

func (r *stubReceiptRepo) Submit(ctx context.Context, items []receipt.SubmissionItem) error {
	if r.err != nil {
		return r.err
	}
	r.submitted = append(r.submitted, items)
	return nil
}

type recordingPrinter struct {
	jobs [][]byte
}

func (p *recordingPrinter) Print(data []byte) error {
	p.jobs = append(p.jobs, data)
	return nil
}

func newReceiptFixture() (*ReceiptService, *stubProductRepo, *stubReceiptRepo, *recordingPrinter) {
	products := &stubProductRepo{catalog: []entity.CatalogProduct{
		{ID: 1, Name: "Widget", Price: 9.5},
		{ID: 2, Name: "Gadget", Price: 4},
	}}
	receipts := &stubReceiptRepo{}
	prn := &recordingPrinter{}
	svc := NewReceiptService(products, receipts, prn, "Test Shop", 32)
	return svc, products, receipts, prn
}

func TestFormOpensOverCatalogSnapshot(t *testing.T) {
	svc, products, _, _ := newReceiptFixture()

	form, err := svc.Form(context.Background())
	require.NoError(t, err)
	assert.Len(t, form.Catalog, 2)
	require.Len(t, form.Lines, 1)
	assert.Zero(t, form.Total)

	// A second view must reuse the open form, not refetch the catalog.
	_, err = svc.Form(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, products.catalogCalls)
}

func TestEditLineProductAndQuantity(t *testing.T) {
	svc, _, _, _ := newReceiptFixture()

	require.NoError(t, svc.EditLine(context.Background(), 0, FieldProduct, "1"))
	require.NoError(t, svc.EditLine(context.Background(), 0, FieldQuantity, "2"))

	form, err := svc.Form(context.Background())
	require.NoError(t, err)
	require.Len(t, form.Lines, 2)
	assert.Equal(t, "Widget", form.Lines[0].ProductName)
	assert.Equal(t, 2, form.Lines[0].Quantity)
	assert.Equal(t, 19.0, form.Total)
}

func TestEditLineEmptyNumericValueMeansZero(t *testing.T) {
	svc, _, _, _ := newReceiptFixture()
	require.NoError(t, svc.EditLine(context.Background(), 0, FieldQuantity, "3"))

	require.NoError(t, svc.EditLine(context.Background(), 0, FieldQuantity, ""))

	form, err := svc.Form(context.Background())
	require.NoError(t, err)
	assert.Zero(t, form.Lines[0].Quantity)
}

func TestEditLineBadInput(t *testing.T) {
	svc, _, _, _ := newReceiptFixture()

	err := svc.EditLine(context.Background(), 0, FieldQuantity, "two")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	err = svc.EditLine(context.Background(), 0, "color", "red")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSubmitEmptyFormIsRejectedLocally(t *testing.T) {
	svc, _, receipts, _ := newReceiptFixture()

	err := svc.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Add a product first", apperror.GetAppError(err).Message)
	assert.Empty(t, receipts.submitted, "nothing may reach the backend")
}

func TestSubmitSendsFilteredLinesAndResets(t *testing.T) {
	svc, _, receipts, prn := newReceiptFixture()
	require.NoError(t, svc.EditLine(context.Background(), 0, FieldProduct, "1"))
	require.NoError(t, svc.EditLine(context.Background(), 0, FieldQuantity, "2"))
	require.NoError(t, svc.EditLine(context.Background(), 1, FieldProduct, "2")) // quantity stays zero

	require.NoError(t, svc.Submit(context.Background()))

	require.Len(t, receipts.submitted, 1)
	assert.Equal(t, []receipt.SubmissionItem{{ProductID: 1, Quantity: 2}}, receipts.submitted[0])

	form, err := svc.Form(context.Background())
	require.NoError(t, err)
	assert.Len(t, form.Lines, 1)
	assert.Zero(t, form.Total)

	require.Len(t, prn.jobs, 1, "a paper copy goes to the till printer")
	assert.Contains(t, string(prn.jobs[0]), "Widget")
	assert.Contains(t, string(prn.jobs[0]), "19.00")
}

func TestSubmitBackendFailureKeepsLines(t *testing.T) {
	svc, _, receipts, prn := newReceiptFixture()
	receipts.err = apperror.NewUpstreamError(500, "boom")
	require.NoError(t, svc.EditLine(context.Background(), 0, FieldProduct, "1"))
	require.NoError(t, svc.EditLine(context.Background(), 0, FieldQuantity, "1"))

	err := svc.Submit(context.Background())
	require.Error(t, err)

	form, ferr := svc.Form(context.Background())
	require.NoError(t, ferr)
	assert.Len(t, form.Lines, 2, "the form survives a failed submission")
	assert.Empty(t, prn.jobs, "no paper copy without a confirmed sale")
}

func TestResetEmptiesTheOpenForm(t *testing.T) {
	svc, _, _, _ := newReceiptFixture()
	require.NoError(t, svc.EditLine(context.Background(), 0, FieldProduct, "1"))

	svc.Reset()

	form, err := svc.Form(context.Background())
	require.NoError(t, err)
	assert.Len(t, form.Lines, 1)
}

func TestDiscardDropsCatalogSnapshot(t *testing.T) {
	svc, products, _, _ := newReceiptFixture()
	_, err := svc.Form(context.Background())
	require.NoError(t, err)

	svc.Discard()

	_, err = svc.Form(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, products.catalogCalls, "the next visitor gets a fresh catalog")
}

var _ printer.Printer = (*recordingPrinter)(nil)
