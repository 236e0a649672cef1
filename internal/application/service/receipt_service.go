package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/receipt"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/pkg/apperror"
	"github.com/salimdiab/pos-console/pkg/printer"
)

// Line edit field names, matching the form's input names.
const (
	FieldProduct  = "product_id"
	FieldQuantity = "quantity"
	FieldPrice    = "price"
)

// ReceiptForm is the view model of the sale-entry screen.
type ReceiptForm struct {
	Lines   []receipt.LineItem
	Total   float64
	Catalog []entity.CatalogProduct
}

// ReceiptService owns the open sale-entry form: one receipt engine instance
// over a catalog snapshot fetched when the form is first opened. Handlers
// run concurrently, so access to the engine is serialized here.
type ReceiptService struct {
	productRepo repository.ProductRepository
	receiptRepo repository.ReceiptRepository
	printer     printer.Printer
	shopName    string
	paperWidth  int

	mu   sync.Mutex
	form *receipt.Receipt
}

// NewReceiptService creates a new receipt service. The printer receives a
// paper copy of every submitted receipt; pass the null printer when the
// console has no hardware attached.
func NewReceiptService(productRepo repository.ProductRepository, receiptRepo repository.ReceiptRepository, prn printer.Printer, shopName string, paperWidth int) *ReceiptService {
	return &ReceiptService{
		productRepo: productRepo,
		receiptRepo: receiptRepo,
		printer:     prn,
		shopName:    shopName,
		paperWidth:  paperWidth,
	}
}

// Form returns the open form, opening a fresh one (catalog fetch included)
// when none exists.
func (s *ReceiptService) Form(ctx context.Context) (*ReceiptForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureForm(ctx); err != nil {
		return nil, err
	}
	return &ReceiptForm{
		Lines:   s.form.Lines(),
		Total:   s.form.Total(),
		Catalog: s.form.Catalog(),
	}, nil
}

// EditLine applies one field edit to the open form. Values arrive as form
// strings; numeric fields are parsed here, the engine itself does not
// validate ranges.
func (s *ReceiptService) EditLine(ctx context.Context, index int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureForm(ctx); err != nil {
		return err
	}

	switch field {
	case FieldProduct:
		return s.form.SetProduct(index, value)
	case FieldQuantity:
		quantity, err := parseInt(value)
		if err != nil {
			return apperror.NewBadRequestError("Quantity must be a number")
		}
		return s.form.SetQuantity(index, quantity)
	case FieldPrice:
		price, err := parseFloat(value)
		if err != nil {
			return apperror.NewBadRequestError("Price must be a number")
		}
		return s.form.SetUnitPrice(index, price)
	default:
		return apperror.NewBadRequestError("Unknown receipt field")
	}
}

// Submit sends the non-blank lines to the backend and resets the form on
// success. An all-blank form is rejected before anything goes on the wire.
func (s *ReceiptService) Submit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form == nil {
		return apperror.NewBadRequestError("Add a product first")
	}

	items, err := s.form.SubmissionPayload()
	if err != nil {
		if errors.Is(err, receipt.ErrEmptyReceipt) {
			return apperror.NewBadRequestError("Add a product first")
		}
		return err
	}

	if err := s.receiptRepo.Submit(ctx, items); err != nil {
		return err
	}

	sold := make([]receipt.LineItem, 0, len(items))
	for _, line := range s.form.Lines() {
		if line.ProductRef != "" && line.Quantity > 0 {
			sold = append(sold, line)
		}
	}
	s.form.Reset()
	s.printCopy(sold)
	return nil
}

// printCopy sends the paper copy of a submitted receipt to the till printer.
// A printer failure only loses the paper copy, never the sale.
func (s *ReceiptService) printCopy(sold []receipt.LineItem) {
	doc := printer.NewDocument(s.paperWidth)
	doc.Title(s.shopName)
	doc.Line(time.Now().Format("2006-01-02 15:04"))
	doc.Rule()

	var total float64
	for _, line := range sold {
		total += line.Subtotal()
		doc.Item(line.Quantity, line.ProductName, fmt.Sprintf("%.2f", line.Subtotal()))
	}

	doc.Rule()
	doc.Amount("TOTAL", fmt.Sprintf("%.2f", total))
	doc.Feed(3).Cut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		log.Printf("Warning: failed to print receipt copy: %v", err)
	}
}

// Reset empties the open form without submitting it.
func (s *ReceiptService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form != nil {
		s.form.Reset()
	}
}

// Discard drops the open form entirely, catalog snapshot included. Called on
// logout; the next visitor gets a fresh catalog.
func (s *ReceiptService) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = nil
}

// ensureForm opens the form over a point-in-time catalog snapshot. Callers
// must hold the lock.
func (s *ReceiptService) ensureForm(ctx context.Context) error {
	if s.form != nil {
		return nil
	}
	catalog, err := s.productRepo.Catalog(ctx)
	if err != nil {
		return err
	}
	s.form = receipt.New(catalog)
	return nil
}

func parseInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

func parseFloat(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}
