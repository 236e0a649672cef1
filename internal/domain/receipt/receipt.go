package receipt

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/salimdiab/pos-console/internal/domain/entity"
)

// ErrEmptyReceipt is returned by SubmissionPayload when no line survives the
// blank-line filter. The caller must block submission and tell the user.
var ErrEmptyReceipt = errors.New("receipt has no items")

// LineItem is one row of a receipt: a quantity of a single product at the
// unit price captured when the product was selected. Name and price are
// snapshots, deliberately not kept in sync with the catalog afterwards.
type LineItem struct {
	ProductRef  string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"price"`
}

// Blank reports whether the line is the empty placeholder row.
func (l LineItem) Blank() bool {
	return l.ProductRef == "" && l.Quantity == 0
}

// Subtotal is the line's contribution to the receipt total.
func (l LineItem) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// SubmissionItem is what the backend accepts per line. Price is deliberately
// omitted: the backend is the source of truth for pricing at transaction time.
type SubmissionItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Receipt holds the open-ended line list of the sale-entry form together
// with the product catalog snapshot the form was opened with.
//
// Invariant: the last line is always blank. Editing the last line to a
// non-blank value appends a fresh blank line; blank lines elsewhere in the
// sequence are never auto-removed. The total is derived, recomputed after
// every mutation, and never stored authoritatively anywhere else.
type Receipt struct {
	catalog []entity.CatalogProduct
	lines   []LineItem
	total   float64
}

// New creates an empty receipt (one blank line) over a point-in-time catalog
// snapshot. Later price changes on the server do not affect lines already
// entered.
func New(catalog []entity.CatalogProduct) *Receipt {
	return &Receipt{
		catalog: catalog,
		lines:   []LineItem{{}},
	}
}

// Catalog returns the product snapshot the receipt was opened with.
func (r *Receipt) Catalog() []entity.CatalogProduct {
	return r.catalog
}

// Lines returns a copy of the current line sequence in display order.
func (r *Receipt) Lines() []LineItem {
	out := make([]LineItem, len(r.lines))
	copy(out, r.lines)
	return out
}

// Total returns the running total, including the trailing blank line's zero.
func (r *Receipt) Total() float64 {
	return r.total
}

// SetProduct selects the referenced catalog product on line i, snapshotting
// its name and unit price. An unknown reference overwrites only the
// reference and leaves any prior name/price stale; the engine does not
// correct that case.
func (r *Receipt) SetProduct(i int, ref string) error {
	if err := r.check(i); err != nil {
		return err
	}

	if p, ok := r.lookup(ref); ok {
		r.lines[i].ProductRef = ref
		r.lines[i].ProductName = p.Name
		r.lines[i].UnitPrice = p.Price
	} else {
		r.lines[i].ProductRef = ref
	}

	r.maybeAppend(i, ref != "")
	r.recompute()
	return nil
}

// SetQuantity overwrites the quantity on line i. No bounds validation is
// performed; negative input is stored as given.
func (r *Receipt) SetQuantity(i, quantity int) error {
	if err := r.check(i); err != nil {
		return err
	}
	r.lines[i].Quantity = quantity
	r.maybeAppend(i, quantity != 0)
	r.recompute()
	return nil
}

// SetUnitPrice overwrites the unit price on line i. No bounds validation is
// performed.
func (r *Receipt) SetUnitPrice(i int, price float64) error {
	if err := r.check(i); err != nil {
		return err
	}
	r.lines[i].UnitPrice = price
	r.maybeAppend(i, price != 0)
	r.recompute()
	return nil
}

// SubmissionPayload filters out blank and zero-quantity lines and maps the
// remainder to what the backend accepts. Returns ErrEmptyReceipt when
// nothing survives the filter.
func (r *Receipt) SubmissionPayload() ([]SubmissionItem, error) {
	items := make([]SubmissionItem, 0, len(r.lines))
	for i, line := range r.lines {
		if line.ProductRef == "" || line.Quantity <= 0 {
			continue
		}
		id, err := strconv.ParseInt(line.ProductRef, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid product reference %q", i, line.ProductRef)
		}
		items = append(items, SubmissionItem{ProductID: id, Quantity: line.Quantity})
	}
	if len(items) == 0 {
		return nil, ErrEmptyReceipt
	}
	return items, nil
}

// Reset returns the receipt to its initial state: one blank line, total zero.
// Called after a confirmed successful submission.
func (r *Receipt) Reset() {
	r.lines = []LineItem{{}}
	r.total = 0
}

func (r *Receipt) check(i int) error {
	if i < 0 || i >= len(r.lines) {
		return fmt.Errorf("line %d out of range", i)
	}
	return nil
}

// maybeAppend keeps the trailing-blank-line invariant: editing the last line
// to a non-blank value grows the sequence by exactly one blank line.
func (r *Receipt) maybeAppend(i int, nonBlank bool) {
	if i == len(r.lines)-1 && nonBlank {
		r.lines = append(r.lines, LineItem{})
	}
}

func (r *Receipt) recompute() {
	total := 0.0
	for _, line := range r.lines {
		total += line.Subtotal()
	}
	r.total = total
}

func (r *Receipt) lookup(ref string) (entity.CatalogProduct, bool) {
	for _, p := range r.catalog {
		if strconv.FormatInt(p.ID, 10) == ref {
			return p, true
		}
	}
	return entity.CatalogProduct{}, false
}
