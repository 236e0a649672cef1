package api

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/receipt"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/internal/gateway"
)

// ReceiptRepository talks to the sale-entry endpoint of the POS backend.
type ReceiptRepository struct {
	client *gateway.Client
}

// NewReceiptRepository creates a new receipt repository.
func NewReceiptRepository(client *gateway.Client) *ReceiptRepository {
	return &ReceiptRepository{client: client}
}

var _ repository.ReceiptRepository = (*ReceiptRepository)(nil)

type submitRequest struct {
	Items []receipt.SubmissionItem `json:"items"`
}

// Submit records a sale. Each submission carries a fresh idempotency key so a
// double-clicked save button cannot book the sale twice.
func (r *ReceiptRepository) Submit(ctx context.Context, items []receipt.SubmissionItem) error {
	return r.client.PostIdempotent(ctx, "/receipts", &submitRequest{Items: items}, nil)
}
