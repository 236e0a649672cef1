package repository

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/receipt"
)

// ReceiptRepository is the sale-entry surface of the POS backend.
type ReceiptRepository interface {
	// Submit records a sale. The backend reprices every item itself.
	Submit(ctx context.Context, items []receipt.SubmissionItem) error
}
