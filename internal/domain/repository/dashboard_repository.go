package repository

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/entity"
)

// DashboardRepository is the sales metrics surface of the POS backend.
type DashboardRepository interface {
	MonthlyRate(ctx context.Context) (*entity.MonthlyRate, error)
	LowStockCount(ctx context.Context) (int64, error)
	ProfitDetails(ctx context.Context) ([]entity.ProfitDetail, error)
}
