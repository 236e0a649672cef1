package api

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/repository"
	"github.com/salimdiab/pos-console/internal/gateway"
)

// DashboardRepository talks to the sales metrics endpoints of the POS backend.
type DashboardRepository struct {
	client *gateway.Client
}

// NewDashboardRepository creates a new dashboard repository.
func NewDashboardRepository(client *gateway.Client) *DashboardRepository {
	return &DashboardRepository{client: client}
}

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

func (r *DashboardRepository) MonthlyRate(ctx context.Context) (*entity.MonthlyRate, error) {
	var rate entity.MonthlyRate
	if err := r.client.Get(ctx, "/monthly-rate", &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

type lowStockResponse struct {
	Count int64 `json:"number-of-low-stock-items"`
}

func (r *DashboardRepository) LowStockCount(ctx context.Context) (int64, error) {
	var resp lowStockResponse
	if err := r.client.Get(ctx, "/lowStockCount", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (r *DashboardRepository) ProfitDetails(ctx context.Context) ([]entity.ProfitDetail, error) {
	var out []entity.ProfitDetail
	if err := r.client.Get(ctx, "/detailed", &out); err != nil {
		return nil, err
	}
	return out, nil
}
