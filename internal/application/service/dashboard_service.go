package service

import (
	"context"

	"github.com/salimdiab/pos-console/internal/domain/entity"
	"github.com/salimdiab/pos-console/internal/domain/repository"
)

// DashboardService assembles the sales metrics screens.
type DashboardService struct {
	productRepo   repository.ProductRepository
	dashboardRepo repository.DashboardRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(productRepo repository.ProductRepository, dashboardRepo repository.DashboardRepository) *DashboardService {
	return &DashboardService{productRepo: productRepo, dashboardRepo: dashboardRepo}
}

// DashboardStats is the dashboard screen's view model.
type DashboardStats struct {
	Overview      *entity.SalesOverview
	MonthlyRate   *entity.MonthlyRate
	LowStockCount int64
}

// Stats fetches the dashboard metrics. The three requests are independent;
// each is issued on its own and any failure aborts the screen.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	overview, err := s.productRepo.Overview(ctx, 1)
	if err != nil {
		return nil, err
	}
	rate, err := s.dashboardRepo.MonthlyRate(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.dashboardRepo.LowStockCount(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		Overview:      overview,
		MonthlyRate:   rate,
		LowStockCount: lowStock,
	}, nil
}

// ProfitReport is the profit details screen's view model.
type ProfitReport struct {
	Details     []entity.ProfitDetail
	TotalProfit float64
	TotalUnits  int
}

// ProfitReport fetches the per-product profit breakdown and sums it up.
func (s *DashboardService) ProfitReport(ctx context.Context) (*ProfitReport, error) {
	details, err := s.dashboardRepo.ProfitDetails(ctx)
	if err != nil {
		return nil, err
	}

	report := &ProfitReport{Details: details}
	for _, d := range details {
		report.TotalProfit += d.Profit
		report.TotalUnits += d.QuantitySold
	}
	return report, nil
}
