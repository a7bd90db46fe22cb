package service

import (
	"context"

	"tigerrentals-client/internal/cache"
	"tigerrentals-client/internal/dashboard"
	"tigerrentals-client/internal/pricing"
)

type dashboardService struct {
	base
	api     EarningsAPI
	rentals RentalService
}

func NewDashboardService(api EarningsAPI, rentals RentalService, sessions Sessions, c *cache.Cache) DashboardService {
	return &dashboardService{base: base{sessions: sessions, cache: c}, api: api, rentals: rentals}
}

func (s *dashboardService) Dashboard(ctx context.Context) (*Dashboard, error) {
	mine, err := s.rentals.Mine(ctx)
	if err != nil {
		return nil, err
	}
	summary := dashboard.AggregateMine(mine)
	return &Dashboard{
		Summary: summary,
		Tiles:   summary.Tiles(),
		Rentals: mine,
	}, nil
}

func (s *dashboardService) Earnings(ctx context.Context) (*Earnings, error) {
	if _, err := s.requireSession(); err != nil {
		return nil, err
	}
	summary, err := cached(ctx, &s.base, cache.KeyOf(cache.Earnings), "earnings", s.api.GetEarnings)
	if err != nil {
		return nil, err
	}
	return &Earnings{
		Summary:    summary,
		Projection: pricing.Project(summary.MonthlyEarnings),
		Chart:      pricing.ChartSeries(summary.MonthlyEarnings),
	}, nil
}
