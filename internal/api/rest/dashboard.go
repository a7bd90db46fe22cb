package rest

import (
	"context"

	"tigerrentals-client/internal/domain"
)

func (c *Client) CreateReview(ctx context.Context, r domain.NewReview) error {
	return c.do(ctx, call{route: RouteCreateReview, path: RouteCreateReview.path(), body: r})
}

func (c *Client) GetEarnings(ctx context.Context) (*domain.EarningsSummary, error) {
	var res domain.EarningsSummary
	if err := c.do(ctx, call{route: RouteEarnings, path: RouteEarnings.path(), out: &res}); err != nil {
		return nil, err
	}
	return &res, nil
}
