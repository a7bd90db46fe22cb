package rest

import (
	"context"

	"tigerrentals-client/internal/domain"
)

func (c *Client) CreateRental(ctx context.Context, r domain.NewRental) (*domain.Created, error) {
	var res domain.Created
	if err := c.do(ctx, call{route: RouteCreateRental, path: RouteCreateRental.path(), body: r, out: &res}); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListMyRentals(ctx context.Context) (*domain.MyRentals, error) {
	var res domain.MyRentals
	if err := c.do(ctx, call{route: RouteMyRentals, path: RouteMyRentals.path(), out: &res}); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ApproveRental(ctx context.Context, id int64) error {
	return c.do(ctx, call{route: RouteApprove, path: RouteApprove.path(id)})
}

func (c *Client) VerifyPickup(ctx context.Context, id int64) error {
	return c.do(ctx, call{route: RouteVerifyPickup, path: RouteVerifyPickup.path(id)})
}

func (c *Client) VerifyReturn(ctx context.Context, id int64) error {
	return c.do(ctx, call{route: RouteVerifyReturn, path: RouteVerifyReturn.path(id)})
}
