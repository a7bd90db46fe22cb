package rest

import (
	"context"
	"net/url"
	"strconv"

	"tigerrentals-client/internal/domain"
)

func (c *Client) ListMessages(ctx context.Context, rentalID int64) ([]domain.Message, error) {
	q := url.Values{}
	q.Set("rental_id", strconv.FormatInt(rentalID, 10))

	var msgs []domain.Message
	if err := c.do(ctx, call{route: RouteMessages, path: RouteMessages.path(), query: q, out: &msgs}); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) SendMessage(ctx context.Context, m domain.NewMessage) (*domain.Created, error) {
	var res domain.Created
	if err := c.do(ctx, call{route: RouteSendMessage, path: RouteSendMessage.path(), body: m, out: &res}); err != nil {
		return nil, err
	}
	return &res, nil
}
