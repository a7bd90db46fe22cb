package rest

import (
	"context"
	"net/url"
	"strconv"

	"tigerrentals-client/internal/domain"
)

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	if err := c.do(ctx, call{route: RouteCategories, path: RouteCategories.path(), out: &cats}); err != nil {
		return nil, err
	}
	return cats, nil
}

func itemQuery(f domain.ItemFilter) url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.CategoryID != 0 {
		q.Set("category_id", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(f.MaxPrice, 'f', -1, 64))
	}
	if f.Near {
		q.Set("latitude", strconv.FormatFloat(f.Latitude, 'f', -1, 64))
		q.Set("longitude", strconv.FormatFloat(f.Longitude, 'f', -1, 64))
	}
	if f.MaxDistance > 0 {
		q.Set("max_distance", strconv.FormatFloat(f.MaxDistance, 'f', -1, 64))
	}
	return q
}

// ListItems searches available listings. Results keep the server's order.
func (c *Client) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.do(ctx, call{route: RouteItems, path: RouteItems.path(), query: itemQuery(filter), out: &items}); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	if err := c.do(ctx, call{route: RouteItem, path: RouteItem.path(id), out: &item}); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateItem(ctx context.Context, item domain.NewItem) (*domain.Created, error) {
	var res domain.Created
	if err := c.do(ctx, call{route: RouteCreateItem, path: RouteCreateItem.path(), body: item, out: &res}); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListMyItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.do(ctx, call{route: RouteMyItems, path: RouteMyItems.path(), out: &items}); err != nil {
		return nil, err
	}
	return items, nil
}
