package service

import (
	"context"
	"fmt"

	"tigerrentals-client/internal/cache"
	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/logger"
	"tigerrentals-client/internal/pricing"
)

type itemService struct {
	base
	api MarketplaceAPI
}

func NewItemService(api MarketplaceAPI, sessions Sessions, c *cache.Cache) ItemService {
	return &itemService{base: base{sessions: sessions, cache: c}, api: api}
}

func (s *itemService) Categories(ctx context.Context) ([]domain.Category, error) {
	return cached(ctx, &s.base, cache.KeyOf(cache.Categories), "categories", s.api.ListCategories)
}

func (s *itemService) Browse(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	k := cache.Key{Collection: cache.Items, Sub: filterKey(filter)}
	return cached(ctx, &s.base, k, "items", func(ctx context.Context) ([]domain.Item, error) {
		return s.api.ListItems(ctx, filter)
	})
}

// Detail loads an item. It works signed out too; Own and CanRent then
// report false.
func (s *itemService) Detail(ctx context.Context, id int64) (*ItemDetail, error) {
	k := cache.Key{Collection: cache.Items, Sub: fmt.Sprintf("id=%d", id)}
	item, err := cached(ctx, &s.base, k, "item", func(ctx context.Context) (*domain.Item, error) {
		return s.api.GetItem(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	detail := &ItemDetail{Item: item}
	if sess, err := s.requireSession(); err == nil {
		detail.Own = item.OwnedBy(sess.UserID())
		detail.CanRent = !detail.Own && item.Available
	}
	return detail, nil
}

func (s *itemService) Create(ctx context.Context, item domain.NewItem) (*domain.Created, error) {
	logger.EnterMethod("itemService.Create", "title", item.Title)
	if _, err := s.requireSession(); err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		logger.ExitMethodWithError("itemService.Create", err)
		return nil, err
	}

	created, err := s.api.CreateItem(ctx, item)
	if err != nil {
		s.checkAuth(ctx, err)
		logger.ExitMethodWithError("itemService.Create", err)
		return nil, err
	}
	s.cache.Apply(cache.CreateItem)
	logger.ExitMethod("itemService.Create", "itemID", created.ID)
	return created, nil
}

func (s *itemService) Mine(ctx context.Context) ([]domain.Item, error) {
	if _, err := s.requireSession(); err != nil {
		return nil, err
	}
	return cached(ctx, &s.base, cache.KeyOf(cache.MyItems), "my items", s.api.ListMyItems)
}

func (s *itemService) Suggest(category string) (pricing.Suggestion, bool) {
	return pricing.Suggest(category)
}

func filterKey(f domain.ItemFilter) string {
	return fmt.Sprintf("q=%s&cat=%d&min=%g&max=%g&near=%t&lat=%g&lon=%g&dist=%g",
		f.Search, f.CategoryID, f.MinPrice, f.MaxPrice, f.Near, f.Latitude, f.Longitude, f.MaxDistance)
}
