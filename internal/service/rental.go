package service

import (
	"context"
	"time"

	"tigerrentals-client/internal/cache"
	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/logger"
	"tigerrentals-client/internal/pricing"
)

type rentalService struct {
	base
	api RentalAPI
}

func NewRentalService(api RentalAPI, sessions Sessions, c *cache.Cache) RentalService {
	return &rentalService{base: base{sessions: sessions, cache: c}, api: api}
}

func (s *rentalService) Quote(item *domain.Item, start, end time.Time) pricing.CostQuote {
	return pricing.Quote(item.DailyRate, start, end)
}

// Request sends a rental request for item. Everything that can be checked
// locally is checked before the request goes out.
func (s *rentalService) Request(ctx context.Context, item *domain.Item, start, end time.Time, message string) (*RequestResult, error) {
	logger.EnterMethod("rentalService.Request", "start", start, "end", end)
	if item == nil {
		logger.ExitMethodWithError("rentalService.Request", ErrNoItem)
		return nil, ErrNoItem
	}

	sess, err := s.requireSession()
	if err != nil {
		logger.ExitMethodWithError("rentalService.Request", err, "itemID", item.ID)
		return nil, err
	}
	if item.OwnedBy(sess.UserID()) {
		logger.ExitMethodWithError("rentalService.Request", ErrOwnItem, "itemID", item.ID)
		return nil, ErrOwnItem
	}
	if !item.Available {
		logger.ExitMethodWithError("rentalService.Request", ErrUnavailable, "itemID", item.ID)
		return nil, ErrUnavailable
	}
	quote, err := pricing.QuoteForRequest(item.DailyRate, start, end)
	if err != nil {
		logger.ExitMethodWithError("rentalService.Request", err, "itemID", item.ID)
		return nil, err
	}

	created, err := s.api.CreateRental(ctx, domain.NewRental{
		ItemID:    item.ID,
		StartDate: pricing.UTCDateOf(start).Time(),
		EndDate:   pricing.UTCDateOf(end).Time(),
		Message:   message,
	})
	if err != nil {
		s.checkAuth(ctx, err)
		logger.ExitMethodWithError("rentalService.Request", err, "itemID", item.ID)
		return nil, err
	}
	s.cache.Apply(cache.CreateRental)

	logger.ExitMethod("rentalService.Request", "rentalID", created.ID, "days", quote.Days)
	return &RequestResult{Created: created, Quote: quote}, nil
}

func (s *rentalService) Mine(ctx context.Context) (*domain.MyRentals, error) {
	if _, err := s.requireSession(); err != nil {
		return nil, err
	}
	return cached(ctx, &s.base, cache.KeyOf(cache.MyRentals), "rentals", s.api.ListMyRentals)
}

func (s *rentalService) Approve(ctx context.Context, rentalID int64) error {
	return s.transition(ctx, "approve", cache.ApproveRental, rentalID, s.api.ApproveRental)
}

func (s *rentalService) VerifyPickup(ctx context.Context, rentalID int64) error {
	return s.transition(ctx, "verify pickup", cache.VerifyPickup, rentalID, s.api.VerifyPickup)
}

func (s *rentalService) VerifyReturn(ctx context.Context, rentalID int64) error {
	return s.transition(ctx, "verify return", cache.VerifyReturn, rentalID, s.api.VerifyReturn)
}

func (s *rentalService) transition(ctx context.Context, action string, m cache.Mutation, rentalID int64, call func(context.Context, int64) error) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}
	if err := call(ctx, rentalID); err != nil {
		s.checkAuth(ctx, err)
		logger.Warn("Rental transition rejected", "action", action, "rentalID", rentalID, "error", err)
		return err
	}
	s.cache.Apply(m)
	logger.Info("Rental transition", "action", action, "rentalID", rentalID)
	return nil
}
