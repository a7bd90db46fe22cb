package service

import (
	"context"

	"tigerrentals-client/internal/cache"
	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/logger"
)

type reviewService struct {
	base
	api ReviewAPI
}

func NewReviewService(api ReviewAPI, sessions Sessions, c *cache.Cache) ReviewService {
	return &reviewService{base: base{sessions: sessions, cache: c}, api: api}
}

func (s *reviewService) Submit(ctx context.Context, review domain.NewReview) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}
	if err := review.Validate(); err != nil {
		return err
	}
	if err := s.api.CreateReview(ctx, review); err != nil {
		s.checkAuth(ctx, err)
		return err
	}
	s.cache.Apply(cache.CreateReview)
	logger.Info("Review submitted", "rentalID", review.RentalID, "rating", review.Rating)
	return nil
}
