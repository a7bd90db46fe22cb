package service

import (
	"context"

	"tigerrentals-client/internal/cache"
	"tigerrentals-client/internal/domain"
)

type messageService struct {
	base
	api     MessageAPI
	rentals RentalService
}

func NewMessageService(api MessageAPI, rentals RentalService, sessions Sessions, c *cache.Cache) MessageService {
	return &messageService{base: base{sessions: sessions, cache: c}, api: api, rentals: rentals}
}

// Conversations lists one thread per rental, renting side first. The role is
// taken from the list each rental was returned in.
func (s *messageService) Conversations(ctx context.Context) ([]Conversation, error) {
	if _, err := s.requireSession(); err != nil {
		return nil, err
	}
	mine, err := s.rentals.Mine(ctx)
	if err != nil {
		return nil, err
	}

	convs := make([]Conversation, 0, len(mine.AsRenter)+len(mine.AsOwner))
	for _, r := range mine.AsRenter {
		convs = append(convs, Conversation{Rental: r, Role: RoleRenting, Counterparty: r.Owner})
	}
	for _, r := range mine.AsOwner {
		convs = append(convs, Conversation{Rental: r, Role: RoleLending, Counterparty: r.Renter})
	}
	return convs, nil
}

func (s *messageService) List(ctx context.Context, rentalID int64) ([]domain.Message, error) {
	if _, err := s.requireSession(); err != nil {
		return nil, err
	}
	return cached(ctx, &s.base, cache.MessagesFor(rentalID), "messages", func(ctx context.Context) ([]domain.Message, error) {
		return s.api.ListMessages(ctx, rentalID)
	})
}

func (s *messageService) Send(ctx context.Context, rentalID int64, content string) error {
	if _, err := s.requireSession(); err != nil {
		return err
	}
	msg := domain.NewMessage{RentalID: rentalID, Content: content}
	if err := msg.Validate(); err != nil {
		return err
	}
	if _, err := s.api.SendMessage(ctx, msg); err != nil {
		s.checkAuth(ctx, err)
		return err
	}
	s.cache.AfterSendMessage(rentalID)
	return nil
}
