package service

import (
	"context"
	"errors"
	"time"

	"tigerrentals-client/internal/dashboard"
	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/pricing"
	"tigerrentals-client/internal/session"
)

var (
	ErrOwnItem     = errors.New("you cannot rent your own item")
	ErrUnavailable = errors.New("item is not available")
	ErrNoItem      = errors.New("no item selected")
)

// Backend calls, grouped the way the services consume them. *rest.Client
// satisfies all of them.

type MarketplaceAPI interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	GetItem(ctx context.Context, id int64) (*domain.Item, error)
	CreateItem(ctx context.Context, item domain.NewItem) (*domain.Created, error)
	ListMyItems(ctx context.Context) ([]domain.Item, error)
}

type RentalAPI interface {
	CreateRental(ctx context.Context, r domain.NewRental) (*domain.Created, error)
	ListMyRentals(ctx context.Context) (*domain.MyRentals, error)
	ApproveRental(ctx context.Context, id int64) error
	VerifyPickup(ctx context.Context, id int64) error
	VerifyReturn(ctx context.Context, id int64) error
}

type MessageAPI interface {
	ListMessages(ctx context.Context, rentalID int64) ([]domain.Message, error)
	SendMessage(ctx context.Context, m domain.NewMessage) (*domain.Created, error)
}

type ReviewAPI interface {
	CreateReview(ctx context.Context, r domain.NewReview) error
}

type EarningsAPI interface {
	GetEarnings(ctx context.Context) (*domain.EarningsSummary, error)
}

// Sessions is the session manager as seen by the services
type Sessions interface {
	Restore(ctx context.Context) (*session.Session, error)
	Login(ctx context.Context, creds domain.Credentials) (*session.Session, error)
	Register(ctx context.Context, reg domain.Registration) (*session.Session, error)
	Logout(ctx context.Context) error
	Invalidate(ctx context.Context)
	Current() (*session.Session, error)
	OnChange(fn func(*session.Session))
}

type AuthService interface {
	Restore(ctx context.Context) (*session.Session, error)
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Register(ctx context.Context, reg domain.Registration) (*session.Session, error)
	Logout(ctx context.Context) error
	Current() (*session.Session, error)
}

type ItemService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Browse(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	Detail(ctx context.Context, id int64) (*ItemDetail, error)
	Create(ctx context.Context, item domain.NewItem) (*domain.Created, error)
	Mine(ctx context.Context) ([]domain.Item, error)
	Suggest(category string) (pricing.Suggestion, bool)
}

type RentalService interface {
	Quote(item *domain.Item, start, end time.Time) pricing.CostQuote
	Request(ctx context.Context, item *domain.Item, start, end time.Time, message string) (*RequestResult, error)
	Mine(ctx context.Context) (*domain.MyRentals, error)
	Approve(ctx context.Context, rentalID int64) error
	VerifyPickup(ctx context.Context, rentalID int64) error
	VerifyReturn(ctx context.Context, rentalID int64) error
}

type MessageService interface {
	Conversations(ctx context.Context) ([]Conversation, error)
	List(ctx context.Context, rentalID int64) ([]domain.Message, error)
	Send(ctx context.Context, rentalID int64, content string) error
}

type ReviewService interface {
	Submit(ctx context.Context, review domain.NewReview) error
}

type DashboardService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Earnings(ctx context.Context) (*Earnings, error)
}

// ItemDetail is an item plus what the signed-in user may do with it
type ItemDetail struct {
	Item    *domain.Item
	Own     bool
	CanRent bool
}

type RequestResult struct {
	Created *domain.Created
	Quote   pricing.CostQuote
}

type Role string

const (
	RoleRenting Role = "renting"
	RoleLending Role = "lending"
)

// Conversation is one rental thread seen from the signed-in user's side
type Conversation struct {
	Rental       domain.Rental
	Role         Role
	Counterparty *domain.User
}

type Dashboard struct {
	Summary dashboard.Summary
	Tiles   dashboard.Tiles
	Rentals *domain.MyRentals
}

type Earnings struct {
	Summary    *domain.EarningsSummary
	Projection pricing.Projection
	Chart      []pricing.ChartPoint
}
