package service

import (
	"context"
	"testing"

	"tigerrentals-client/internal/cache"
	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/repository/memory"
	"tigerrentals-client/internal/session"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAPI stands in for the REST client
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockAPI) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockAPI) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockAPI) CreateItem(ctx context.Context, item domain.NewItem) (*domain.Created, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Created), args.Error(1)
}

func (m *MockAPI) ListMyItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockAPI) CreateRental(ctx context.Context, r domain.NewRental) (*domain.Created, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Created), args.Error(1)
}

func (m *MockAPI) ListMyRentals(ctx context.Context) (*domain.MyRentals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MyRentals), args.Error(1)
}

func (m *MockAPI) ApproveRental(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) VerifyPickup(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) VerifyReturn(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) ListMessages(ctx context.Context, rentalID int64) ([]domain.Message, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockAPI) SendMessage(ctx context.Context, msg domain.NewMessage) (*domain.Created, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Created), args.Error(1)
}

func (m *MockAPI) CreateReview(ctx context.Context, r domain.NewReview) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockAPI) GetEarnings(ctx context.Context) (*domain.EarningsSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EarningsSummary), args.Error(1)
}

// stubAuth signs in whoever asks as user
type stubAuth struct {
	user domain.User
}

func (a stubAuth) Login(_ context.Context, _ domain.Credentials) (*domain.AuthResult, error) {
	return &domain.AuthResult{AccessToken: "tok", TokenType: "bearer", User: a.user}, nil
}

func (a stubAuth) Register(_ context.Context, _ domain.Registration) (*domain.AuthResult, error) {
	return &domain.AuthResult{AccessToken: "tok", TokenType: "bearer", User: a.user}, nil
}

func (a stubAuth) UserForToken(_ context.Context, _ string) (*domain.User, error) {
	u := a.user
	return &u, nil
}

var me = domain.User{ID: 7, Email: "me@princeton.edu", FullName: "Me"}

type fixture struct {
	api      *MockAPI
	sessions *session.Manager
	cache    *cache.Cache
}

// newFixture returns services wired to a mock backend. signedIn controls
// whether a session exists.
func newFixture(t *testing.T, signedIn bool) *fixture {
	t.Helper()
	f := &fixture{
		api:      new(MockAPI),
		sessions: session.NewManager(stubAuth{user: me}, memory.NewSessionRepository()),
		cache:    cache.New(),
	}
	if signedIn {
		_, err := f.sessions.Login(context.Background(), domain.Credentials{Email: me.Email, Password: "pw"})
		require.NoError(t, err)
	}
	return f
}

func (f *fixture) items() ItemService {
	return NewItemService(f.api, f.sessions, f.cache)
}

func (f *fixture) rentals() RentalService {
	return NewRentalService(f.api, f.sessions, f.cache)
}

func (f *fixture) messages() MessageService {
	return NewMessageService(f.api, f.rentals(), f.sessions, f.cache)
}

func (f *fixture) reviews() ReviewService {
	return NewReviewService(f.api, f.sessions, f.cache)
}

func (f *fixture) dashboard() DashboardService {
	return NewDashboardService(f.api, f.rentals(), f.sessions, f.cache)
}
