package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"tigerrentals-client/internal/cache"
	"tigerrentals-client/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Conversations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	// my-rentals nests the participants and carries no renter_id or owner_id
	body := fmt.Sprintf(`{
		"as_renter": [{"id": 1, "status": "approved", "item": {"id": 3, "title": "Canon EOS R6"},
			"renter": {"id": %[1]d, "full_name": "Me"}, "owner": {"id": 20, "full_name": "Olivia"}}],
		"as_owner": [{"id": 2, "status": "pending", "item": {"id": 4, "title": "Tent"},
			"renter": {"id": 30, "full_name": "Ravi"}, "owner": {"id": %[1]d, "full_name": "Me"}}]
	}`, me.ID)
	var mine domain.MyRentals
	require.NoError(t, json.Unmarshal([]byte(body), &mine))
	require.Zero(t, mine.AsRenter[0].RenterID)
	f.api.On("ListMyRentals", ctx).Return(&mine, nil)

	convs, err := f.messages().Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 2)

	assert.Equal(t, RoleRenting, convs[0].Role)
	assert.Equal(t, "Olivia", convs[0].Counterparty.FullName)
	assert.Equal(t, int64(1), convs[0].Rental.ID)
	assert.Equal(t, RoleLending, convs[1].Role)
	assert.Equal(t, "Ravi", convs[1].Counterparty.FullName)
	assert.Equal(t, int64(2), convs[1].Rental.ID)
}

func TestMessageService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank content rejected", func(t *testing.T) {
		f := newFixture(t, true)
		err := f.messages().Send(ctx, 1, "   ")
		assert.ErrorIs(t, err, domain.ErrValidation)
		f.api.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
	})

	t.Run("Success drops only that thread", func(t *testing.T) {
		f := newFixture(t, true)
		f.cache.Put(cache.MessagesFor(1), []domain.Message{})
		f.cache.Put(cache.MessagesFor(2), []domain.Message{})
		f.api.On("SendMessage", ctx, domain.NewMessage{RentalID: 1, Content: "Pickup at 5?"}).
			Return(&domain.Created{ID: 9}, nil)

		require.NoError(t, f.messages().Send(ctx, 1, "Pickup at 5?"))
		_, ok := f.cache.Get(cache.MessagesFor(1))
		assert.False(t, ok)
		_, ok = f.cache.Get(cache.MessagesFor(2))
		assert.True(t, ok)
	})
}

func TestMessageService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	msgs := []domain.Message{{ID: 1, RentalID: 4, Content: "hello"}}
	f.api.On("ListMessages", ctx, int64(4)).Return(msgs, nil).Once()

	got, err := f.messages().List(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, msgs, got)
	_, err = f.messages().List(ctx, 4)
	require.NoError(t, err)
	f.api.AssertNumberOfCalls(t, "ListMessages", 1)
}

func TestReviewService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Rating out of range", func(t *testing.T) {
		f := newFixture(t, true)
		err := f.reviews().Submit(ctx, domain.NewReview{RentalID: 1, RevieweeID: 2, Rating: 6})
		assert.ErrorIs(t, err, domain.ErrValidation)
		f.api.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})

	t.Run("Success invalidates rentals", func(t *testing.T) {
		f := newFixture(t, true)
		f.cache.Put(cache.KeyOf(cache.MyRentals), &domain.MyRentals{})
		review := domain.NewReview{RentalID: 1, RevieweeID: 2, Rating: 5}
		f.api.On("CreateReview", ctx, review).Return(nil)

		require.NoError(t, f.reviews().Submit(ctx, review))
		assert.Equal(t, 0, f.cache.Len())
	})
}
