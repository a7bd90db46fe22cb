package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tigerrentals-client/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "header.payload.signature"

// fakeBackend records the last request seen by each handler
type fakeBackend struct {
	router   *mux.Router
	server   *httptest.Server
	lastAuth string
	lastReq  *http.Request
	lastBody map[string]any
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{router: mux.NewRouter()}
	api := fb.router.PathPrefix("/api").Subrouter()
	api.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fb.lastAuth = r.Header.Get("Authorization")
			fb.lastReq = r
			fb.lastBody = nil
			if r.Body != nil && r.ContentLength != 0 {
				_ = json.NewDecoder(r.Body).Decode(&fb.lastBody)
			}
			next.ServeHTTP(w, r)
		})
	})

	api.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if fb.lastBody["password"] != "password123" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Incorrect email or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": testToken,
			"token_type":   "bearer",
			"user":         map[string]any{"id": 7, "email": "demo@princeton.edu", "full_name": "Demo Student", "verified": true, "rating": 4.8, "total_ratings": 12},
		})
	}).Methods(http.MethodPost)

	api.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Could not validate credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 7, "email": "demo@princeton.edu", "full_name": "Demo Student"})
	}).Methods(http.MethodGet)

	api.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "name": "Electronics", "icon": "💻"}, {"id": 2, "name": "Photography", "icon": "📷"}})
	}).Methods(http.MethodGet)

	api.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 3, "owner_id": 9, "title": "Canon EOS R6", "daily_rate": 45, "weekly_rate": 250, "deposit": 500, "condition": "Excellent",
				"available": true, "location_name": "Frist Campus Center", "latitude": 40.3478, "longitude": -74.6553,
				"created_at": "2025-09-01T10:15:30.123456", "images": []string{}, "categories": []map[string]any{{"id": 2, "name": "Photography"}},
				"owner": map[string]any{"id": 9, "full_name": "Owner", "rating": 5.0, "total_ratings": 3, "verified": true}, "distance": 0.4},
			{"id": 1, "owner_id": 7, "title": "TI-84", "daily_rate": 5, "weekly_rate": nil, "deposit": 50, "condition": "Good",
				"available": true, "location_name": "McCosh Hall", "latitude": 40.3485, "longitude": -74.6579,
				"created_at": "2025-08-01T09:00:00", "categories": []map[string]any{}},
		})
	}).Methods(http.MethodGet)

	api.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 11, "message": "Item created successfully"})
	}).Methods(http.MethodPost)

	api.HandleFunc("/items/my-items", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{})
	}).Methods(http.MethodGet)

	api.HandleFunc("/items/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] != "3" {
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Item not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 3, "owner_id": 9, "title": "Canon EOS R6", "daily_rate": 45})
	}).Methods(http.MethodGet)

	api.HandleFunc("/rentals", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 21, "message": "Rental request created successfully"})
	}).Methods(http.MethodPost)

	api.HandleFunc("/rentals/my-rentals", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"as_renter": []map[string]any{{"id": 21, "item": map[string]any{"id": 3, "title": "Canon EOS R6"}, "status": "pending",
				"start_date": "2025-09-02T00:00:00", "end_date": "2025-09-05T00:00:00", "total_cost": 135, "platform_fee": 20.25, "owner_earnings": 114.75}},
			"as_owner": []map[string]any{},
		})
	}).Methods(http.MethodGet)

	api.HandleFunc("/rentals/{id:[0-9]+}/{action}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] == "403" {
			writeJSON(w, http.StatusForbidden, map[string]any{"detail": "Not authorized"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"message": "ok"})
	}).Methods(http.MethodPatch)

	api.HandleFunc("/messages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "rental_id": 21, "sender_id": 7, "receiver_id": 9, "content": "Hi!", "created_at": "2025-09-01T12:00:00Z"}})
	}).Methods(http.MethodGet)

	api.HandleFunc("/messages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 2, "message": "Message sent successfully"})
	}).Methods(http.MethodPost)

	api.HandleFunc("/reviews", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": []map[string]any{{"loc": []any{"body", "rating"}, "msg": "field required"}}})
	}).Methods(http.MethodPost)

	api.HandleFunc("/dashboard/earnings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"total_earnings": 250.5, "monthly_earnings": 400, "pending_earnings": 12.75, "active_rentals": 1, "total_items": 2,
			"transactions": []map[string]any{{"id": 1, "amount": 114.75, "description": "Rental earnings", "created_at": "2025-09-06T08:00:00"}}})
	}).Methods(http.MethodGet)

	fb.server = httptest.NewServer(fb.router)
	t.Cleanup(fb.server.Close)
	return fb
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (fb *fakeBackend) client(token string, opts ...Option) *Client {
	opts = append([]Option{WithTokenSource(staticToken(token))}, opts...)
	return NewClient(fb.server.URL+"/api/", 5*time.Second, opts...)
}

func TestClient_Auth(t *testing.T) {
	fb := newFakeBackend(t)
	ctx := context.Background()

	t.Run("Login success", func(t *testing.T) {
		res, err := fb.client("").Login(ctx, domain.Credentials{Email: "demo@princeton.edu", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, testToken, res.AccessToken)
		assert.Equal(t, int64(7), res.User.ID)
		assert.Empty(t, fb.lastAuth)
		_, err = uuid.Parse(fb.lastReq.Header.Get("X-Request-ID"))
		assert.NoError(t, err)
	})

	t.Run("Login rejected carries detail", func(t *testing.T) {
		_, err := fb.client("").Login(ctx, domain.Credentials{Email: "demo@princeton.edu", Password: "nope"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
		detail, ok := Detail(err)
		assert.True(t, ok)
		assert.Equal(t, "Incorrect email or password", detail)
	})

	t.Run("Explicit token validation", func(t *testing.T) {
		u, err := fb.client("").UserForToken(ctx, testToken)
		require.NoError(t, err)
		assert.Equal(t, "Demo Student", u.FullName)

		_, err = fb.client("").UserForToken(ctx, "stale")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Protected route without token never leaves the client", func(t *testing.T) {
		fb.lastReq = nil
		_, err := fb.client("").ListMyItems(ctx)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Nil(t, fb.lastReq)
	})
}

func TestItemQuery_Geo(t *testing.T) {
	t.Run("Equator and prime meridian kept", func(t *testing.T) {
		q := itemQuery(domain.ItemFilter{Near: true})
		assert.Equal(t, "0", q.Get("latitude"))
		assert.Equal(t, "0", q.Get("longitude"))

		q = itemQuery(domain.ItemFilter{Near: true, Latitude: 51.4779})
		assert.Equal(t, "51.4779", q.Get("latitude"))
		assert.Equal(t, "0", q.Get("longitude"))
	})

	t.Run("Coordinates ignored without near", func(t *testing.T) {
		q := itemQuery(domain.ItemFilter{Latitude: 40.3487, Longitude: -74.6593})
		assert.False(t, q.Has("latitude"))
		assert.False(t, q.Has("longitude"))
	})
}

func TestClient_Items(t *testing.T) {
	fb := newFakeBackend(t)
	ctx := context.Background()
	c := fb.client("")

	t.Run("Categories", func(t *testing.T) {
		cats, err := c.ListCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, cats, 2)
		assert.Equal(t, "Photography", cats[1].Name)
	})

	t.Run("List keeps server order and query", func(t *testing.T) {
		items, err := c.ListItems(ctx, domain.ItemFilter{Search: "camera", CategoryID: 2, MaxPrice: 50, Near: true, Latitude: 40.3487, Longitude: -74.6593, MaxDistance: 10})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(3), items[0].ID)
		assert.Equal(t, int64(1), items[1].ID)

		q := fb.lastReq.URL.Query()
		assert.Equal(t, "camera", q.Get("search"))
		assert.Equal(t, "2", q.Get("category_id"))
		assert.Equal(t, "50", q.Get("max_price"))
		assert.Equal(t, "10", q.Get("max_distance"))
		assert.Equal(t, "40.3487", q.Get("latitude"))
		assert.Equal(t, "-74.6593", q.Get("longitude"))
		assert.False(t, q.Has("min_price"))

		first := items[0]
		assert.Equal(t, "Frist Campus Center", first.Location.Name)
		require.NotNil(t, first.WeeklyRate)
		assert.Equal(t, 250.0, *first.WeeklyRate)
		assert.Equal(t, 2025, first.CreatedAt.Year())
		require.NotNil(t, first.Distance)
		assert.Nil(t, items[1].WeeklyRate)
	})

	t.Run("Get missing item", func(t *testing.T) {
		_, err := c.GetItem(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Create item requires session", func(t *testing.T) {
		_, err := c.CreateItem(ctx, domain.NewItem{Title: "x"})
		assert.ErrorIs(t, err, ErrUnauthorized)

		res, err := fb.client(testToken).CreateItem(ctx, domain.NewItem{Title: "Bike", DailyRate: 15, CategoryIDs: []int64{8}})
		require.NoError(t, err)
		assert.Equal(t, int64(11), res.ID)
		assert.Equal(t, "Bearer "+testToken, fb.lastAuth)
		assert.Equal(t, "Bike", fb.lastBody["title"])
	})
}

func TestClient_Rentals(t *testing.T) {
	fb := newFakeBackend(t)
	ctx := context.Background()
	c := fb.client(testToken)

	t.Run("Create sends ISO dates", func(t *testing.T) {
		start := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)
		res, err := c.CreateRental(ctx, domain.NewRental{ItemID: 3, StartDate: start, EndDate: start.AddDate(0, 0, 3)})
		require.NoError(t, err)
		assert.Equal(t, int64(21), res.ID)
		assert.Equal(t, "2025-09-02T00:00:00Z", fb.lastBody["start_date"])
		assert.NotContains(t, fb.lastBody, "message")
	})

	t.Run("My rentals", func(t *testing.T) {
		mine, err := c.ListMyRentals(ctx)
		require.NoError(t, err)
		require.Len(t, mine.AsRenter, 1)
		assert.Empty(t, mine.AsOwner)
		r := mine.AsRenter[0]
		assert.Equal(t, domain.RentalStatusPending, r.Status)
		assert.Equal(t, "Canon EOS R6", r.ItemTitle())
		assert.Equal(t, 5, r.EndDate.Day())
	})

	t.Run("Transitions", func(t *testing.T) {
		assert.NoError(t, c.ApproveRental(ctx, 21))
		assert.Equal(t, "/api/rentals/21/approve", fb.lastReq.URL.Path)
		assert.NoError(t, c.VerifyPickup(ctx, 21))
		assert.Equal(t, "/api/rentals/21/verify-pickup", fb.lastReq.URL.Path)
		assert.NoError(t, c.VerifyReturn(ctx, 21))
		assert.Equal(t, http.MethodPatch, fb.lastReq.Method)

		err := c.ApproveRental(ctx, 403)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		assert.Equal(t, "Not authorized", apiErr.Detail)
	})
}

func TestClient_MessagesReviewsEarnings(t *testing.T) {
	fb := newFakeBackend(t)
	ctx := context.Background()
	c := fb.client(testToken)

	msgs, err := c.ListMessages(ctx, 21)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "21", fb.lastReq.URL.Query().Get("rental_id"))

	_, err = c.SendMessage(ctx, domain.NewMessage{RentalID: 21, Content: "On my way"})
	require.NoError(t, err)
	assert.Equal(t, "On my way", fb.lastBody["content"])

	err = c.CreateReview(ctx, domain.NewReview{RentalID: 21, RevieweeID: 9, Rating: 5})
	detail, ok := Detail(err)
	assert.True(t, ok)
	assert.Equal(t, "rating: field required", detail)

	earnings, err := c.GetEarnings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 400.0, earnings.MonthlyEarnings)
	assert.Len(t, earnings.Transactions, 1)
}

func TestClient_NetworkFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1/api", time.Second)
	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	_, ok := Detail(err)
	assert.False(t, ok)
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	fb := newFakeBackend(t)
	c := fb.client("", WithRateLimit(0.001, 1))
	ctx := context.Background()

	_, err := c.ListCategories(ctx)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = c.ListCategories(ctx)
	assert.Error(t, err)
}

func TestParseDetail(t *testing.T) {
	assert.Equal(t, "Item not found", parseDetail([]byte(`{"detail":"Item not found"}`)))
	assert.Equal(t, "", parseDetail([]byte(`<html>oops</html>`)))
	assert.Equal(t, "", parseDetail([]byte(`{"error":"x"}`)))
	assert.Equal(t, "email: bad; x", parseDetail([]byte(`{"detail":[{"loc":["body","email"],"msg":"bad"},{"msg":"x"}]}`)))
}
