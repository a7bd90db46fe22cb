package rest

import "fmt"

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Bearer token required
)

// Route is one backend endpoint. Path may hold a single %d for an id.
type Route struct {
	Name   string
	Method string
	Path   string
	Level  SecurityLevel
}

func (r Route) path(args ...any) string {
	if len(args) == 0 {
		return r.Path
	}
	return fmt.Sprintf(r.Path, args...)
}

var (
	// Auth - Public
	RouteRegister = Route{"auth.register", "POST", "/auth/register", SecurityPublic}
	RouteLogin    = Route{"auth.login", "POST", "/auth/login", SecurityPublic}

	// Auth - Access Protected
	RouteMe = Route{"auth.me", "GET", "/auth/me", SecurityAccess}

	// Catalog - Public
	RouteCategories = Route{"categories.list", "GET", "/categories", SecurityPublic}
	RouteItems      = Route{"items.list", "GET", "/items", SecurityPublic}
	RouteItem       = Route{"items.get", "GET", "/items/%d", SecurityPublic}

	// Catalog - Access Protected
	RouteCreateItem = Route{"items.create", "POST", "/items", SecurityAccess}
	RouteMyItems    = Route{"items.mine", "GET", "/items/my-items", SecurityAccess}

	// Rentals - Access Protected
	RouteCreateRental = Route{"rentals.create", "POST", "/rentals", SecurityAccess}
	RouteMyRentals    = Route{"rentals.mine", "GET", "/rentals/my-rentals", SecurityAccess}
	RouteApprove      = Route{"rentals.approve", "PATCH", "/rentals/%d/approve", SecurityAccess}
	RouteVerifyPickup = Route{"rentals.verify_pickup", "PATCH", "/rentals/%d/verify-pickup", SecurityAccess}
	RouteVerifyReturn = Route{"rentals.verify_return", "PATCH", "/rentals/%d/verify-return", SecurityAccess}

	// Messaging - Access Protected
	RouteMessages    = Route{"messages.list", "GET", "/messages", SecurityAccess}
	RouteSendMessage = Route{"messages.send", "POST", "/messages", SecurityAccess}

	// Reviews - Access Protected
	RouteCreateReview = Route{"reviews.create", "POST", "/reviews", SecurityAccess}

	// Dashboard - Access Protected
	RouteEarnings = Route{"dashboard.earnings", "GET", "/dashboard/earnings", SecurityAccess}
)
