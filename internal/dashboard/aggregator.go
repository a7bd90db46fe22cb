package dashboard

import "tigerrentals-client/internal/domain"

// RoleStats counts one role's rentals by status. Statuses the client does
// not recognise land in Other so that the counts always add up to Total.
type RoleStats struct {
	Counts map[domain.RentalStatus]int
	Other  int
	Total  int
}

func newRoleStats() RoleStats {
	counts := make(map[domain.RentalStatus]int, len(domain.RentalStatuses))
	for _, s := range domain.RentalStatuses {
		counts[s] = 0
	}
	return RoleStats{Counts: counts}
}

// Count returns the number of rentals in status s
func (r RoleStats) Count(s domain.RentalStatus) int {
	return r.Counts[s]
}

func (r *RoleStats) add(s domain.RentalStatus) {
	r.Total++
	if s.Known() {
		r.Counts[s]++
		return
	}
	r.Other++
}

// Summary is the aggregated dashboard for the signed-in user
type Summary struct {
	Renting RoleStats
	Lending RoleStats
	// TotalEarnings sums owner earnings of completed lending rentals only
	TotalEarnings float64
}

// Tiles are the four headline figures of the dashboard
type Tiles struct {
	ActiveRentals   int
	PendingRequests int
	Completed       int
	TotalEarnings   float64
}

// Aggregate reduces both rental lists. It never fails and the result does not
// depend on the order of the input.
func Aggregate(asRenter, asOwner []domain.Rental) Summary {
	sum := Summary{
		Renting: newRoleStats(),
		Lending: newRoleStats(),
	}
	for i := range asRenter {
		sum.Renting.add(asRenter[i].Status)
	}
	for i := range asOwner {
		r := &asOwner[i]
		sum.Lending.add(r.Status)
		if r.Status == domain.RentalStatusCompleted {
			sum.TotalEarnings += r.OwnerEarnings
		}
	}
	return sum
}

// AggregateMine is Aggregate over a my-rentals response
func AggregateMine(m *domain.MyRentals) Summary {
	if m == nil {
		return Aggregate(nil, nil)
	}
	return Aggregate(m.AsRenter, m.AsOwner)
}

// Tiles picks the headline figures: what I am renting right now, requests
// waiting on me as an owner, everything completed, and what I have earned.
func (s Summary) Tiles() Tiles {
	return Tiles{
		ActiveRentals:   s.Renting.Count(domain.RentalStatusActive),
		PendingRequests: s.Lending.Count(domain.RentalStatusPending),
		Completed:       s.Renting.Count(domain.RentalStatusCompleted) + s.Lending.Count(domain.RentalStatusCompleted),
		TotalEarnings:   s.TotalEarnings,
	}
}
