package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tigerrentals-client/internal/dashboard"
	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/service"
)

// Dashboard prints the headline tiles, per-status counts for both roles and
// the rentals of the selected tab.
func Dashboard(w io.Writer, d *service.Dashboard, tab service.Role) {
	tw := newTable(w)
	row(tw, "Active rentals", strconv.Itoa(d.Tiles.ActiveRentals))
	row(tw, "Pending requests", strconv.Itoa(d.Tiles.PendingRequests))
	row(tw, "Completed", strconv.Itoa(d.Tiles.Completed))
	row(tw, "Total earnings", money(d.Tiles.TotalEarnings))
	tw.Flush()
	fmt.Fprintln(w)

	StatusCounts(w, d.Summary)
	fmt.Fprintln(w)

	var rentals []domain.Rental
	if d.Rentals != nil {
		rentals = d.Rentals.AsRenter
		if tab == service.RoleLending {
			rentals = d.Rentals.AsOwner
		}
	}
	fmt.Fprintf(w, "%s (%d)\n", strings.ToUpper(string(tab)), len(rentals))
	Rentals(w, rentals, tab)
}

func StatusCounts(w io.Writer, s dashboard.Summary) {
	tw := newTable(w)
	header := []string{"ROLE"}
	for _, st := range domain.RentalStatuses {
		header = append(header, strings.ToUpper(string(st)))
	}
	header = append(header, "OTHER", "TOTAL")
	row(tw, header...)

	for _, r := range []struct {
		label string
		stats dashboard.RoleStats
	}{
		{"renting", s.Renting},
		{"lending", s.Lending},
	} {
		cols := []string{r.label}
		for _, st := range domain.RentalStatuses {
			cols = append(cols, strconv.Itoa(r.stats.Count(st)))
		}
		cols = append(cols, strconv.Itoa(r.stats.Other), strconv.Itoa(r.stats.Total))
		row(tw, cols...)
	}
	tw.Flush()
}

// Rentals lists rentals from one role's side with the actions open to them
func Rentals(w io.Writer, rentals []domain.Rental, role service.Role) {
	if len(rentals) == 0 {
		if role == service.RoleLending {
			fmt.Fprintln(w, "No one has rented your items yet.")
		} else {
			fmt.Fprintln(w, "You haven't rented anything yet.")
		}
		return
	}

	tw := newTable(w)
	other := "OWNER"
	if role == service.RoleLending {
		other = "RENTER"
	}
	header := []string{"ID", "ITEM", other, "START", "END", "TOTAL"}
	if role == service.RoleLending {
		header = append(header, "YOU EARN")
	}
	header = append(header, "STATUS", "ACTIONS")
	row(tw, header...)

	for i := range rentals {
		r := &rentals[i]
		who := r.Owner
		if role == service.RoleLending {
			who = r.Renter
		}
		cols := []string{
			strconv.FormatInt(r.ID, 10),
			truncate(r.ItemTitle(), 32),
			name(who),
			date(r.StartDate),
			date(r.EndDate),
			money(r.TotalCost),
		}
		if role == service.RoleLending {
			cols = append(cols, money(r.OwnerEarnings))
		}
		cols = append(cols, string(r.Status), strings.Join(Actions(r, role), ","))
		row(tw, cols...)
	}
	tw.Flush()
}

// Actions names the transitions the dashboard offers for r. Only owners
// approve; either side verifies pickup and return.
func Actions(r *domain.Rental, role service.Role) []string {
	var actions []string
	if role == service.RoleLending && r.CanApprove() {
		actions = append(actions, "approve")
	}
	if r.CanVerifyPickup() {
		actions = append(actions, "pickup")
	}
	if r.CanVerifyReturn() {
		actions = append(actions, "return")
	}
	if len(actions) == 0 {
		return []string{"-"}
	}
	return actions
}
