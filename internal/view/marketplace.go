package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/pricing"
	"tigerrentals-client/internal/service"
)

func Categories(w io.Writer, cats []domain.Category) {
	if len(cats) == 0 {
		fmt.Fprintln(w, "No categories.")
		return
	}
	tw := newTable(w)
	row(tw, "ID", "CATEGORY")
	for _, c := range cats {
		label := c.Name
		if c.Icon != "" {
			label = c.Icon + " " + c.Name
		}
		row(tw, strconv.FormatInt(c.ID, 10), label)
	}
	tw.Flush()
}

// Marketplace lists items the way the browse page shows its cards
func Marketplace(w io.Writer, items []domain.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items found. Try adjusting your search or filters.")
		return
	}
	tw := newTable(w)
	row(tw, "ID", "TITLE", "PER DAY", "CONDITION", "LOCATION", "DISTANCE", "OWNER", "RATING")
	for _, it := range items {
		dist := "-"
		if it.Distance != nil {
			dist = fmt.Sprintf("%.1f mi", *it.Distance)
		}
		rating := "-"
		if it.Owner != nil {
			rating = fmt.Sprintf("%.1f", it.Owner.Rating)
		}
		title := truncate(it.Title, 40)
		if !it.Available {
			title += " (unavailable)"
		}
		row(tw,
			strconv.FormatInt(it.ID, 10),
			title,
			money(it.DailyRate),
			string(it.Condition),
			it.Location.Name,
			dist,
			name(it.Owner),
			rating,
		)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d items\n", len(items))
}

func ItemDetail(w io.Writer, d *service.ItemDetail) {
	it := d.Item
	fmt.Fprintf(w, "%s\n", it.Title)
	fmt.Fprintf(w, "%s\n\n", it.Description)

	tw := newTable(w)
	row(tw, "Daily rate", money(it.DailyRate))
	if it.WeeklyRate != nil {
		row(tw, "Weekly rate", money(*it.WeeklyRate))
	}
	row(tw, "Deposit", money(it.Deposit))
	row(tw, "Condition", string(it.Condition))
	row(tw, "Location", it.Location.Name)
	if len(it.Categories) > 0 {
		names := make([]string, len(it.Categories))
		for i, c := range it.Categories {
			names[i] = c.Name
		}
		row(tw, "Categories", strings.Join(names, ", "))
	}
	if it.Owner != nil {
		owner := fmt.Sprintf("%s  %.1f (%d reviews)", it.Owner.FullName, it.Owner.Rating, it.Owner.TotalRatings)
		if it.Owner.Verified {
			owner += "  verified"
		}
		row(tw, "Owner", owner)
	}
	tw.Flush()

	switch {
	case d.Own:
		fmt.Fprintln(w, "\nThis is your item.")
	case !it.Available:
		fmt.Fprintln(w, "\nCurrently unavailable.")
	}
}

// Quote prints the cost breakdown of a prospective rental
func Quote(w io.Writer, q pricing.CostQuote) {
	if !q.Valid() {
		fmt.Fprintln(w, "Select valid rental dates (at least 1 day).")
		return
	}
	tw := newTable(w)
	row(tw, fmt.Sprintf("%s x %d days", money(q.DailyRate), q.Days), money(q.GrossTotal))
	row(tw, "Platform fee (15%)", money(q.PlatformFee))
	row(tw, "Owner receives", money(q.OwnerEarnings))
	row(tw, "Total", money(q.GrossTotal))
	tw.Flush()
}

func Suggestion(w io.Writer, s pricing.Suggestion) {
	fmt.Fprintf(w, "Suggested pricing for %s\n", s.Category)
	tw := newTable(w)
	row(tw, "Daily range", fmt.Sprintf("%s - %s", money(s.MinDaily), money(s.MaxDaily)))
	row(tw, "Daily rate", money(s.DailyRate))
	row(tw, "Weekly rate", money(s.WeeklyRate))
	row(tw, "Deposit", money(s.Deposit))
	tw.Flush()
}
