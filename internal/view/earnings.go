package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tigerrentals-client/internal/service"
)

const chartWidth = 30

func Earnings(w io.Writer, e *service.Earnings) {
	s := e.Summary
	tw := newTable(w)
	row(tw, "Total earnings", money(s.TotalEarnings))
	row(tw, "This month", money(s.MonthlyEarnings))
	row(tw, "Pending", money(s.PendingEarnings))
	row(tw, "Active rentals", strconv.Itoa(s.ActiveRentals))
	row(tw, "Listed items", strconv.Itoa(s.TotalItems))
	tw.Flush()

	fmt.Fprintln(w, "\nProjections")
	tw = newTable(w)
	row(tw, "Weekly", money(e.Projection.Weekly))
	row(tw, "Monthly", money(e.Projection.Monthly))
	row(tw, "Semester", money(e.Projection.Semester))
	tw.Flush()

	fmt.Fprintln(w, "\nTrend")
	peak := 0.0
	for _, p := range e.Chart {
		if p.Earnings > peak {
			peak = p.Earnings
		}
	}
	tw = newTable(w)
	for _, p := range e.Chart {
		bar := 0
		if peak > 0 {
			bar = int(p.Earnings / peak * chartWidth)
		}
		glyph := "#"
		if p.Projected {
			glyph = "."
		}
		row(tw, p.Label, strings.Repeat(glyph, bar), money(p.Earnings))
	}
	tw.Flush()

	fmt.Fprintln(w, "\nRecent transactions")
	if len(s.Transactions) == 0 {
		fmt.Fprintln(w, "No transactions yet. Start lending to earn money.")
		return
	}
	tw = newTable(w)
	row(tw, "DATE", "TIME", "DESCRIPTION", "AMOUNT")
	for _, t := range s.Transactions {
		row(tw, date(t.CreatedAt), clock(t.CreatedAt), t.Description, money(t.Amount))
	}
	tw.Flush()
}
