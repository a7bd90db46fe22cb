// Package view renders marketplace data as plain text tables for the
// terminal.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/pricing"
)

const dateFormat = "Jan 2, 2006"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func row(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func money(v float64) string {
	return pricing.FormatMoney(v)
}

func date(ts domain.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format(dateFormat)
}

func clock(ts domain.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.Kitchen)
}

func name(u *domain.User) string {
	if u == nil || u.FullName == "" {
		return "-"
	}
	return u.FullName
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// LoadFailed is the empty state shown when a read could not be completed
func LoadFailed(w io.Writer, what string) {
	fmt.Fprintf(w, "Could not load %s. Check your connection and try again.\n", what)
}
