package pricing

import (
	"errors"
	"fmt"
	"time"
)

// PlatformFeeRate is the marketplace commission on the gross rental cost
const PlatformFeeRate = 0.15

var (
	ErrInvalidRange = errors.New("rental must be at least 1 day")
	ErrInvalidRate  = errors.New("daily rate must be positive")
)

// CostQuote is the rental cost breakdown shown before a request is sent.
// Amounts are unrounded; round only when rendering.
type CostQuote struct {
	DailyRate     float64
	Days          int
	GrossTotal    float64
	PlatformFee   float64
	OwnerEarnings float64
}

// Valid reports whether the quote covers at least one billable day
func (q CostQuote) Valid() bool {
	return q.Days >= 1
}

// DayCount is the whole-day difference between the UTC calendar dates of
// start and end. Time of day is ignored and spans of zero or less report 0.
func DayCount(start, end time.Time) int {
	days := DaysBetween(UTCDateOf(start), UTCDateOf(end))
	if days < 1 {
		return 0
	}
	return days
}

// Quote computes the cost of renting at dailyRate from start to end. An
// invalid range yields a zero quote with no charge.
func Quote(dailyRate float64, start, end time.Time) CostQuote {
	days := DayCount(start, end)
	if days < 1 {
		return CostQuote{DailyRate: dailyRate}
	}

	gross := dailyRate * float64(days)
	fee := gross * PlatformFeeRate
	return CostQuote{
		DailyRate:     dailyRate,
		Days:          days,
		GrossTotal:    gross,
		PlatformFee:   fee,
		OwnerEarnings: gross - fee,
	}
}

// QuoteDates parses yyyy-mm-dd form values and quotes them
func QuoteDates(dailyRate float64, startStr, endStr string) (CostQuote, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return CostQuote{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return CostQuote{}, fmt.Errorf("invalid end date: %w", err)
	}
	return Quote(dailyRate, start.Time(), end.Time()), nil
}

// QuoteForRequest is Quote plus the checks that gate submission: the rate
// must be positive and the range must cover at least one day.
func QuoteForRequest(dailyRate float64, start, end time.Time) (CostQuote, error) {
	if dailyRate <= 0 {
		return CostQuote{}, ErrInvalidRate
	}
	q := Quote(dailyRate, start, end)
	if !q.Valid() {
		return q, ErrInvalidRange
	}
	return q, nil
}
