package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2025, 9, n, 0, 0, 0, 0, time.UTC)
}

func TestDayCount(t *testing.T) {
	t.Run("Whole days", func(t *testing.T) {
		assert.Equal(t, 3, DayCount(day(1), day(4)))
	})

	t.Run("Time of day ignored", func(t *testing.T) {
		start := time.Date(2025, 9, 1, 22, 0, 0, 0, time.UTC)
		end := time.Date(2025, 9, 2, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, DayCount(start, end))

		sameDay := time.Date(2025, 9, 1, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, 0, DayCount(start.Add(-20*time.Hour), sameDay))
	})

	t.Run("Reversed range is zero", func(t *testing.T) {
		assert.Equal(t, 0, DayCount(day(10), day(4)))
	})

	t.Run("Offsets compared in UTC", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		// 2025-09-02 04:00 UTC
		start := time.Date(2025, 9, 1, 23, 0, 0, 0, est)
		end := time.Date(2025, 9, 2, 1, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, DayCount(start, end))
		assert.Equal(t, 1, DayCount(start, end.Add(24*time.Hour)))
	})

	t.Run("Span beyond 292 years", func(t *testing.T) {
		start := time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 118704, DayCount(start, end))
	})
}

func TestQuote(t *testing.T) {
	t.Run("Three day camera rental", func(t *testing.T) {
		q := Quote(45, day(1), day(4))
		assert.True(t, q.Valid())
		assert.Equal(t, 3, q.Days)
		assert.InDelta(t, 135.00, q.GrossTotal, 1e-9)
		assert.InDelta(t, 20.25, q.PlatformFee, 1e-9)
		assert.InDelta(t, 114.75, q.OwnerEarnings, 1e-9)
		assert.Equal(t, "$135.00", FormatMoney(q.GrossTotal))
		assert.Equal(t, "$20.25", FormatMoney(q.PlatformFee))
		assert.Equal(t, "$114.75", FormatMoney(q.OwnerEarnings))
	})

	t.Run("Same day is invalid and free", func(t *testing.T) {
		q := Quote(45, day(4), day(4))
		assert.False(t, q.Valid())
		assert.Equal(t, 0, q.Days)
		assert.Zero(t, q.GrossTotal)
		assert.Zero(t, q.PlatformFee)
		assert.Zero(t, q.OwnerEarnings)
	})

	t.Run("No rounding before display", func(t *testing.T) {
		q := Quote(33.33, day(1), day(2))
		assert.InDelta(t, 4.9995, q.PlatformFee, 1e-9)
		assert.NotEqual(t, Round2(q.PlatformFee), q.PlatformFee)
	})
}

func TestQuoteDates(t *testing.T) {
	q, err := QuoteDates(10, "2025-01-30", "2025-02-02")
	require.NoError(t, err)
	assert.Equal(t, 3, q.Days)
	assert.InDelta(t, 30.0, q.GrossTotal, 1e-9)

	q, err = QuoteDates(1, "1700-01-01", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 118704, q.Days)
	assert.InDelta(t, 118704.0, q.GrossTotal, 1e-9)

	_, err = QuoteDates(10, "2025-01-30", "02/02/2025")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid end date")
}

func TestQuoteForRequest(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		q, err := QuoteForRequest(12.5, day(1), day(3))
		require.NoError(t, err)
		assert.InDelta(t, 25.0, q.GrossTotal, 1e-9)
	})

	t.Run("Invalid range", func(t *testing.T) {
		q, err := QuoteForRequest(12.5, day(3), day(1))
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Zero(t, q.GrossTotal)
	})

	t.Run("Non-positive rate", func(t *testing.T) {
		_, err := QuoteForRequest(0, day(1), day(3))
		assert.ErrorIs(t, err, ErrInvalidRate)
	})
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$0.00", FormatMoney(-0.001))
	assert.Equal(t, "$1600.00", FormatMoney(1600))
	assert.Equal(t, "$0.13", FormatMoney(0.125))
}
