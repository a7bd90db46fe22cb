package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tigerrentals-client/internal/domain"
	"tigerrentals-client/internal/pricing"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseDay accepts yyyy-mm-dd or a full ISO-8601 timestamp
func parseDay(s string) (time.Time, error) {
	if d, err := pricing.ParseDate(s); err == nil {
		return d.Time(), nil
	}
	ts, err := domain.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", s)
	}
	return ts.Time, nil
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	s, err := parseDay(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := parseDay(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}

// parseCondition matches a condition name case-insensitively. Unknown names
// pass through so validation can report them.
func parseCondition(s string) domain.Condition {
	for _, c := range []domain.Condition{domain.ConditionExcellent, domain.ConditionGood, domain.ConditionFair} {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return domain.Condition(s)
}
