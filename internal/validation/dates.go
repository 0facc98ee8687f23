// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package validation

import (
	"math"
	"regexp"
	"time"

	"github.com/tomtom215/nasa-explorer/internal/models"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// MaxDateRangeDays is the widest NEO feed window NASA serves.
const MaxDateRangeDays = 7

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate reports whether s is YYYY-MM-DD and names a real calendar day.
// time.Parse rejects out-of-range days such as 2024-02-30.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateLayout) == s
}

// DaysBetween returns ceil(|b-a| / 24h) for two valid dates.
func DaysBetween(a, b string) (int, error) {
	if !IsValidDate(a) || !IsValidDate(b) {
		return 0, models.NewValidationError(models.CodeInvalidDateFormat, models.MsgInvalidDateFormat)
	}
	ta, _ := time.Parse(DateLayout, a)
	tb, _ := time.Parse(DateLayout, b)

	diff := tb.Sub(ta)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24)), nil
}

// CheckDateRange fails with DATE_RANGE_EXCEEDED when the dates are more than
// MaxDateRangeDays apart. The order of a and b does not matter.
func CheckDateRange(a, b string) error {
	days, err := DaysBetween(a, b)
	if err != nil {
		return err
	}
	if days > MaxDateRangeDays {
		return models.NewValidationError(models.CodeDateRangeExceeded, models.MsgDateRangeExceeded)
	}
	return nil
}
