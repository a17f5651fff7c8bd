package interval

import (
	"fmt"
	"time"
)

// MonthDay is a calendar date without a year, such as November 1. It
// names the bounds of recurring annual windows resolved by [NewAnnual].
// The zero MonthDay is treated as an absent input.
type MonthDay struct {
	Month time.Month
	Day   int
}

// String returns the month-day in the form "November 1".
func (md MonthDay) String() string {
	return fmt.Sprintf("%s %d", md.Month, md.Day)
}

// IsZero reports whether md is the zero MonthDay.
func (md MonthDay) IsZero() bool {
	return md.Month == 0 && md.Day == 0
}

// validate checks that md names a real month and day. February 29 is
// accepted: it exists in leap years and atYear clamps it otherwise.
func (md MonthDay) validate() error {
	if md.Month < time.January || md.Month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidMonthDay, int(md.Month))
	}
	if md.Day < 1 || md.Day > maxDayOfMonth(md.Month) {
		return fmt.Errorf("%w: %s", ErrInvalidMonthDay, md)
	}
	return nil
}

// before reports whether md falls before other within one calendar
// year.
func (md MonthDay) before(other MonthDay) bool {
	if md.Month != other.Month {
		return md.Month < other.Month
	}
	return md.Day < other.Day
}

// atYear anchors md to the given year as a midnight-UTC date.
// February 29 is clamped to February 28 in non-leap years so a window
// bound at the end of February never rolls into March.
func (md MonthDay) atYear(year int) time.Time {
	day := md.Day
	if md.Month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, md.Month, day, 0, 0, 0, 0, time.UTC)
}

// maxDayOfMonth returns the greatest day the month carries in any
// year, so February is 29.
func maxDayOfMonth(m time.Month) int {
	switch m {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		return 29
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
