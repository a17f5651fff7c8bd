package interval

import (
	"fmt"
	"time"
)

// dateLayout is the calendar-date form used in every textual encoding.
const dateLayout = "2006-01-02"

// Interval is a closed range of calendar dates: both Start and End
// belong to the range. It expresses scheduling windows such as the
// yearly period in which a visit type may be booked, or an operating
// window running from day 16 of one month through day 15 of the next.
//
// Interval is an immutable value. It is constructed only by [New] and
// [NewAnnual] (and the decoding entry points, which route through
// New), so start <= end holds for every constructed value. Bounds are
// stored as midnight UTC, which makes equal intervals == to each other
// and usable as map keys.
type Interval struct {
	start time.Time
	end   time.Time
}

// New returns the Interval [start, end]. Each input is reduced to its
// calendar date, the year, month and day it shows in its own location;
// clock time, zone and monotonic reading are discarded.
//
// New returns [ErrMissingDate] when either input is the zero time, and
// [ErrInvalidRange] when start falls after end. Missing inputs are
// reported before range validation.
func New(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, fmt.Errorf("%w: start and end are required", ErrMissingDate)
	}
	s, e := toDate(start), toDate(end)
	if s.After(e) {
		return Interval{}, fmt.Errorf("%w: %s after %s",
			ErrInvalidRange, s.Format(dateLayout), e.Format(dateLayout))
	}
	return Interval{start: s, end: e}, nil
}

// NewAnnual resolves a yearly recurring window, defined by month and
// day alone, to the concrete Interval for the given year. The start
// month-day is anchored at year. The end month-day is anchored at year
// when it falls on or after the start within one calendar year, and at
// year+1 otherwise, so windows such as November 1 through February 28
// wrap into the following year. This is the only place wrap-around is
// computed; callers never anchor the bounds themselves.
//
// NewAnnual returns [ErrMissingDate] for zero month-days,
// [ErrInvalidMonthDay] for month-days that name no real calendar date,
// and otherwise whatever [New] returns for the anchored bounds.
func NewAnnual(start, end MonthDay, year int) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, fmt.Errorf("%w: start and end month-days are required", ErrMissingDate)
	}
	if err := start.validate(); err != nil {
		return Interval{}, err
	}
	if err := end.validate(); err != nil {
		return Interval{}, err
	}
	endYear := year
	if end.before(start) {
		endYear++
	}
	return New(start.atYear(year), end.atYear(endYear))
}

// Start returns the first date of the interval, at midnight UTC.
func (i Interval) Start() time.Time {
	return i.start
}

// End returns the last date of the interval, at midnight UTC.
func (i Interval) End() time.Time {
	return i.end
}

// IsZero reports whether i is the zero Interval. The zero Interval
// represents the absence of a window; constructed intervals are never
// zero.
func (i Interval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

// Contains reports whether the calendar date of t falls within the
// interval. Both bounds are included: Contains(i.Start()) and
// Contains(i.End()) are true. The clock time and zone of t play no
// part beyond selecting its calendar date.
func (i Interval) Contains(t time.Time) bool {
	d := toDate(t)
	return !d.Before(i.start) && !d.After(i.end)
}

// Overlaps reports whether i and o share at least one date. A single
// shared boundary date counts: [Jan 1, Jan 5] overlaps [Jan 5, Jan 10].
// Overlaps is symmetric.
func (i Interval) Overlaps(o Interval) bool {
	return !o.end.Before(i.start) && !o.start.After(i.end)
}

// Intersect returns the sub-range shared by i and o. The boolean is
// false, with the zero Interval, when the two do not overlap. A
// returned interval always upholds start <= end.
func (i Interval) Intersect(o Interval) (Interval, bool) {
	if !i.Overlaps(o) {
		return Interval{}, false
	}
	s, e := i.start, i.end
	if o.start.After(s) {
		s = o.start
	}
	if o.end.Before(e) {
		e = o.end
	}
	return Interval{start: s, end: e}, true
}

// Days returns the number of calendar days the interval spans,
// counting both endpoints: a single-day interval spans 1 day, never 0.
func (i Interval) Days() int {
	return int(i.end.Sub(i.start)/(24*time.Hour)) + 1
}

// Equal reports whether i and o share both bounds. Bounds are
// normalized at construction, so == is equivalent for constructed
// values.
func (i Interval) Equal(o Interval) bool {
	return i.start.Equal(o.start) && i.end.Equal(o.end)
}

// Compare orders intervals by start date and returns -1, 0 or +1.
// Intervals sharing a start are ordered by end, making Compare a total
// order suitable for sorting.
func (i Interval) Compare(o Interval) int {
	if c := i.start.Compare(o.start); c != 0 {
		return c
	}
	return i.end.Compare(o.end)
}

// toDate reduces t to its calendar date: midnight UTC of the year,
// month and day t shows in its own location. The result is canonical,
// so dates can be compared with == and used as map keys.
func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
