// Package interval provides an immutable, comparable calendar-date
// interval for visit scheduling.
//
// An [Interval] is a closed range of dates: both bounds belong to the
// range. Scheduling systems use it to express the yearly window in
// which a visit type may be booked, and administrative operating
// windows that span month boundaries (day 16 of one month through day
// 15 of the next). Availability lists, exclusion-date sets and
// visit-history stores all share this one type instead of each
// carrying its own range arithmetic.
//
// # Basic Usage
//
//	window, err := interval.New(
//		time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
//		time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
//	)
//	if err != nil {
//		// fail: inverted or missing bounds
//	}
//	if window.Contains(visit) {
//		// visit falls inside the window
//	}
//
// Inputs carry only calendar information: the clock time and zone of a
// time.Time are discarded, keeping each bound at midnight UTC.
//
// # Recurring Annual Windows
//
// Windows defined by month and day alone resolve against a concrete
// year with [NewAnnual]. When the end month-day precedes the start
// month-day, the window wraps into the following year:
//
//	w, err := interval.NewAnnual(
//		interval.MonthDay{Month: time.November, Day: 1},
//		interval.MonthDay{Month: time.February, Day: 28},
//		2024,
//	)
//	// w is [2024-11-01, 2025-02-28]
//
// # Validation
//
// Intervals exist only through [New] and [NewAnnual]; the decoding
// entry points route through New as well. Absent inputs fail with
// [ErrMissingDate] and inverted bounds with [ErrInvalidRange], checked
// with errors.Is, so no reachable value violates start <= end.
//
// # Encodings
//
// The canonical text form is "2006-01-02/2006-01-02". [Interval]
// implements encoding.TextMarshaler and TextUnmarshaler (which TOML
// encoders such as go-toml pick up), JSON marshaling as a
// {"start","end"} object, YAML marshaling as the text scalar, BSON
// value marshaling for MongoDB-backed stores, and Set/Type/String for
// standard library flag and spf13/pflag bindings. Every decode path
// re-runs construction validation.
//
// # Concurrency
//
// Interval is an immutable value: no operation mutates a constructed
// interval, and values may be shared across goroutines without
// synchronization.
package interval
