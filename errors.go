package interval

import "errors"

// Construction errors, checked with errors.Is. Decoding can also
// return plain format errors for text that does not parse at all.
// Queries on a constructed Interval never fail.
var (
	// ErrMissingDate is returned when a required date input is absent:
	// the zero time.Time, the zero MonthDay, or an empty date in a
	// decoded form.
	ErrMissingDate = errors.New("interval: missing date")

	// ErrInvalidRange is returned when a start date falls after its end
	// date.
	ErrInvalidRange = errors.New("interval: start after end")

	// ErrInvalidMonthDay is returned when a MonthDay does not name a
	// real calendar month and day.
	ErrInvalidMonthDay = errors.New("interval: invalid month-day")
)
