package interval

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// String returns the canonical text form "2006-01-02/2006-01-02".
func (i Interval) String() string {
	return i.start.Format(dateLayout) + "/" + i.end.Format(dateLayout)
}

// MarshalText encodes the interval in its canonical text form. The
// text form is what TOML encoders and flag bindings see as well.
func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses "start/end" with both dates in the form
// 2006-01-02. Decoding re-runs the validation [New] applies, so a
// stored or configured interval can never violate start <= end.
func (i *Interval) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		return fmt.Errorf("%w: empty interval", ErrMissingDate)
	}
	first, second, ok := strings.Cut(s, "/")
	if !ok {
		return fmt.Errorf("interval: malformed %q: want start/end", s)
	}
	start, err := parseDate(first)
	if err != nil {
		return err
	}
	end, err := parseDate(second)
	if err != nil {
		return err
	}
	parsed, err := New(start, end)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// intervalJSON is the JSON shape: the two bounding dates as ISO
// calendar date strings.
type intervalJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MarshalJSON encodes the interval as {"start":"2006-01-02",
// "end":"2006-01-02"}.
func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{
		Start: i.start.Format(dateLayout),
		End:   i.end.Format(dateLayout),
	})
}

// UnmarshalJSON decodes the object form produced by MarshalJSON,
// re-running the validation [New] applies. Null intervals and missing,
// empty or null dates are rejected with [ErrMissingDate].
func (i *Interval) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return fmt.Errorf("%w: null interval", ErrMissingDate)
	}
	var w intervalJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("interval: %w", err)
	}
	start, err := parseDate(w.Start)
	if err != nil {
		return err
	}
	end, err := parseDate(w.End)
	if err != nil {
		return err
	}
	parsed, err := New(start, end)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Set parses s in the canonical text form. With String and Type it
// satisfies the flag.Value and spf13/pflag Value interfaces, so
// consuming programs can bind an Interval directly to a command-line
// flag.
func (i *Interval) Set(s string) error {
	return i.UnmarshalText([]byte(s))
}

// Type names the flag value in pflag help output.
func (i Interval) Type() string {
	return "interval"
}

// parseDate parses a single ISO calendar date.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrMissingDate)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("interval: invalid date %q: want %s", s, dateLayout)
	}
	return t, nil
}
