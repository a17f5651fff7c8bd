package interval

import (
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type calendarConfig struct {
	Practice string     `toml:"practice"`
	Window   Interval   `toml:"window"`
	Closures []Interval `toml:"closures"`
}

func TestTOMLRoundTrip(t *testing.T) {
	in := calendarConfig{
		Practice: "riverside",
		Window:   mustNew(t, date(2024, time.November, 1), date(2025, time.February, 28)),
		Closures: []Interval{
			mustNew(t, date(2024, time.December, 24), date(2024, time.December, 26)),
			mustNew(t, date(2025, time.January, 1), date(2025, time.January, 1)),
		},
	}

	data, err := toml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if !strings.Contains(string(data), "'2024-11-01/2025-02-28'") &&
		!strings.Contains(string(data), `"2024-11-01/2025-02-28"`) {
		t.Fatalf("expected window as a TOML string, got:\n%s", data)
	}

	var out calendarConfig
	if err := toml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if out.Window != in.Window {
		t.Fatalf("expected window %v, got %v", in.Window, out.Window)
	}
	if len(out.Closures) != 2 || out.Closures[0] != in.Closures[0] || out.Closures[1] != in.Closures[1] {
		t.Fatalf("expected closures %v, got %v", in.Closures, out.Closures)
	}
}

func TestTOMLDecodeDocument(t *testing.T) {
	doc := strings.Join([]string{
		`practice = "hillside"`,
		`window = "2024-03-01/2024-05-31"`,
		`closures = ["2024-04-01/2024-04-05"]`,
	}, "\n")

	var cfg calendarConfig
	if err := toml.Unmarshal([]byte(doc), &cfg); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	want := mustNew(t, date(2024, time.March, 1), date(2024, time.May, 31))
	if cfg.Window != want {
		t.Fatalf("expected window %v, got %v", want, cfg.Window)
	}
}

func TestTOMLRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"inverted", `window = "2024-05-31/2024-01-02"`},
		{"malformed", `window = "spring"`},
		{"empty", `window = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg calendarConfig
			if err := toml.Unmarshal([]byte(tt.doc), &cfg); err == nil {
				t.Fatalf("expected error for %q, got %v", tt.doc, cfg.Window)
			}
		})
	}
}
