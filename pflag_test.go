package interval

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*Interval)(nil)

func TestPFlagVar(t *testing.T) {
	fs := pflag.NewFlagSet("visits", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var window Interval
	fs.Var(&window, "window", "operating window as start/end dates")

	if err := fs.Parse([]string{"--window=2024-11-01/2025-02-28"}); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := mustNew(t, date(2024, time.November, 1), date(2025, time.February, 28))
	if window != want {
		t.Fatalf("expected %v from flag, got %v", want, window)
	}

	if err := fs.Parse([]string{"--window=2024-05-31/2024-01-02"}); err == nil {
		t.Fatal("expected error for inverted flag value")
	}
}

func TestPFlagUsageType(t *testing.T) {
	fs := pflag.NewFlagSet("visits", pflag.ContinueOnError)

	var window Interval
	fs.Var(&window, "window", "operating window as start/end dates")

	if !strings.Contains(fs.FlagUsages(), "--window interval") {
		t.Fatalf("expected usage to show the interval type, got:\n%s", fs.FlagUsages())
	}
}
