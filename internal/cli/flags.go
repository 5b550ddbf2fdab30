package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pariharam/jathagam/internal/cli/formatter"
	"github.com/pariharam/jathagam/internal/config"
	"github.com/pariharam/jathagam/internal/ephemeris"
	"github.com/spf13/pflag"
)

// evalFlags are the flags shared by every command that builds a dasha
// tree.
type evalFlags struct {
	now         string
	depth       int
	cutoff      float64
	all         bool
	currentOnly bool
	asJSON      bool
}

func (f *evalFlags) register(fs *pflag.FlagSet, cfg config.Config) {
	fs.StringVar(&f.now, "now", "", "Evaluation instant (YYYY-MM-DD or birth layouts); defaults to the current time")
	fs.IntVar(&f.depth, "depth", cfg.Depth, "Dasha levels to generate, 1 (Mahadasha) to 4 (Sookshma)")
	fs.Float64Var(&f.cutoff, "cutoff", cfg.CutoffYears, "Stop after the Mahadasha crossing this many years; 0 disables")
	fs.BoolVar(&f.all, "all", false, "Expand every branch of the dasha tree")
	fs.BoolVar(&f.currentOnly, "current", false, "Print only the running dasha chain")
	fs.BoolVar(&f.asJSON, "json", false, "Emit JSON instead of formatted text")
}

// evaluation returns the request overrides for the parsed flags. The
// cutoff is always forwarded so the configured default applies.
func (f *evalFlags) evaluation(timezone string) (*time.Time, *float64, error) {
	var now *time.Time
	if f.now != "" {
		t, err := parseInstant(f.now, timezone)
		if err != nil {
			return nil, nil, fmt.Errorf("--now: %w", err)
		}
		now = &t
	}
	cutoff := f.cutoff
	return now, &cutoff, nil
}

func (f *evalFlags) view() formatter.DashaView {
	return formatter.DashaView{All: f.all, CurrentOnly: f.currentOnly}
}

// parseInstant accepts a bare date or any birth layout.
func parseInstant(value, timezone string) (time.Time, error) {
	if t, err := ephemeris.ParseBirth(value, timezone); err == nil {
		return t, nil
	}
	loc := time.UTC
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("unknown timezone %q", timezone)
		}
		loc = l
	}
	t, err := time.ParseInLocation(formatter.DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse %q as a date or timestamp", value)
	}
	return t, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
