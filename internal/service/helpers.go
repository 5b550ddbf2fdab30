package service

import (
	"time"

	"github.com/pariharam/jathagam/internal/dasha"
	"github.com/pariharam/jathagam/internal/domain"
)

// Settings are the configured defaults applied when a request leaves a
// value unset.
type Settings struct {
	CutoffYears float64
	Depth       int
	Ayanamsa    string
	// Clock supplies the evaluation instant when a request has none.
	Clock func() time.Time
}

// DefaultSettings mirrors the builder defaults with a UTC wall clock.
func DefaultSettings() Settings {
	return Settings{
		CutoffYears: dasha.DefaultCutoffYears,
		Depth:       4,
		Ayanamsa:    "Lahiri",
		Clock:       func() time.Time { return time.Now().UTC() },
	}
}

func (s Settings) now(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

func (s Settings) dashaOptions(now time.Time, depth int, cutoff *float64) dasha.Options {
	return dasha.Options{
		Now:         now,
		Depth:       domain.IntOrDefault(depth, s.Depth),
		CutoffYears: domain.FloatFromPtrWithDefault(s.CutoffYears, cutoff),
	}
}
