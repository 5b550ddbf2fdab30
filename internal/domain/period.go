package domain

import "time"

// Period is one node of the dasha tree. Start and End are the clipped
// window; Children is empty at the deepest generated level.
type Period struct {
	Lord      Planet
	Level     DashaLevel
	Start     time.Time
	End       time.Time
	IsCurrent bool
	Children  []Period
}

// Duration returns the clipped length of the period.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Contains reports whether t falls in [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Years returns the clipped length expressed in dasha years.
func (p Period) Years() float64 {
	return p.Duration().Hours() / 24 / SolarYearDays
}
