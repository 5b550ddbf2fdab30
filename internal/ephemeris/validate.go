package ephemeris

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pariharam/jathagam/internal/domain"
)

// BirthLayouts are the accepted birth timestamp formats, tried in order.
// Layouts without an offset are read in the file's timezone.
var BirthLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ValidatePositions checks a positions file before conversion.
// Returns a slice of all validation errors found.
func ValidatePositions(f *PositionsFile) []error {
	var errs []error

	if f.Birth == "" {
		errs = append(errs, fmt.Errorf("birth is required"))
	} else if _, err := ParseBirth(f.Birth, f.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("birth: %w", err))
	}

	if f.Lagna != nil && !finite(*f.Lagna) {
		errs = append(errs, fmt.Errorf("lagna: longitude %v is not finite", *f.Lagna))
	}

	if _, ok := f.Planets[string(domain.PlanetMoon)]; !ok {
		errs = append(errs, fmt.Errorf("planets.Moon is required"))
	}

	names := make([]string, 0, len(f.Planets))
	for name := range f.Planets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !domain.ValidInputPlanets[name] {
			errs = append(errs, fmt.Errorf("planets.%s: unknown planet (Ketu is derived from Rahu)", name))
			continue
		}
		if lon := f.Planets[name]; !finite(lon) {
			errs = append(errs, fmt.Errorf("planets.%s: longitude %v is not finite", name, lon))
		}
	}

	return errs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseBirth parses a birth timestamp in one of BirthLayouts, reading
// offset-less values in the named IANA timezone (UTC when empty).
func ParseBirth(value, timezone string) (time.Time, error) {
	loc := time.UTC
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("unknown timezone %q", timezone)
		}
		loc = l
	}
	for _, layout := range BirthLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (expected RFC 3339 or YYYY-MM-DD HH:MM)", value)
}
