package ephemeris

import (
	"errors"
	"fmt"
	"time"

	"github.com/pariharam/jathagam/internal/domain"
)

// Birth holds converted positions ready for chart assembly.
type Birth struct {
	Time     time.Time
	Ayanamsa string
	Lagna    *float64
	Planets  map[domain.Planet]float64
}

// MoonLongitude returns the Moon's longitude. Convert guarantees presence.
func (b *Birth) MoonLongitude() float64 {
	return b.Planets[domain.PlanetMoon]
}

// Convert validates f and transforms it into a Birth. All validation
// problems are reported together.
func Convert(f *PositionsFile) (*Birth, error) {
	if errs := ValidatePositions(f); len(errs) > 0 {
		return nil, fmt.Errorf("invalid positions: %w", errors.Join(errs...))
	}

	t, err := ParseBirth(f.Birth, f.Timezone)
	if err != nil {
		return nil, fmt.Errorf("parsing birth: %w", err)
	}

	planets := make(map[domain.Planet]float64, len(f.Planets))
	for name, lon := range f.Planets {
		planets[domain.Planet(name)] = lon
	}

	return &Birth{
		Time:     t,
		Ayanamsa: f.Ayanamsa,
		Lagna:    f.Lagna,
		Planets:  planets,
	}, nil
}
