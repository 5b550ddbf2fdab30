package domain

// PlanetPosition is a planet's sidereal placement in the rasi chart.
type PlanetPosition struct {
	Planet    Planet
	Longitude float64
	Rasi      int
	Degrees   float64
}

// NavamsaPlacement is a planet's sign and house in the D9 chart. House is
// counted from the navamsa lagna, 1..12.
type NavamsaPlacement struct {
	Planet Planet
	Sign   int
	House  int
}

// NakshatraPosition describes the Moon's lunar mansion at birth.
type NakshatraPosition struct {
	Index int
	Padam int
}

// Name returns the nakshatra labels.
func (n NakshatraPosition) Name() Label {
	return Nakshatras[n.Index]
}
