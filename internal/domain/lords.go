package domain

// Lord is one of the nine Vimshottari dasha rulers.
type Lord struct {
	Name  Planet
	Years float64
}

// CycleYears is the length of a full Vimshottari cycle.
const CycleYears = 120.0

// SolarYearDays is the mean Gregorian year used to convert dasha years to days.
const SolarYearDays = 365.2425

// Lords is the lordship cycle in canonical order. It is never written to.
var Lords = [9]Lord{
	{Name: PlanetKetu, Years: 7},
	{Name: PlanetVenus, Years: 20},
	{Name: PlanetSun, Years: 6},
	{Name: PlanetMoon, Years: 10},
	{Name: PlanetMars, Years: 7},
	{Name: PlanetRahu, Years: 18},
	{Name: PlanetJupiter, Years: 16},
	{Name: PlanetSaturn, Years: 19},
	{Name: PlanetMercury, Years: 17},
}

// LordAt returns the lord at position i of the cycle, wrapping around.
func LordAt(i int) Lord {
	return Lords[((i%len(Lords))+len(Lords))%len(Lords)]
}

// LordIndex returns the cycle position of the named lord, or -1.
func LordIndex(name Planet) int {
	for i, l := range Lords {
		if l.Name == name {
			return i
		}
	}
	return -1
}
