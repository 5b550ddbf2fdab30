package domain

// DashaLevel identifies one of the four nested Vimshottari levels.
type DashaLevel int

const (
	LevelMahadasha DashaLevel = iota + 1
	LevelBhukti
	LevelPratyantardasha
	LevelSookshma
)

// MaxDashaDepth is the number of levels below and including Mahadasha.
const MaxDashaDepth = int(LevelSookshma)

func (l DashaLevel) String() string {
	switch l {
	case LevelMahadasha:
		return "mahadasha"
	case LevelBhukti:
		return "bhukti"
	case LevelPratyantardasha:
		return "pratyantardasha"
	case LevelSookshma:
		return "sookshma"
	default:
		return "unknown"
	}
}

// Modality is the modal class of a zodiac sign.
type Modality string

const (
	ModalityMovable Modality = "movable"
	ModalityFixed   Modality = "fixed"
	ModalityDual    Modality = "dual"
)

// Planet names the grahas reported in a chart. Ketu is never supplied by
// the ephemeris; it is derived from Rahu.
type Planet string

const (
	PlanetSun     Planet = "Sun"
	PlanetMoon    Planet = "Moon"
	PlanetMars    Planet = "Mars"
	PlanetMercury Planet = "Mercury"
	PlanetJupiter Planet = "Jupiter"
	PlanetVenus   Planet = "Venus"
	PlanetSaturn  Planet = "Saturn"
	PlanetRahu    Planet = "Rahu"
	PlanetKetu    Planet = "Ketu"
)

// InputPlanets is the canonical order in which ephemeris longitudes are
// read. Ketu follows Rahu in chart output.
var InputPlanets = []Planet{
	PlanetSun, PlanetMoon, PlanetMars, PlanetMercury,
	PlanetJupiter, PlanetVenus, PlanetSaturn, PlanetRahu,
}

// ValidInputPlanets is the set of planet names accepted from the ephemeris.
var ValidInputPlanets = map[string]bool{
	"Sun": true, "Moon": true, "Mars": true, "Mercury": true,
	"Jupiter": true, "Venus": true, "Saturn": true, "Rahu": true,
}
