package app

import (
	"time"

	"github.com/pariharam/jathagam/internal/domain"
)

type ChartRequest struct {
	Birth    time.Time
	Planets  map[domain.Planet]float64
	Lagna    *float64
	Ayanamsa string
	Now      *time.Time
	Depth    int
	// CutoffYears overrides the configured safety cutoff when set.
	CutoffYears *float64
}

func NewChartRequest(birth time.Time, planets map[domain.Planet]float64) ChartRequest {
	return ChartRequest{
		Birth:   birth,
		Planets: planets,
		Depth:   domain.MaxDashaDepth,
	}
}

type ChartMetadata struct {
	Type      string
	System    string
	Ayanamsa  string
	Precision string
}

type SignView struct {
	Index int
	Name  domain.Label
}

type NakshatraView struct {
	Index int
	Name  domain.Label
	Padam int
}

type NavamsaView struct {
	// Lagna is nil when no ascendant longitude was supplied; houses are
	// then left at zero.
	Lagna   *SignView
	Planets []domain.NavamsaPlacement
}

type ChartResponse struct {
	ID        string
	Metadata  ChartMetadata
	Lagna     *SignView
	MoonSign  SignView
	Nakshatra NakshatraView
	Planets   []domain.PlanetPosition
	Navamsa   NavamsaView
	Dasha     DashaResponse
}

type NavamsaRequest struct {
	Longitudes []float64
}

type NavamsaEntry struct {
	Longitude float64
	Rasi      int
	Sign      int
	Modality  domain.Modality
}

type NavamsaResponse struct {
	Entries []NavamsaEntry
}
