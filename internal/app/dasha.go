package app

import (
	"time"

	"github.com/pariharam/jathagam/internal/domain"
)

type DashaRequest struct {
	Birth         time.Time
	MoonLongitude float64
	// Now is the evaluation instant; nil means the service clock.
	Now   *time.Time
	Depth int
	// CutoffYears overrides the configured safety cutoff when set.
	CutoffYears *float64
}

func NewDashaRequest(birth time.Time, moonLongitude float64) DashaRequest {
	return DashaRequest{
		Birth:         birth,
		MoonLongitude: moonLongitude,
		Depth:         domain.MaxDashaDepth,
	}
}

// DashaBalance is the dasha running at birth and how much of it remains.
type DashaBalance struct {
	Lord           domain.Planet
	Nakshatra      int
	RemainingFrac  float64
	RemainingYears float64
}

type DashaResponse struct {
	EvaluatedAt time.Time
	Balance     DashaBalance
	Mahadashas  []domain.Period
	// Current is the chain of current periods, Mahadasha first.
	Current []domain.Period
}
