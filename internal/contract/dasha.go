package contract

import (
	"github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/domain"
)

// DateLayout is the calendar-day resolution used on the wire.
const DateLayout = "2006-01-02"

type Sookshma struct {
	Planet    string `json:"planet"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsCurrent bool   `json:"is_current"`
}

type Pratyantardasha struct {
	Planet         string     `json:"planet"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	IsCurrent      bool       `json:"is_current"`
	SookshmaDashas []Sookshma `json:"sookshma_dashas"`
}

type Bhukti struct {
	Planet           string            `json:"planet"`
	StartDate        string            `json:"start_date"`
	EndDate          string            `json:"end_date"`
	IsCurrent        bool              `json:"is_current"`
	Pratyantardashas []Pratyantardasha `json:"pratyantardashas"`
}

type Mahadasha struct {
	Planet    string   `json:"planet"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	IsCurrent bool     `json:"is_current"`
	Bhuktis   []Bhukti `json:"bhuktis"`
}

type Balance struct {
	Planet         string  `json:"planet"`
	NakshatraIdx   int     `json:"nakshatra_idx"`
	RemainingFrac  float64 `json:"remaining_fraction"`
	RemainingYears float64 `json:"remaining_years"`
}

type Dasha struct {
	EvaluatedAt string      `json:"evaluated_at"`
	Balance     Balance     `json:"dasha_balance"`
	Mahadashas  []Mahadasha `json:"mahadashas"`
}

func FromBalance(b app.DashaBalance) Balance {
	return Balance{
		Planet:         string(b.Lord),
		NakshatraIdx:   b.Nakshatra,
		RemainingFrac:  b.RemainingFrac,
		RemainingYears: b.RemainingYears,
	}
}

// FromDasha maps a dasha response onto the wire shape.
func FromDasha(resp *app.DashaResponse) Dasha {
	return Dasha{
		EvaluatedAt: resp.EvaluatedAt.Format(DateLayout),
		Balance:     FromBalance(resp.Balance),
		Mahadashas:  FromPeriods(resp.Mahadashas),
	}
}

// FromPeriods converts a Mahadasha tree. Levels that were not generated
// serialize as empty lists, never null.
func FromPeriods(periods []domain.Period) []Mahadasha {
	out := make([]Mahadasha, 0, len(periods))
	for _, m := range periods {
		md := Mahadasha{
			Planet:    string(m.Lord),
			StartDate: m.Start.Format(DateLayout),
			EndDate:   m.End.Format(DateLayout),
			IsCurrent: m.IsCurrent,
			Bhuktis:   make([]Bhukti, 0, len(m.Children)),
		}
		for _, b := range m.Children {
			md.Bhuktis = append(md.Bhuktis, fromBhukti(b))
		}
		out = append(out, md)
	}
	return out
}

func fromBhukti(b domain.Period) Bhukti {
	bh := Bhukti{
		Planet:           string(b.Lord),
		StartDate:        b.Start.Format(DateLayout),
		EndDate:          b.End.Format(DateLayout),
		IsCurrent:        b.IsCurrent,
		Pratyantardashas: make([]Pratyantardasha, 0, len(b.Children)),
	}
	for _, p := range b.Children {
		pd := Pratyantardasha{
			Planet:         string(p.Lord),
			StartDate:      p.Start.Format(DateLayout),
			EndDate:        p.End.Format(DateLayout),
			IsCurrent:      p.IsCurrent,
			SookshmaDashas: make([]Sookshma, 0, len(p.Children)),
		}
		for _, s := range p.Children {
			pd.SookshmaDashas = append(pd.SookshmaDashas, Sookshma{
				Planet:    string(s.Lord),
				StartDate: s.Start.Format(DateLayout),
				EndDate:   s.End.Format(DateLayout),
				IsCurrent: s.IsCurrent,
			})
		}
		bh.Pratyantardashas = append(bh.Pratyantardashas, pd)
	}
	return bh
}
