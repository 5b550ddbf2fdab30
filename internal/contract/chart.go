// Package contract defines the JSON wire shape of computed charts. Field
// names follow the established horoscope payload so existing consumers
// keep working.
package contract

import (
	"github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/domain"
)

type Metadata struct {
	Type      string `json:"type"`
	System    string `json:"system"`
	Ayanamsa  string `json:"ayanamsa"`
	Precision string `json:"precision"`
}

type Sign struct {
	Idx    int    `json:"idx"`
	Name   string `json:"name"`
	NameTa string `json:"name_ta"`
}

type Nakshatra struct {
	Name   string `json:"name"`
	NameTa string `json:"name_ta"`
	Idx    int    `json:"idx"`
	Padam  int    `json:"padam"`
}

type Planet struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	RasiIdx   int     `json:"rasi_idx"`
	Degrees   float64 `json:"degrees"`
}

type NavamsaPlanet struct {
	Planet  string `json:"planet"`
	RasiIdx int    `json:"rasi_idx"`
	Sign    string `json:"sign"`
	House   int    `json:"house,omitempty"`
}

type NavamsaLagna struct {
	RasiIdx int    `json:"rasi_idx"`
	Sign    string `json:"sign"`
	House   int    `json:"house"`
}

type NavamsaChart struct {
	Lagna   *NavamsaLagna   `json:"lagna,omitempty"`
	Planets []NavamsaPlanet `json:"planets"`
}

type Prediction struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Chart struct {
	ID           string       `json:"id"`
	Metadata     Metadata     `json:"metadata"`
	Lagna        *Sign        `json:"lagna,omitempty"`
	NavamsaChart NavamsaChart `json:"navamsa_chart"`
	MoonSign     Sign         `json:"moon_sign"`
	Nakshatra    Nakshatra    `json:"nakshatra"`
	Planets      []Planet     `json:"planets"`
	Balance      Balance      `json:"dasha_balance"`
	Mahadashas   []Mahadasha  `json:"mahadashas"`
	// Predictions is always present, empty until an interpreter fills it.
	Predictions []Prediction `json:"predictions"`
}

func sign(v app.SignView) Sign {
	return Sign{Idx: v.Index, Name: v.Name.En, NameTa: v.Name.Ta}
}

// FromChart maps a computed chart onto the wire shape.
func FromChart(resp *app.ChartResponse) Chart {
	c := Chart{
		ID: resp.ID,
		Metadata: Metadata{
			Type:      resp.Metadata.Type,
			System:    resp.Metadata.System,
			Ayanamsa:  resp.Metadata.Ayanamsa,
			Precision: resp.Metadata.Precision,
		},
		MoonSign: sign(resp.MoonSign),
		Nakshatra: Nakshatra{
			Name:   resp.Nakshatra.Name.En,
			NameTa: resp.Nakshatra.Name.Ta,
			Idx:    resp.Nakshatra.Index,
			Padam:  resp.Nakshatra.Padam,
		},
		Planets:     make([]Planet, 0, len(resp.Planets)),
		Balance:     FromBalance(resp.Dasha.Balance),
		Mahadashas:  FromPeriods(resp.Dasha.Mahadashas),
		Predictions: []Prediction{},
	}
	if resp.Lagna != nil {
		l := sign(*resp.Lagna)
		c.Lagna = &l
	}
	for _, p := range resp.Planets {
		c.Planets = append(c.Planets, Planet{
			Name:      string(p.Planet),
			Longitude: p.Longitude,
			RasiIdx:   p.Rasi,
			Degrees:   p.Degrees,
		})
	}

	if resp.Navamsa.Lagna != nil {
		c.NavamsaChart.Lagna = &NavamsaLagna{
			RasiIdx: resp.Navamsa.Lagna.Index,
			Sign:    resp.Navamsa.Lagna.Name.En,
			House:   1,
		}
	}
	c.NavamsaChart.Planets = make([]NavamsaPlanet, 0, len(resp.Navamsa.Planets))
	for _, np := range resp.Navamsa.Planets {
		c.NavamsaChart.Planets = append(c.NavamsaChart.Planets, NavamsaPlanet{
			Planet:  string(np.Planet),
			RasiIdx: np.Sign,
			Sign:    domain.Rashis[np.Sign].En,
			House:   np.House,
		})
	}
	return c
}
