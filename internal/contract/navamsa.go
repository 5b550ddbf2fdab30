package contract

import (
	"github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/domain"
)

type NavamsaEntry struct {
	Longitude float64 `json:"longitude"`
	RasiIdx   int     `json:"rasi_idx"`
	Rasi      string  `json:"rasi"`
	Modality  string  `json:"modality"`
	SignIdx   int     `json:"navamsa_idx"`
	Sign      string  `json:"navamsa"`
}

func FromNavamsa(resp *app.NavamsaResponse) []NavamsaEntry {
	out := make([]NavamsaEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		out = append(out, NavamsaEntry{
			Longitude: e.Longitude,
			RasiIdx:   e.Rasi,
			Rasi:      domain.Rashis[e.Rasi].En,
			Modality:  string(e.Modality),
			SignIdx:   e.Sign,
			Sign:      domain.Rashis[e.Sign].En,
		})
	}
	return out
}
