package formatter

import (
	"fmt"

	"github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/domain"
	"github.com/pariharam/jathagam/internal/varga"
)

// FormatNavamsa renders one row per longitude with its rasi, the
// navamsa part inside the rasi and the resulting D9 sign.
func FormatNavamsa(resp *app.NavamsaResponse) string {
	headers := []string{"LONGITUDE", "RASI", "MODALITY", "PART", "NAVAMSA"}
	rows := make([][]string, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		rows = append(rows, []string{
			fmt.Sprintf("%.4f", e.Longitude),
			domain.Rashis[e.Rasi].En,
			ModalityBadge(e.Modality),
			fmt.Sprintf("%d/9", varga.NavamsaPart(e.Longitude)+1),
			Bold(domain.Rashis[e.Sign].En),
		})
	}
	return RenderTable(headers, rows, 0, 3)
}
