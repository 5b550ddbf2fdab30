package formatter

import (
	"fmt"
	"strings"

	"github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/domain"
)

// FormatChart formats a full birth chart: a summary box, the rasi and
// navamsa placements, the Mahadasha timeline and the current chain.
func FormatChart(resp *app.ChartResponse, view DashaView) string {
	var b strings.Builder

	b.WriteString(RenderBox("Jathagam", chartSummary(resp)))
	b.WriteString("\n\n")

	b.WriteString(Header("Grahas"))
	b.WriteString("\n")
	b.WriteString(planetTable(resp))
	b.WriteString("\n")

	b.WriteString(Header("Mahadashas"))
	b.WriteString("\n")
	if view.All {
		b.WriteString(RenderTree(DashaTreeItems(resp.Dasha.Mahadashas, resp.Dasha.EvaluatedAt, true)))
	} else {
		b.WriteString(mahadashaTable(resp.Dasha))
	}
	b.WriteString("\n")

	b.WriteString(FormatCurrent(resp.Dasha.Current, resp.Dasha.EvaluatedAt))
	b.WriteString("\n")
	return b.String()
}

func chartSummary(resp *app.ChartResponse) string {
	lagna := Dim("not given")
	if resp.Lagna != nil {
		lagna = SignName(resp.Lagna.Name)
	}
	navLagna := Dim("not given")
	if resp.Navamsa.Lagna != nil {
		navLagna = SignName(resp.Navamsa.Lagna.Name)
	}

	rows := [][2]string{
		{"Lagna", lagna},
		{"Navamsa lagna", navLagna},
		{"Moon sign", SignName(resp.MoonSign.Name)},
		{"Nakshatra", fmt.Sprintf("%s, padam %d", SignName(resp.Nakshatra.Name), resp.Nakshatra.Padam)},
		{"Ayanamsa", resp.Metadata.Ayanamsa},
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Dim(fmt.Sprintf("%-14s", r[0])) + r[1])
	}
	b.WriteString("\n\n")
	b.WriteString(FormatBalance(resp.Dasha.Balance))
	return b.String()
}

func planetTable(resp *app.ChartResponse) string {
	nav := make(map[domain.Planet]domain.NavamsaPlacement, len(resp.Navamsa.Planets))
	for _, np := range resp.Navamsa.Planets {
		nav[np.Planet] = np
	}

	headers := []string{"GRAHA", "RASI", "DEGREES", "LONGITUDE", "NAVAMSA", "D9 HOUSE"}
	rows := make([][]string, 0, len(resp.Planets))
	for _, p := range resp.Planets {
		np := nav[p.Planet]
		house := Dim("--")
		if np.House > 0 {
			house = fmt.Sprintf("%d", np.House)
		}
		rows = append(rows, []string{
			PlanetColor(p.Planet).Render(string(p.Planet)),
			domain.Rashis[p.Rasi].En,
			Degrees(p.Degrees),
			fmt.Sprintf("%.2f", p.Longitude),
			domain.Rashis[np.Sign].En,
			house,
		})
	}
	return RenderTable(headers, rows, 2, 3, 5)
}

func mahadashaTable(resp app.DashaResponse) string {
	headers := []string{"LORD", "START", "END", "YEARS"}
	rows := make([][]string, 0, len(resp.Mahadashas))
	for i := range resp.Mahadashas {
		p := &resp.Mahadashas[i]
		lord := string(p.Lord)
		switch periodStatus(p, resp.EvaluatedAt) {
		case TreeStatusCurrent:
			lord = StyleYellowBold.Render("▶ " + lord)
		case TreeStatusPast:
			lord = Dim(lord)
		default:
			lord = "  " + lord
		}
		rows = append(rows, []string{
			lord,
			p.Start.Format(DateLayout),
			p.End.Format(DateLayout),
			fmt.Sprintf("%.2f", p.Years()),
		})
	}
	return RenderTable(headers, rows, 3)
}
