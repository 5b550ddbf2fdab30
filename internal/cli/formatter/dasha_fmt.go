package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/domain"
)

// DashaView controls how much of the dasha tree is printed.
type DashaView struct {
	// All expands every branch. By default only the current chain is
	// opened below the Mahadasha list.
	All bool
	// CurrentOnly prints the running chain and nothing else.
	CurrentOnly bool
}

const progressWidth = 12

var levelTitles = map[domain.DashaLevel]string{
	domain.LevelMahadasha:       "Mahadasha",
	domain.LevelBhukti:          "Bhukti",
	domain.LevelPratyantardasha: "Pratyantara",
	domain.LevelSookshma:        "Sookshma",
}

// LevelTitle returns the display name of a dasha level.
func LevelTitle(l domain.DashaLevel) string {
	if t, ok := levelTitles[l]; ok {
		return t
	}
	return l.String()
}

// FormatDasha formats a DashaResponse as a balance line, the period tree
// and the current chain.
func FormatDasha(resp *app.DashaResponse, view DashaView) string {
	var b strings.Builder

	if !view.CurrentOnly {
		b.WriteString(Header("Vimshottari Dasha"))
		b.WriteString("\n\n")
		b.WriteString(FormatBalance(resp.Balance))
		b.WriteString("\n\n")
		b.WriteString(RenderTree(DashaTreeItems(resp.Mahadashas, resp.EvaluatedAt, view.All)))
		b.WriteString("\n")
	}

	b.WriteString(FormatCurrent(resp.Current, resp.EvaluatedAt))
	b.WriteString("\n")
	return b.String()
}

// FormatBalance renders the dasha running at birth.
func FormatBalance(bal app.DashaBalance) string {
	var full float64
	if i := domain.LordIndex(bal.Lord); i >= 0 {
		full = domain.Lords[i].Years
	}
	return fmt.Sprintf("%s %s %s %s %s",
		Dim("Birth balance:"),
		PlanetColor(bal.Lord).Render(string(bal.Lord)),
		FormatYears(bal.RemainingYears),
		Dim(fmt.Sprintf("of %gy remaining ·", full)),
		domain.Nakshatras[bal.Nakshatra].En,
	)
}

// FormatCurrent renders the chain of periods running at now.
func FormatCurrent(chain []domain.Period, now time.Time) string {
	stamp := Dim(fmt.Sprintf("Current at %s:", now.Format(DateLayout)))
	if len(chain) == 0 {
		return stamp + " " + Dim("outside the dasha timeline")
	}

	lords := make([]string, len(chain))
	for i, p := range chain {
		lords[i] = PlanetColor(p.Lord).Render(string(p.Lord))
	}

	var b strings.Builder
	b.WriteString(stamp + " " + strings.Join(lords, Dim(" › ")))
	for _, p := range chain {
		b.WriteString(fmt.Sprintf("\n  %-12s %-8s %s  %s %s",
			LevelTitle(p.Level),
			string(p.Lord),
			RenderProgress(Elapsed(p, now), progressWidth),
			Dim("ends "+p.End.Format(DateLayout)),
			Dim("("+RelativeFrom(p.End, now)+")"),
		))
	}
	return b.String()
}

// DashaTreeItems flattens periods into tree rows. Children are emitted for
// current periods, or for every period when all is set.
func DashaTreeItems(periods []domain.Period, now time.Time, all bool) []TreeItem {
	var items []TreeItem
	var walk func(ps []domain.Period, depth int, open []bool)
	walk = func(ps []domain.Period, depth int, open []bool) {
		for i := range ps {
			p := &ps[i]
			last := i == len(ps)-1
			items = append(items, TreeItem{
				Title:  string(p.Lord) + " " + LevelTitle(p.Level),
				Level:  depth,
				IsLast: last,
				Open:   open,
				Status: periodStatus(p, now),
				Detail: DateSpan(p.Start, p.End),
			})
			if len(p.Children) > 0 && (all || p.IsCurrent) {
				next := append(append([]bool(nil), open...), !last)
				walk(p.Children, depth+1, next)
			}
		}
	}
	walk(periods, 1, nil)
	return items
}

func periodStatus(p *domain.Period, now time.Time) string {
	switch {
	case p.IsCurrent:
		return TreeStatusCurrent
	case !p.End.After(now):
		return TreeStatusPast
	default:
		return ""
	}
}
