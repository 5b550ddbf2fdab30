package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pariharam/jathagam/internal/domain"
)

// DateLayout is the calendar layout used for every period boundary.
const DateLayout = "2006-01-02"

const daysPerMonth = domain.SolarYearDays / 12

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// DateSpan renders a period window as "2006-01-02 → 2012-03-09".
func DateSpan(start, end time.Time) string {
	return start.Format(DateLayout) + " → " + end.Format(DateLayout)
}

// FormatYears renders a length in dasha years as years, months and days,
// e.g. "6y 1m 15d". Zero components are omitted except for a zero total.
func FormatYears(years float64) string {
	if years <= 0 || math.IsNaN(years) {
		return "0d"
	}

	days := math.Round(years * domain.SolarYearDays)
	y := math.Floor(days / domain.SolarYearDays)
	days -= y * domain.SolarYearDays
	m := math.Floor(days / daysPerMonth)
	days -= m * daysPerMonth
	d := math.Round(days)
	if d >= math.Round(daysPerMonth) {
		m++
		d = 0
	}
	if m >= 12 {
		y++
		m -= 12
	}

	var parts []string
	if y > 0 {
		parts = append(parts, fmt.Sprintf("%dy", int(y)))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", int(m)))
	}
	if d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", int(d)))
	}
	if len(parts) == 0 {
		return "0d"
	}
	return strings.Join(parts, " ")
}

// RelativeFrom describes where t sits relative to now in whole years,
// months or days, e.g. "in 3y 2m" or "4m ago".
func RelativeFrom(t, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "today"
	case days > 0:
		return "in " + coarseSpan(float64(days))
	default:
		return coarseSpan(float64(-days)) + " ago"
	}
}

func coarseSpan(days float64) string {
	y := int(days / domain.SolarYearDays)
	rem := days - float64(y)*domain.SolarYearDays
	m := int(rem / daysPerMonth)
	switch {
	case y > 0 && m > 0:
		return fmt.Sprintf("%dy %dm", y, m)
	case y > 0:
		return fmt.Sprintf("%dy", y)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%dd", int(days))
	}
}

// Degrees renders a longitude within its sign as 25°30'.
func Degrees(deg float64) string {
	whole := math.Floor(deg)
	minutes := math.Floor((deg - whole) * 60)
	return fmt.Sprintf("%d°%02d'", int(whole), int(minutes))
}

// SignName renders an English sign or nakshatra label with its Tamil name
// dimmed beside it.
func SignName(l domain.Label) string {
	if l.Ta == "" {
		return l.En
	}
	return l.En + " " + Dim("("+l.Ta+")")
}
