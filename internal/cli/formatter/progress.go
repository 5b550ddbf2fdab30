package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pariharam/jathagam/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar turns from green to yellow to red as a period runs out.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	if pct >= 0.85 {
		style = StyleRed
	} else if pct >= 0.5 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// Elapsed returns the fraction of p that has run by now, clamped to 0..1.
func Elapsed(p domain.Period, now time.Time) float64 {
	total := p.Duration()
	if total <= 0 {
		return 0
	}
	f := float64(now.Sub(p.Start)) / float64(total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
