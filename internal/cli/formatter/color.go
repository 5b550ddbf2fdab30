package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pariharam/jathagam/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PlanetColor returns the style used for a graha's name.
// Benefics render green, malefics red, the nodes purple and the
// luminaries yellow.
func PlanetColor(p domain.Planet) lipgloss.Style {
	switch p {
	case domain.PlanetSun, domain.PlanetMoon:
		return StyleYellow
	case domain.PlanetJupiter, domain.PlanetVenus, domain.PlanetMercury:
		return StyleGreen
	case domain.PlanetMars, domain.PlanetSaturn:
		return StyleRed
	case domain.PlanetRahu, domain.PlanetKetu:
		return StylePurple
	default:
		return StyleFg
	}
}

// ModalityBadge returns a short colored tag for a sign's modality.
func ModalityBadge(m domain.Modality) string {
	switch m {
	case domain.ModalityMovable:
		return StyleBlue.Render("chara")
	case domain.ModalityFixed:
		return StyleYellow.Render("sthira")
	case domain.ModalityDual:
		return StylePurple.Render("dvisvabhava")
	default:
		return Dim("?")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
