package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	jathagamapp "github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/cli/formatter"
	"github.com/pariharam/jathagam/internal/ephemeris"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("wizard needs an interactive terminal; use `jathagam dasha` instead")

// jathagamHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func jathagamHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardAnswers collects the raw form values.
type wizardAnswers struct {
	Date     string
	Clock    string
	Timezone string
	Moon     string
	Depth    int
	All      bool
}

// birthForm builds the themed birth-data form writing into a.
func birthForm(a *wizardAnswers, configuredTZ string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			dateInput("Date of birth (YYYY-MM-DD)", "", &a.Date),
			clockInput("Time of birth (HH:MM, 24-hour)", &a.Clock),
			timezoneSelect("Birth timezone", configuredTZ, &a.Timezone),
		),
		huh.NewGroup(
			longitudeInput("Moon longitude", "Sidereal degrees from 0° Aries", &a.Moon),
			huh.NewSelect[int]().
				Title("Depth").
				Options(
					huh.NewOption("Mahadasha", 1),
					huh.NewOption("Bhukti", 2),
					huh.NewOption("Pratyantardasha", 3),
					huh.NewOption("Sookshma", 4),
				).
				Value(&a.Depth),
			huh.NewConfirm().
				Title("Expand every branch?").
				Affirmative("Yes").
				Negative("No").
				Value(&a.All),
		),
	).WithTheme(jathagamHuhTheme()).WithShowHelp(false)
}

// request turns validated answers into a dasha request.
func (a wizardAnswers) request() (jathagamapp.DashaRequest, error) {
	born, err := ephemeris.ParseBirth(strings.TrimSpace(a.Date)+" "+strings.TrimSpace(a.Clock), a.Timezone)
	if err != nil {
		return jathagamapp.DashaRequest{}, fmt.Errorf("birth: %w", err)
	}
	moon, err := strconv.ParseFloat(strings.TrimSpace(a.Moon), 64)
	if err != nil {
		return jathagamapp.DashaRequest{}, fmt.Errorf("moon longitude %q is not a number", a.Moon)
	}
	req := jathagamapp.NewDashaRequest(born, moon)
	if a.Depth > 0 {
		req.Depth = a.Depth
	}
	return req, nil
}

func newWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Enter birth details interactively and print the dasha tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return errNotInteractive
			}

			answers := wizardAnswers{Timezone: app.Config.Timezone, Depth: app.Config.Depth}
			if err := birthForm(&answers, app.Config.Timezone).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}

			req, err := answers.request()
			if err != nil {
				return err
			}
			cutoff := app.Config.CutoffYears
			req.CutoffYears = &cutoff

			resp, err := app.Dasha.BuildDasha(cmd.Context(), req)
			if err != nil {
				return err
			}
			return renderDasha(cmd.OutOrStdout(), resp, &evalFlags{all: answers.All})
		},
	}
}
