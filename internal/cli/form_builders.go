package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

// dateInput returns a huh.Input for a required date with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "1990-05-14"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateDate)
}

// clockInput returns a huh.Input for a 24-hour HH:MM time of day.
func clockInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("08:30").
		Value(value).
		Validate(validateClock)
}

// longitudeInput returns a huh.Input for a sidereal longitude in degrees.
func longitudeInput(title, description string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(description).
		Placeholder("55.0").
		Value(value).
		Validate(validateLongitude)
}

// timezoneSelect offers common birth timezones plus the configured one.
func timezoneSelect(title, configured string, value *string) *huh.Select[string] {
	zones := []string{"Asia/Kolkata", "Asia/Colombo", "Asia/Singapore", "Asia/Kuala_Lumpur", "Europe/London", "America/New_York", "UTC"}
	seen := map[string]bool{}
	var options []huh.Option[string]
	for _, z := range append([]string{configured}, zones...) {
		if z == "" || seen[z] {
			continue
		}
		seen[z] = true
		options = append(options, huh.NewOption(z, z))
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(value)
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use 24-hour HH:MM format")
	}
	return nil
}

func validateLongitude(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("enter degrees as a number, e.g. 123.4")
	}
	return nil
}
