package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pariharam/jathagam/internal/ephemeris"
	"github.com/pariharam/jathagam/internal/service"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Reference birth used across packages: Moon at 55° in Mrigashira, so
// the chart opens in Mars dasha with 6.125 years left.
var (
	Birth = time.Date(1990, 5, 14, 3, 0, 0, 0, time.UTC)
	Now   = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
)

// Settings returns default service settings on a clock frozen at now.
func Settings(now time.Time) service.Settings {
	s := service.DefaultSettings()
	s.Clock = func() time.Time { return now }
	return s
}

// Positions options
type PositionsOption func(*ephemeris.PositionsFile)

func WithBirth(birth, timezone string) PositionsOption {
	return func(f *ephemeris.PositionsFile) {
		f.Birth = birth
		f.Timezone = timezone
	}
}

func WithLagna(lon float64) PositionsOption {
	return func(f *ephemeris.PositionsFile) {
		f.Lagna = &lon
	}
}

func WithoutLagna() PositionsOption {
	return func(f *ephemeris.PositionsFile) {
		f.Lagna = nil
	}
}

func WithPlanet(name string, lon float64) PositionsOption {
	return func(f *ephemeris.PositionsFile) {
		f.Planets[name] = lon
	}
}

func WithoutPlanet(name string) PositionsOption {
	return func(f *ephemeris.PositionsFile) {
		delete(f.Planets, name)
	}
}

// NewTestPositions returns a complete positions document for Birth.
func NewTestPositions(opts ...PositionsOption) *ephemeris.PositionsFile {
	lagna := 121.0
	f := &ephemeris.PositionsFile{
		Birth:    "1990-05-14 08:30",
		Timezone: "Asia/Kolkata",
		Ayanamsa: "Lahiri",
		Lagna:    &lagna,
		Planets: map[string]float64{
			"Sun": 29.1, "Moon": 55.0, "Mars": 330.2, "Mercury": 41.7,
			"Jupiter": 82.3, "Venus": 2.9, "Saturn": 270.5, "Rahu": 301.2,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WritePositionsFile encodes f into dir as YAML, or JSON when the name
// ends in .json, and returns the path.
func WritePositionsFile(t *testing.T, dir, name string, f *ephemeris.PositionsFile) string {
	t.Helper()

	var data []byte
	var err error
	if filepath.Ext(name) == ".json" {
		data, err = json.Marshal(f)
	} else {
		data, err = yaml.Marshal(f)
	}
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
