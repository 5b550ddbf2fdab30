// Package ephemeris reads the sidereal positions produced by an external
// ephemeris for one birth. Computing positions is out of scope; this
// package only loads, validates and converts them.
package ephemeris

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PositionsFile is the on-disk document. JSON files parse as YAML.
type PositionsFile struct {
	Birth    string             `yaml:"birth" json:"birth"`
	Timezone string             `yaml:"timezone,omitempty" json:"timezone,omitempty"`
	Ayanamsa string             `yaml:"ayanamsa,omitempty" json:"ayanamsa,omitempty"`
	Lagna    *float64           `yaml:"lagna,omitempty" json:"lagna,omitempty"`
	Planets  map[string]float64 `yaml:"planets" json:"planets"`
}

// LoadPositions reads and parses a positions file.
func LoadPositions(path string) (*PositionsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePositions(data)
}

// ParsePositions parses a positions document held in memory.
func ParsePositions(data []byte) (*PositionsFile, error) {
	var f PositionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing positions file: %w", err)
	}
	return &f, nil
}
