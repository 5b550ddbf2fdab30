// Package varga maps sidereal longitudes onto the rasi, nakshatra and
// navamsa partitions of the zodiac. All functions are total: any finite
// longitude is normalized into [0, 360) first.
package varga

import (
	"math"

	"github.com/pariharam/jathagam/internal/domain"
)

const (
	// SignSpan is the width of one rasi in degrees.
	SignSpan = 30.0
	// NakshatraSpan is the width of one nakshatra in degrees.
	NakshatraSpan = 360.0 / 27.0
	// NavamsaSpan is the width of one navamsa part in degrees.
	NavamsaSpan = SignSpan / 9.0
	// PadaSpan is the width of one nakshatra quarter in degrees.
	PadaSpan = NakshatraSpan / 4.0
)

// Normalize folds a longitude into [0, 360).
func Normalize(longitude float64) float64 {
	l := math.Mod(longitude, 360)
	if l < 0 {
		l += 360
	}
	// math.Mod can return 360 for tiny negative inputs after the shift.
	if l >= 360 {
		l = 0
	}
	return l
}

// Rasi returns the sign index 0..11 holding the longitude.
func Rasi(longitude float64) int {
	return int(Normalize(longitude)/SignSpan) % 12
}

// DegreesInSign returns the offset of the longitude within its sign.
func DegreesInSign(longitude float64) float64 {
	return math.Mod(Normalize(longitude), SignSpan)
}

// NakshatraIndex returns the nakshatra 0..26 holding the longitude.
func NakshatraIndex(longitude float64) int {
	return int(Normalize(longitude)/NakshatraSpan) % 27
}

// NakshatraFraction returns how far through its nakshatra the longitude
// lies, in [0, 1).
func NakshatraFraction(longitude float64) float64 {
	return math.Mod(Normalize(longitude), NakshatraSpan) / NakshatraSpan
}

// Padam returns the nakshatra quarter 1..4.
func Padam(longitude float64) int {
	p := int(math.Mod(Normalize(longitude), NakshatraSpan)/PadaSpan) + 1
	if p > 4 {
		p = 4
	}
	return p
}

// Nakshatra returns index and padam together.
func Nakshatra(longitude float64) domain.NakshatraPosition {
	return domain.NakshatraPosition{
		Index: NakshatraIndex(longitude),
		Padam: Padam(longitude),
	}
}

// NavamsaSign maps a longitude to its D9 sign 0..11. Movable signs start
// counting from themselves, fixed signs from the ninth, dual signs from
// the fifth.
func NavamsaSign(longitude float64) int {
	base := Rasi(longitude)
	return (base + modalOffset(base) + NavamsaPart(longitude)) % 12
}

// NavamsaPart returns which of the nine navamsa divisions of its sign a
// longitude falls in, 0..8.
func NavamsaPart(longitude float64) int {
	part := int(math.Mod(Normalize(longitude), SignSpan) / NavamsaSpan)
	if part > 8 {
		part = 8
	}
	return part
}

func modalOffset(sign int) int {
	switch domain.SignModality(sign) {
	case domain.ModalityFixed:
		return 8
	case domain.ModalityDual:
		return 4
	default:
		return 0
	}
}

// HouseFrom counts the house of sign relative to an ascendant sign, 1..12.
func HouseFrom(sign, ascendant int) int {
	return ((sign-ascendant)%12+12)%12 + 1
}

// Opposite returns the longitude 180 degrees away, normalized.
func Opposite(longitude float64) float64 {
	return Normalize(longitude + 180)
}
