package varga

import (
	"math/rand"
	"testing"

	"github.com/pariharam/jathagam/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNavamsaSign_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		longitude float64
		want      int
	}{
		{"aries first part", 0.0, 0},
		{"aries last part", 29.999, 8},
		{"taurus first part counts from capricorn", 30.0, 9},
		{"gemini first part counts from libra", 60.0, 6},
		{"cancer first part is cancer", 90.0, 3},
		{"leo first part counts from aries", 120.0, 0},
		{"pisces last part", 359.999, 11},
		{"second part of aries", 3.34, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NavamsaSign(tt.longitude))
		})
	}
}

func TestNavamsaSign_WrapsOutOfRangeInput(t *testing.T) {
	assert.Equal(t, NavamsaSign(10), NavamsaSign(370))
	assert.Equal(t, NavamsaSign(350), NavamsaSign(-10))
	assert.Equal(t, NavamsaSign(0), NavamsaSign(720))
}

// TestNavamsaSign_AlwaysInRange property-tests totality.
func TestNavamsaSign_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 1000; trial++ {
		lon := rng.Float64()*2000 - 1000
		got := NavamsaSign(lon)
		assert.GreaterOrEqual(t, got, 0, "trial %d lon %f", trial, lon)
		assert.Less(t, got, 12, "trial %d lon %f", trial, lon)
	}
}

// The 108 navamsa parts of the zodiac cycle through the signs in order,
// Aries first.
func TestNavamsaSign_CyclesThroughZodiac(t *testing.T) {
	for part := 0; part < 108; part++ {
		lon := (float64(part) + 0.5) * NavamsaSpan
		assert.Equal(t, part%12, NavamsaSign(lon), "part %d", part)
	}
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 350.0, Normalize(-10), 1e-9)
	assert.InDelta(t, 10.0, Normalize(370), 1e-9)
	assert.InDelta(t, 0.0, Normalize(360), 1e-9)
	assert.InDelta(t, 0.0, Normalize(-360), 1e-9)
}

func TestRasiAndDegrees(t *testing.T) {
	assert.Equal(t, 1, Rasi(55))
	assert.InDelta(t, 25.0, DegreesInSign(55), 1e-9)
	assert.Equal(t, 11, Rasi(-0.5))
	assert.Equal(t, "Meena", domain.Rashis[Rasi(359)].En)
}

func TestNakshatra(t *testing.T) {
	n := Nakshatra(55.0)
	assert.Equal(t, 4, n.Index)
	assert.Equal(t, "Mrigashira", n.Name().En)
	assert.Equal(t, 1, n.Padam)

	assert.Equal(t, 4, Padam(NakshatraSpan-0.001))
	assert.Equal(t, 2, Padam(PadaSpan+0.01))
	assert.Equal(t, 26, NakshatraIndex(359.9))
	assert.InDelta(t, 0.5, NakshatraFraction(NakshatraSpan/2), 1e-12)
}

func TestHouseFrom(t *testing.T) {
	assert.Equal(t, 1, HouseFrom(5, 5))
	assert.Equal(t, 12, HouseFrom(4, 5))
	assert.Equal(t, 8, HouseFrom(0, 5))
}

func TestOpposite(t *testing.T) {
	assert.InDelta(t, 10.0, Opposite(190), 1e-9)
	assert.InDelta(t, 270.0, Opposite(90), 1e-9)
}

func TestNavamsaPart(t *testing.T) {
	assert.Equal(t, 0, NavamsaPart(0))
	assert.Equal(t, 0, NavamsaPart(30))
	assert.Equal(t, 4, NavamsaPart(45))
	assert.Equal(t, 8, NavamsaPart(29.999))
	assert.Equal(t, 8, NavamsaPart(-0.001))
}
