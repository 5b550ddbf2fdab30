// Package dasha generates the Vimshottari dasha hierarchy: nine
// Mahadashas from birth, each subdivided proportionally into Bhuktis,
// Pratyantardashas and Sookshma dashas.
package dasha

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pariharam/jathagam/internal/domain"
	"github.com/pariharam/jathagam/internal/varga"
)

// DefaultCutoffYears stops Mahadasha generation once a period ends this
// many years after birth. It is a safety bound, not part of the cycle, and
// is measured in the same 365.2425-day years as every period length.
const DefaultCutoffYears = 105.0

// ErrInvalidInput is returned for inputs the builder cannot place on a
// timeline: non-finite longitudes, a zero birth time, or a bad depth.
var ErrInvalidInput = errors.New("invalid dasha input")

// Options controls a single Build call.
type Options struct {
	// Now is the evaluation instant used for IsCurrent. A period is current
	// when Now falls in the half-open window [Start, End). Zero means no
	// period is flagged current.
	Now time.Time
	// Depth is the number of levels to generate, 1..4. Zero means 4.
	Depth int
	// CutoffYears ends generation after the first Mahadasha that ends
	// more than this many years after birth. Zero or negative disables it.
	CutoffYears float64
}

// DefaultOptions returns Options evaluated at now with full depth and the
// default cutoff.
func DefaultOptions(now time.Time) Options {
	return Options{
		Now:         now,
		Depth:       domain.MaxDashaDepth,
		CutoffYears: DefaultCutoffYears,
	}
}

// BirthBalance describes the dasha in progress at birth.
type BirthBalance struct {
	Nakshatra int
	Lord      domain.Lord
	LordIndex int
	// Remaining is the unspent fraction of the first Mahadasha, in (0, 1].
	Remaining float64
}

// RemainingYears is the length of the first Mahadasha after birth.
func (b BirthBalance) RemainingYears() float64 {
	return b.Lord.Years * b.Remaining
}

// Balance derives the starting lord and remaining fraction from the Moon's
// sidereal longitude.
func Balance(moonLongitude float64) BirthBalance {
	nak := varga.NakshatraIndex(moonLongitude)
	return BirthBalance{
		Nakshatra: nak,
		Lord:      domain.LordAt(nak),
		LordIndex: nak % len(domain.Lords),
		Remaining: 1 - varga.NakshatraFraction(moonLongitude),
	}
}

// Build returns the Mahadasha sequence starting at birth, expanded to
// opts.Depth levels. The result shares no state with other calls.
func Build(birth time.Time, moonLongitude float64, opts Options) ([]domain.Period, error) {
	if math.IsNaN(moonLongitude) || math.IsInf(moonLongitude, 0) {
		return nil, fmt.Errorf("%w: moon longitude %v is not finite", ErrInvalidInput, moonLongitude)
	}
	if birth.IsZero() {
		return nil, fmt.Errorf("%w: birth time is required", ErrInvalidInput)
	}
	depth := opts.Depth
	if depth == 0 {
		depth = domain.MaxDashaDepth
	}
	if depth < 1 || depth > domain.MaxDashaDepth {
		return nil, fmt.Errorf("%w: depth %d outside 1..%d", ErrInvalidInput, depth, domain.MaxDashaDepth)
	}

	bal := Balance(moonLongitude)

	// The Mahadasha level is one 120-year sub-cycle whose nominal start
	// lies before birth by the already-spent part of the first lord.
	elapsed := (1 - bal.Remaining) * bal.Lord.Years * domain.SolarYearDays
	cycle := domain.CycleYears * domain.SolarYearDays

	g := generator{
		birth:    birth,
		now:      opts.Now,
		depth:    depth,
		cutoffAt: math.Inf(1),
	}
	if opts.CutoffYears > 0 {
		g.cutoffAt = opts.CutoffYears * domain.SolarYearDays
	}

	return g.expand(span{
		lord:         bal.LordIndex,
		nominalStart: -elapsed,
		nominalDays:  cycle,
		clipStart:    0,
		clipEnd:      cycle - elapsed,
	}, domain.LevelMahadasha), nil
}

// span is a sub-cycle to lay out. All offsets are days relative to birth
// so siblings share exact boundaries before conversion to time.Time.
type span struct {
	lord         int
	nominalStart float64
	nominalDays  float64
	clipStart    float64
	clipEnd      float64
}

type generator struct {
	birth    time.Time
	now      time.Time
	depth    int
	cutoffAt float64
}

// expand lays nine children over s starting at s.lord, intersects each
// with the clip window and recurses until the configured depth. Children
// of a period are laid out from its clipped start, so the first
// Mahadasha's subdivisions begin at birth with its own lord and only the
// tail is cut.
func (g generator) expand(s span, level domain.DashaLevel) []domain.Period {
	periods := make([]domain.Period, 0, len(domain.Lords))
	cursor := s.nominalStart
	for k := 0; k < len(domain.Lords); k++ {
		idx := (s.lord + k) % len(domain.Lords)
		lord := domain.Lords[idx]
		nominalDays := s.nominalDays * lord.Years / domain.CycleYears
		nominalStart, nominalEnd := cursor, cursor+nominalDays
		cursor = nominalEnd
		// Absorb summation drift so the last child ends with its parent.
		if k == len(domain.Lords)-1 && nominalEnd < s.clipEnd {
			nominalEnd = s.clipEnd
		}

		lo := math.Max(nominalStart, s.clipStart)
		hi := math.Min(nominalEnd, s.clipEnd)
		if lo >= hi {
			continue
		}
		start, end := g.at(lo), g.at(hi)
		if !end.After(start) {
			continue
		}

		p := domain.Period{
			Lord:      lord.Name,
			Level:     level,
			Start:     start,
			End:       end,
			IsCurrent: !g.now.IsZero() && !g.now.Before(start) && g.now.Before(end),
		}
		if int(level) < g.depth {
			p.Children = g.expand(span{
				lord:         idx,
				nominalStart: lo,
				nominalDays:  nominalDays,
				clipStart:    lo,
				clipEnd:      hi,
			}, level+1)
		}
		periods = append(periods, p)

		if level == domain.LevelMahadasha && hi > g.cutoffAt {
			break
		}
	}
	return periods
}

func (g generator) at(days float64) time.Time {
	return g.birth.Add(time.Duration(math.Round(days * 24 * float64(time.Hour))))
}
