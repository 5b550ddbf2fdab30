package dasha

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pariharam/jathagam/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_Invariants_CoverageAndClipping property-tests the tree shape:
// Mahadashas tile birth..end of cycle, children tile their parent, and no
// child leaves its parent's window.
func TestBuild_Invariants_CoverageAndClipping(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 60; trial++ {
		lon := rng.Float64() * 360
		birth := time.Date(1900+rng.Intn(150), time.Month(rng.Intn(12)+1), rng.Intn(28)+1,
			rng.Intn(24), rng.Intn(60), 0, 0, time.UTC)

		periods, err := Build(birth, lon, Options{Depth: 3})
		require.NoError(t, err)

		// Invariant 1: nine Mahadashas from birth to the end of the cycle.
		require.Len(t, periods, 9, "trial %d lon %.4f", trial, lon)
		assert.True(t, periods[0].Start.Equal(birth), "trial %d: first period must start at birth", trial)

		bal := Balance(lon)
		total := domain.CycleYears - (1-bal.Remaining)*bal.Lord.Years
		assert.WithinDuration(t, birth.Add(yearsToDuration(total)), periods[8].End, time.Millisecond,
			"trial %d: cycle must end %.4f years after birth", trial, total)

		assertTiles(t, periods, trial)

		// Invariant 2: children stay inside and tile their parent.
		Walk(periods, func(p, parent *domain.Period) {
			assert.True(t, p.End.After(p.Start), "trial %d: %s %s has no width", trial, p.Level, p.Lord)
			if parent == nil {
				return
			}
			assert.Equal(t, parent.Level+1, p.Level)
			assert.False(t, p.Start.Before(parent.Start), "trial %d: %s starts before parent", trial, p.Lord)
			assert.False(t, p.End.After(parent.End), "trial %d: %s ends after parent", trial, p.Lord)
		})
		Walk(periods, func(p, _ *domain.Period) {
			if len(p.Children) == 0 {
				return
			}
			assert.True(t, p.Children[0].Start.Equal(p.Start), "trial %d: first child of %s", trial, p.Lord)
			assert.True(t, p.Children[len(p.Children)-1].End.Equal(p.End), "trial %d: last child of %s", trial, p.Lord)
			assertTiles(t, p.Children, trial)
		})
	}
}

// TestBuild_Invariants_AtMostOneCurrentPerLevel checks the current flag
// against random evaluation instants inside and around the timeline.
func TestBuild_Invariants_AtMostOneCurrentPerLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	birth := time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 40; trial++ {
		lon := rng.Float64() * 360
		now := birth.Add(yearsToDuration(rng.Float64()*130 - 5))

		periods, err := Build(birth, lon, Options{Now: now})
		require.NoError(t, err)

		current := make(map[domain.DashaLevel]int)
		Walk(periods, func(p, parent *domain.Period) {
			assert.Equal(t, p.Contains(now), p.IsCurrent)
			if p.IsCurrent {
				current[p.Level]++
				if parent != nil {
					assert.True(t, parent.IsCurrent, "trial %d: current child under non-current parent", trial)
				}
			}
		})
		for level, n := range current {
			assert.LessOrEqual(t, n, 1, "trial %d: level %s has %d current periods", trial, level, n)
		}
	}
}

// TestBuild_ChildLordsRunCyclically checks that children start with their
// parent's lord and follow the cycle without gaps.
func TestBuild_ChildLordsRunCyclically(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 20; trial++ {
		lon := rng.Float64() * 360
		periods, err := Build(testBirth, lon, Options{Depth: 3})
		require.NoError(t, err)

		Walk(periods, func(p, _ *domain.Period) {
			if len(p.Children) == 0 {
				return
			}
			n := len(domain.Lords)
			assert.Equal(t, p.Lord, p.Children[0].Lord, "trial %d: first child of %s %s", trial, p.Level, p.Lord)
			for i := 1; i < len(p.Children); i++ {
				prev := domain.LordIndex(p.Children[i-1].Lord)
				assert.Equal(t, (prev+1)%n, domain.LordIndex(p.Children[i].Lord))
			}
		})
	}
}

func TestBuild_EquivalentLongitudesMatch(t *testing.T) {
	now := testBirth.AddDate(20, 0, 0)
	a, err := Build(testBirth, 10, Options{Now: now, Depth: 3})
	require.NoError(t, err)
	b, err := Build(testBirth, 370, Options{Now: now, Depth: 3})
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("10 and 370 degrees differ (-10 +370):\n%s", diff)
	}
}

func TestBuild_ConcurrentCallsAreIndependent(t *testing.T) {
	now := testBirth.AddDate(33, 0, 0)
	want, err := Build(testBirth, 55.0, Options{Now: now})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]domain.Period, 8)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Build(testBirth, 55.0, Options{Now: now})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "goroutine %d", i)
	}
	for i, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("goroutine %d result differs:\n%s", i, diff)
		}
	}
}

func assertTiles(t *testing.T, siblings []domain.Period, trial int) {
	t.Helper()
	for i := 1; i < len(siblings); i++ {
		assert.True(t, siblings[i].Start.Equal(siblings[i-1].End),
			"trial %d: gap or overlap between %s and %s", trial, siblings[i-1].Lord, siblings[i].Lord)
	}
}
