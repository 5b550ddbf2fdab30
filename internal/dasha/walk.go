package dasha

import (
	"time"

	"github.com/pariharam/jathagam/internal/domain"
)

// CurrentPath returns the chain of current periods, Mahadasha first,
// descending as far as a current child exists.
func CurrentPath(periods []domain.Period) []domain.Period {
	var path []domain.Period
	for {
		next := -1
		for i := range periods {
			if periods[i].IsCurrent {
				next = i
				break
			}
		}
		if next < 0 {
			return path
		}
		path = append(path, periods[next])
		periods = periods[next].Children
	}
}

// PathAt is CurrentPath for an arbitrary instant, ignoring IsCurrent.
func PathAt(periods []domain.Period, t time.Time) []domain.Period {
	var path []domain.Period
	for {
		next := -1
		for i := range periods {
			if periods[i].Contains(t) {
				next = i
				break
			}
		}
		if next < 0 {
			return path
		}
		path = append(path, periods[next])
		periods = periods[next].Children
	}
}

// Walk visits every period depth-first, parents before children. The
// parent argument is nil for Mahadashas.
func Walk(periods []domain.Period, fn func(p, parent *domain.Period)) {
	walk(periods, nil, fn)
}

func walk(periods []domain.Period, parent *domain.Period, fn func(p, parent *domain.Period)) {
	for i := range periods {
		fn(&periods[i], parent)
		walk(periods[i].Children, &periods[i], fn)
	}
}

// CountByLevel returns how many periods were generated at each level.
func CountByLevel(periods []domain.Period) map[domain.DashaLevel]int {
	counts := make(map[domain.DashaLevel]int, domain.MaxDashaDepth)
	Walk(periods, func(p, _ *domain.Period) {
		counts[p.Level]++
	})
	return counts
}
