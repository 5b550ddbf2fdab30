package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/domain"
	"github.com/pariharam/jathagam/internal/varga"
)

const (
	chartType      = "Vimshottari Dasha Hierarchy"
	chartSystem    = "South Indian Vedic Astrology"
	chartPrecision = "Time-based internal, date-based output"
)

type chartService struct {
	settings Settings
	observer UseCaseObserver
}

func NewChartService(settings Settings, observers ...UseCaseObserver) ChartService {
	return &chartService{
		settings: settings,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *chartService) ComputeChart(ctx context.Context, req app.ChartRequest) (resp *app.ChartResponse, err error) {
	startedAt := time.Now()
	id := uuid.New().String()
	defer func() {
		observe(ctx, s.observer, "compute-chart", startedAt, err, map[string]any{"chart_id": id})
	}()

	if err := validateChartRequest(req); err != nil {
		return nil, err
	}

	moon := req.Planets[domain.PlanetMoon]
	dashaResp, err := buildDasha(s.settings, app.DashaRequest{
		Birth:         req.Birth,
		MoonLongitude: moon,
		Now:           req.Now,
		Depth:         req.Depth,
		CutoffYears:   req.CutoffYears,
	})
	if err != nil {
		return nil, fmt.Errorf("building dasha: %w", err)
	}

	nak := varga.Nakshatra(moon)
	resp = &app.ChartResponse{
		ID: id,
		Metadata: app.ChartMetadata{
			Type:      chartType,
			System:    chartSystem,
			Ayanamsa:  domain.CoalesceStr(req.Ayanamsa, s.settings.Ayanamsa),
			Precision: chartPrecision,
		},
		MoonSign: signView(varga.Rasi(moon)),
		Nakshatra: app.NakshatraView{
			Index: nak.Index,
			Name:  nak.Name(),
			Padam: nak.Padam,
		},
		Planets: planetPositions(req.Planets),
		Dasha:   *dashaResp,
	}

	var navLagna *int
	if req.Lagna != nil {
		lagna := signView(varga.Rasi(*req.Lagna))
		resp.Lagna = &lagna
		nl := varga.NavamsaSign(*req.Lagna)
		navLagna = &nl
		view := signView(nl)
		resp.Navamsa.Lagna = &view
	}
	resp.Navamsa.Planets = navamsaPlacements(resp.Planets, navLagna)

	return resp, nil
}

func validateChartRequest(req app.ChartRequest) error {
	var problems []string
	if req.Birth.IsZero() {
		problems = append(problems, "birth time is required")
	}
	if _, ok := req.Planets[domain.PlanetMoon]; !ok {
		problems = append(problems, "Moon longitude is required")
	}
	if req.Lagna != nil && !isFinite(*req.Lagna) {
		problems = append(problems, fmt.Sprintf("lagna longitude %v is not finite", *req.Lagna))
	}

	names := make([]string, 0, len(req.Planets))
	for p := range req.Planets {
		names = append(names, string(p))
	}
	sort.Strings(names)
	for _, name := range names {
		if !domain.ValidInputPlanets[name] {
			problems = append(problems, fmt.Sprintf("unknown planet %q", name))
			continue
		}
		if lon := req.Planets[domain.Planet(name)]; !isFinite(lon) {
			problems = append(problems, fmt.Sprintf("%s longitude %v is not finite", name, lon))
		}
	}

	if len(problems) > 0 {
		return &app.ChartError{Code: app.ChartErrInvalidPositions, Message: strings.Join(problems, "; ")}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func signView(idx int) app.SignView {
	return app.SignView{Index: idx, Name: domain.Rashis[idx]}
}

// planetPositions lists supplied planets in canonical order, inserting
// Ketu opposite Rahu.
func planetPositions(planets map[domain.Planet]float64) []domain.PlanetPosition {
	out := make([]domain.PlanetPosition, 0, len(planets)+1)
	for _, p := range domain.InputPlanets {
		lon, ok := planets[p]
		if !ok {
			continue
		}
		out = append(out, position(p, lon))
		if p == domain.PlanetRahu {
			out = append(out, position(domain.PlanetKetu, varga.Opposite(lon)))
		}
	}
	return out
}

func position(p domain.Planet, lon float64) domain.PlanetPosition {
	n := varga.Normalize(lon)
	return domain.PlanetPosition{
		Planet:    p,
		Longitude: n,
		Rasi:      varga.Rasi(n),
		Degrees:   varga.DegreesInSign(n),
	}
}

func navamsaPlacements(positions []domain.PlanetPosition, lagna *int) []domain.NavamsaPlacement {
	out := make([]domain.NavamsaPlacement, 0, len(positions))
	for _, pos := range positions {
		np := domain.NavamsaPlacement{
			Planet: pos.Planet,
			Sign:   varga.NavamsaSign(pos.Longitude),
		}
		if lagna != nil {
			np.House = varga.HouseFrom(np.Sign, *lagna)
		}
		out = append(out, np)
	}
	return out
}
