package service

import (
	"context"
	"errors"
	"time"

	"github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/dasha"
)

type dashaService struct {
	settings Settings
	observer UseCaseObserver
}

func NewDashaService(settings Settings, observers ...UseCaseObserver) DashaService {
	return &dashaService{
		settings: settings,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dashaService) BuildDasha(ctx context.Context, req app.DashaRequest) (resp *app.DashaResponse, err error) {
	startedAt := time.Now()
	defer func() {
		fields := map[string]any{"moon_longitude": req.MoonLongitude}
		if resp != nil {
			fields["mahadashas"] = len(resp.Mahadashas)
		}
		observe(ctx, s.observer, "build-dasha", startedAt, err, fields)
	}()

	return buildDasha(s.settings, req)
}

// buildDasha is shared by the dasha and chart services.
func buildDasha(settings Settings, req app.DashaRequest) (*app.DashaResponse, error) {
	now := settings.now(req.Now)
	periods, err := dasha.Build(req.Birth, req.MoonLongitude, settings.dashaOptions(now, req.Depth, req.CutoffYears))
	if err != nil {
		if errors.Is(err, dasha.ErrInvalidInput) {
			return nil, &app.ChartError{Code: app.ChartErrInvalidInput, Message: err.Error()}
		}
		return nil, err
	}

	bal := dasha.Balance(req.MoonLongitude)
	return &app.DashaResponse{
		EvaluatedAt: now,
		Balance: app.DashaBalance{
			Lord:           bal.Lord.Name,
			Nakshatra:      bal.Nakshatra,
			RemainingFrac:  bal.Remaining,
			RemainingYears: bal.RemainingYears(),
		},
		Mahadashas: periods,
		Current:    dasha.CurrentPath(periods),
	}, nil
}
