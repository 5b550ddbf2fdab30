package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pariharam/jathagam/internal/app"
	"github.com/pariharam/jathagam/internal/domain"
	"github.com/pariharam/jathagam/internal/varga"
)

type navamsaService struct {
	observer UseCaseObserver
}

func NewNavamsaService(observers ...UseCaseObserver) NavamsaService {
	return &navamsaService{observer: useCaseObserverOrNoop(observers)}
}

func (s *navamsaService) MapNavamsa(ctx context.Context, req app.NavamsaRequest) (resp *app.NavamsaResponse, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "map-navamsa", startedAt, err, map[string]any{"count": len(req.Longitudes)})
	}()

	entries := make([]app.NavamsaEntry, 0, len(req.Longitudes))
	for i, lon := range req.Longitudes {
		if math.IsNaN(lon) || math.IsInf(lon, 0) {
			return nil, &app.ChartError{
				Code:    app.ChartErrInvalidInput,
				Message: fmt.Sprintf("longitude %d (%v) is not finite", i+1, lon),
			}
		}
		rasi := varga.Rasi(lon)
		entries = append(entries, app.NavamsaEntry{
			Longitude: lon,
			Rasi:      rasi,
			Sign:      varga.NavamsaSign(lon),
			Modality:  domain.SignModality(rasi),
		})
	}
	return &app.NavamsaResponse{Entries: entries}, nil
}
