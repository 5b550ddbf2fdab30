package app

import "context"

type DashaUseCase interface {
	BuildDasha(ctx context.Context, req DashaRequest) (*DashaResponse, error)
}

type ChartUseCase interface {
	ComputeChart(ctx context.Context, req ChartRequest) (*ChartResponse, error)
}

type NavamsaUseCase interface {
	MapNavamsa(ctx context.Context, req NavamsaRequest) (*NavamsaResponse, error)
}
