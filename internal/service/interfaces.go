package service

import "github.com/pariharam/jathagam/internal/app"

type DashaService interface {
	app.DashaUseCase
}

type ChartService interface {
	app.ChartUseCase
}

type NavamsaService interface {
	app.NavamsaUseCase
}
