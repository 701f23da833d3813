//go:build wireinject
// +build wireinject

package main

import (
	"stockseries/internal/app"
	"stockseries/internal/chart"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Deps   app.Deps
}

// InitializeApp builds App (Config + summary writer + chart renderer) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideSummaryWriter,
		app.ProvideChartRenderer,
		wire.Bind(new(chart.Renderer), new(*chart.PlotRenderer)),
		wire.Struct(new(app.Deps), "*"),
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}
