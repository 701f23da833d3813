package main

import (
	"log/slog"
	"os"

	"stockseries/internal/app"
	"stockseries/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}

	app.SetupLogging(a.Config)

	if err := app.Run(a.Config, a.Deps, os.Stdout); err != nil {
		slog.Error("run failed", "source", a.Config.SourcePath, "error", err)
		os.Exit(1)
	}
}
