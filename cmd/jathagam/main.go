package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pariharam/jathagam/internal/cli"
	"github.com/pariharam/jathagam/internal/config"
	"github.com/pariharam/jathagam/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file: env var, else .jathagam.yaml in cwd or home.
	cfg, err := config.Load(config.New(os.Getenv("JATHAGAM_CONFIG")))
	if err != nil {
		return err
	}

	// Use-case logging goes to stderr only when asked for.
	logger := zap.NewNop()
	if cfg.LogCalls {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
	}
	defer func() { _ = logger.Sync() }()
	observer := service.NewLogUseCaseObserver(logger)

	settings := service.DefaultSettings()
	settings.CutoffYears = cfg.CutoffYears
	settings.Depth = cfg.Depth
	settings.Ayanamsa = cfg.Ayanamsa

	app := &cli.App{
		Dasha:   service.NewDashaService(settings, observer),
		Chart:   service.NewChartService(settings, observer),
		Navamsa: service.NewNavamsaService(observer),
		Config:  cfg,
	}

	// Detect interactive terminal for the wizard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
