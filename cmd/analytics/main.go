package main

import (
	"context"
	"flag"
	"os"

	"github.com/Temutjin2k/taxi-analytics-system/config"
	"github.com/Temutjin2k/taxi-analytics-system/internal/app"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
)

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp()
		return
	}

	ctx := context.Background()
	log := logger.InitLogger("taxi-analytics", logger.LevelDebug)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		config.PrintHelp()
		os.Exit(1)
	}

	// Printing configuration
	config.PrintConfig(cfg)

	if logger.ValidateLogLevel(cfg.LogLevel) {
		log = logger.InitLogger("taxi-analytics", cfg.LogLevel)
	}

	// Creating application
	app, err := app.NewApplication(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		os.Exit(1)
	}

	// Running the application
	if err = app.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		os.Exit(1)
	}
}
