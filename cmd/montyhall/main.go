package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/montyhall/config"
	"github.com/alejandrodnm/montyhall/internal/adapters/notify"
	"github.com/alejandrodnm/montyhall/internal/adapters/random"
	"github.com/alejandrodnm/montyhall/internal/ports"
	"github.com/alejandrodnm/montyhall/internal/simulation"
)

const defaultConfigPath = "config/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to config file")
	trials := flag.Int("trials", 0, "number of trials (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config, 0 = keep config)")
	precision := flag.Int("precision", 0, "decimal places in the summary (overrides config)")
	records := flag.Bool("records", false, "print one row per trial and strategy")
	compact := flag.Bool("compact", false, "print a 1-line summary instead of the table")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *trials != 0 {
		cfg.Simulation.Trials = *trials
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *precision != 0 {
		cfg.Simulation.Precision = *precision
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}

	runSeed, err := random.Resolve(cfg.Simulation.Seed)
	if err != nil {
		slog.Error("failed to generate seed", "err", err)
		os.Exit(1)
	}

	slog.Info("montyhall starting",
		"config", *configPath,
		"trials", cfg.Simulation.Trials,
		"seed", runSeed,
		"precision", cfg.Simulation.Precision,
	)

	simCfg := simulation.DefaultConfig()
	simCfg.Precision = cfg.Simulation.Precision
	runner := simulation.New(simCfg, random.New(runSeed), runSeed)

	var notifier ports.Notifier = notify.NewConsole(*compact, *records)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	batch, err := runner.PlayNGames(ctx, cfg.Simulation.Trials)
	if err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}

	if err := notifier.Notify(ctx, batch); err != nil {
		slog.Warn("notifier error", "err", err)
	}
}

// loadConfig lee el archivo de config; si el path por defecto no existe usa .env y defaults.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil && path == defaultConfigPath && errors.Is(err, os.ErrNotExist) {
		return config.LoadEnv()
	}
	return cfg, err
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
