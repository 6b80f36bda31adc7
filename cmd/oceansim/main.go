// Package main runs the ocean simulation without a window and reports
// height statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/oceanwaves/internal/config"
	"github.com/Faultbox/oceanwaves/internal/engine/debug"
	"github.com/Faultbox/oceanwaves/internal/engine/water"
	"github.com/Faultbox/oceanwaves/internal/logger"
)

var flagDump = flag.String("dump", "", "Write the final visible heightfield to this image (.png, .bmp, .tiff)")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.SaveRequested() {
		path, err := cfg.SaveEffective()
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("path", path))
		return
	}

	if err := run(cfg, *flagDump); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, dumpPath string) error {
	ocean, err := water.New(cfg.OceanParams(), logger.Named("ocean"))
	if err != nil {
		return fmt.Errorf("failed to create ocean: %w", err)
	}

	step := cfg.Simulation.TimeStep
	steps := int(cfg.Simulation.Duration/step + 1e-9)

	logger.Info("simulating",
		zap.Int("steps", steps+1),
		zap.Float64("timeStep", step),
		zap.Float64("duration", cfg.Simulation.Duration),
	)

	start := time.Now()
	for i := 0; i <= steps; i++ {
		ocean.Update(float64(i) * step)
	}
	elapsed := time.Since(start)

	stats := ocean.HeightStats()
	visible := water.ComputeStats(water.MeshHeights(nil, ocean.Vertices()))
	logger.Info("simulation finished",
		zap.Float64("time", ocean.Time()),
		zap.Duration("elapsed", elapsed),
		zap.Duration("perUpdate", elapsed/time.Duration(steps+1)),
		zap.Float64("mean", stats.Mean),
		zap.Float64("variance", stats.Variance),
		zap.Float64("min", stats.Min),
		zap.Float64("max", stats.Max),
		zap.Float64("meshVariance", visible.Variance),
	)

	if dumpPath == "" {
		return nil
	}
	if err := debug.WriteImage(dumpPath, ocean.HeightImage()); err != nil {
		return fmt.Errorf("dumping heightfield to %s: %w", dumpPath, err)
	}
	logger.Info("heightfield written", zap.String("path", dumpPath))
	return nil
}
