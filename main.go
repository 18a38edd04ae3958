package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/xgzlucario/collbench/internal/scenario"
)

var logger = zerolog.
	New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
	Level(zerolog.InfoLevel).
	With().
	Timestamp().
	Logger()

func main() {
	var path string
	flag.StringVar(&path, "config", defaultConfigFileName, "config file to load.")
	flag.Parse()

	config, err := loadConfig(path)
	if err != nil {
		logger.Fatal().Msgf("failed to load config: %v", err)
	}
	logger = logger.Level(config.LogLevel)

	logger.Info().
		Int("runs", config.Runs).
		Bool("linkedlist", config.LinkedList).
		Msg("collbench is starting...")

	err = scenario.Run(os.Stdout, scenario.Options{
		Runs:       config.Runs,
		LinkedList: config.LinkedList,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal().Msgf("benchmark failed: %v", err)
	}
}
