package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/xgzlucario/collbench/internal/perf"
)

const (
	defaultConfigFileName = "collbench.toml"
	envPrefix             = "COLLBENCH"
)

// Config is the runtime configuration of the benchmark.
type Config struct {
	Runs       int
	LinkedList bool
	LogLevel   zerolog.Level
}

func initConfig(fileName string) error {
	viper.SetDefault("bench.runs", 5)
	viper.SetDefault("bench.linkedlist", false)
	viper.SetDefault("log.level", "info")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if fileName == "" {
		return nil
	}
	viper.SetConfigFile(fileName)
	err := viper.ReadInConfig()
	// the default file is optional
	if errors.Is(err, fs.ErrNotExist) && fileName == defaultConfigFileName {
		return nil
	}
	return err
}

func configGetString(key string) string { return viper.GetString(key) }

func configGetInt(key string) int { return viper.GetInt(key) }

func configGetBool(key string) bool { return viper.GetBool(key) }

func configGetRuns() int {
	return configGetInt("bench.runs")
}

func configGetLinkedList() bool {
	return configGetBool("bench.linkedlist")
}

func configGetLogLevel() string {
	return configGetString("log.level")
}

// loadConfig reads defaults, the config file and the environment.
func loadConfig(fileName string) (*Config, error) {
	if err := initConfig(fileName); err != nil {
		return nil, fmt.Errorf("read config %s: %w", fileName, err)
	}

	runs := configGetRuns()
	if runs < 1 {
		return nil, fmt.Errorf("bench.runs = %d: %w", runs, perf.ErrInvalidRuns)
	}

	level, err := zerolog.ParseLevel(configGetLogLevel())
	if err != nil || level == zerolog.NoLevel {
		return nil, fmt.Errorf("%w: %q", errInvalidLogLevel, configGetLogLevel())
	}

	return &Config{
		Runs:       runs,
		LinkedList: configGetLinkedList(),
		LogLevel:   level,
	}, nil
}
