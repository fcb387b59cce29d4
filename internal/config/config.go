// Package config reads process settings for the cleaner binary from the
// environment. Command-line flags take precedence and are applied by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/world"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvLogLevel    = "CLEANER_LOG_LEVEL"
	EnvDevelopment = "CLEANER_DEVELOPMENT"
	EnvMaxSide     = "CLEANER_MAX_SIDE"
	EnvMaxStates   = "CLEANER_MAX_STATES"
	EnvMaxDepth    = "CLEANER_MAX_DEPTH"
	EnvParallelism = "CLEANER_PARALLELISM"
)

// Config holds runtime settings. Zero limits mean "unbounded".
type Config struct {
	LogLevel    string
	Development bool
	MaxSide     int
	MaxStates   int
	MaxDepth    int
	Parallelism int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel: logrus.InfoLevel.String(),
		MaxSide:  world.MaxSide,
	}
}

// FromEnv overlays environment variables on Default.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvDevelopment); ok {
		c.Development = v != "" && v != "0"
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvMaxSide, &c.MaxSide},
		{EnvMaxStates, &c.MaxStates},
		{EnvMaxDepth, &c.MaxDepth},
		{EnvParallelism, &c.Parallelism},
	}
	for _, f := range ints {
		v, ok := lookup(f.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q must be a non-negative integer", ErrInvalidValue, f.name, v)
		}
		*f.dst = n
	}

	if _, err := c.Level(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Level resolves the log level. Development mode always logs at debug.
func (c Config) Level() (logrus.Level, error) {
	if c.Development {
		return logrus.DebugLevel, nil
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidValue, c.LogLevel)
	}
	return lvl, nil
}
