package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	c, err := fromLookup(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lvl)
}

func TestFromLookup_Overrides(t *testing.T) {
	c, err := fromLookup(env(map[string]string{
		EnvLogLevel:    "warn",
		EnvMaxSide:     "0",
		EnvMaxStates:   "5000",
		EnvMaxDepth:    "40",
		EnvParallelism: "3",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "warn", MaxSide: 0, MaxStates: 5000, MaxDepth: 40, Parallelism: 3}, c)
}

func TestFromLookup_Development(t *testing.T) {
	c, err := fromLookup(env(map[string]string{EnvDevelopment: "1", EnvLogLevel: "error"}))
	require.NoError(t, err)
	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)

	c, err = fromLookup(env(map[string]string{EnvDevelopment: "0"}))
	require.NoError(t, err)
	assert.False(t, c.Development)
}

func TestFromLookup_Invalid(t *testing.T) {
	for _, kv := range []map[string]string{
		{EnvMaxStates: "lots"},
		{EnvMaxDepth: "-1"},
		{EnvLogLevel: "loud"},
	} {
		_, err := fromLookup(env(kv))
		assert.ErrorIs(t, err, ErrInvalidValue, kv)
	}
}
