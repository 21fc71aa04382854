package replay

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]string{"-script", "a.yaml", "-log-level", "debug", "-capacity", "4"}, env(nil))
	require.NoError(t, err)
	assert.Equal(t, &Config{Script: "a.yaml", LogLevel: slog.LevelDebug, Capacity: 4}, cfg)

	cfg, err = ParseConfig(nil, env(map[string]string{EnvScript: "mem://localhost/b.yaml", EnvLogLevel: "warn"}))
	require.NoError(t, err)
	assert.Equal(t, "mem://localhost/b.yaml", cfg.Script)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, -1, cfg.Capacity)

	cfg, err = ParseConfig([]string{"c.yaml"}, env(nil))
	require.NoError(t, err)
	assert.Equal(t, "c.yaml", cfg.Script)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)

	_, err = ParseConfig(nil, env(nil))
	assert.ErrorContains(t, err, "no script given")

	_, err = ParseConfig([]string{"-script", "a.yaml", "-log-level", "loud"}, env(nil))
	assert.ErrorContains(t, err, "invalid log level")

	_, err = ParseConfig([]string{"-bogus"}, env(nil))
	assert.ErrorContains(t, err, "failed to parse flags")
}
