package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/smuscan/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smuscan.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "Failed to write config file")
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SMUSCAN_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := config.Load(nil)
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default log level")
	assert.Equal(t, time.Second, cfg.Interval, "Expected default interval 1s")
	assert.Zero(t, cfg.Cores, "Expected default cores 0 (detect)")
	assert.Equal(t, config.DefaultPath, cfg.Path, "Expected default sysfs path")

	temps, ok := cfg.Range("temperature")
	require.True(t, ok, "Expected temperature range in default catalog")
	assert.Equal(t, 30.0, temps.Low, "Expected default temperature lower bound")
	assert.Equal(t, 95.0, temps.High, "Expected default temperature upper bound")

	assert.Equal(t, []string{"frequency", "power", "soc", "tctl", "temperature", "voltage"},
		cfg.RangeNames(), "Expected full default catalog")

	freq, ok := cfg.ArrayProfile("frequency")
	require.True(t, ok, "Expected frequency array profile")
	assert.Equal(t, "tolerant", string(freq.Mode), "Expected tolerant frequency profile")
	assert.Equal(t, 2, freq.Outliers, "Expected 2 outliers allowed")

	temp, ok := cfg.ArrayProfile("temperature")
	require.True(t, ok, "Expected temperature array profile")
	assert.Equal(t, "strict", string(temp.Mode), "Expected strict temperature profile")
	assert.Equal(t, 30.0, temp.MaxSpread, "Expected default temperature spread bound")
	assert.Equal(t, 35.0, temp.Mean.Low, "Expected default temperature mean lower bound")
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
interval = "500ms"
cores = 8
path = "/tmp/mock_smu"

[ranges]
temperature = [35.0, 90.0]

[arrays.frequency]
mode = "tolerant"
value = [400.0, 6000.0]
outliers = 4
`)
	t.Setenv("SMUSCAN_CONFIG", path)

	cfg, err := config.Load(nil)
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, "debug", cfg.LogLevel, "Expected log level from file")
	assert.Equal(t, 500*time.Millisecond, cfg.Interval, "Expected interval from file")
	assert.Equal(t, 8, cfg.Cores, "Expected cores from file")
	assert.Equal(t, "/tmp/mock_smu", cfg.Path, "Expected path from file")

	temps, ok := cfg.Range("temperature")
	require.True(t, ok, "Expected temperature range")
	assert.Equal(t, 35.0, temps.Low, "Expected file to override default bounds")

	// Catalog entries the file does not mention keep their defaults.
	power, ok := cfg.Range("power")
	require.True(t, ok, "Expected power range from defaults")
	assert.Equal(t, 5.0, power.Low, "Expected default power lower bound")

	freq, ok := cfg.ArrayProfile("frequency")
	require.True(t, ok, "Expected frequency profile")
	assert.Equal(t, 4, freq.Outliers, "Expected outliers from file")
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "warn"
cores = 8
`)
	t.Setenv("SMUSCAN_CONFIG", path)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log_level", config.DefaultLogLevel, "")
	flags.Int("cores", 0, "")
	require.NoError(t, flags.Parse([]string{"--log_level=debug"}), "Failed to parse flags")

	cfg, err := config.Load(flags)
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, "debug", cfg.LogLevel, "Expected flag to override file")
	assert.Equal(t, 8, cfg.Cores, "Expected unset flag to fall through to file")
}

func TestLoadInvalidFormat(t *testing.T) {
	path := writeConfig(t, "This is not a valid TOML file")
	t.Setenv("SMUSCAN_CONFIG", path)

	_, err := config.Load(nil)
	assert.Error(t, err, "Expected error for malformed config file")
}

func TestLoadInvalidRange(t *testing.T) {
	path := writeConfig(t, `
[ranges]
temperature = [95.0, 30.0]
`)
	t.Setenv("SMUSCAN_CONFIG", path)

	_, err := config.Load(nil)
	assert.Error(t, err, "Expected validation failure for inverted bounds")
}

func TestLoadInvalidArrayMode(t *testing.T) {
	path := writeConfig(t, `
[arrays.temperature]
mode = "fuzzy"
value = [25.0, 100.0]
`)
	t.Setenv("SMUSCAN_CONFIG", path)

	_, err := config.Load(nil)
	assert.Error(t, err, "Expected validation failure for unknown mode")
}

func TestLoadInvalidInterval(t *testing.T) {
	path := writeConfig(t, `interval = "0s"`)
	t.Setenv("SMUSCAN_CONFIG", path)

	_, err := config.Load(nil)
	assert.Error(t, err, "Expected validation failure for zero interval")
}
