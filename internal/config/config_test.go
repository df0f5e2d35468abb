package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/tollmatrix/distance"
	"github.com/katalvlaran/tollmatrix/internal/config"
	"github.com/katalvlaran/tollmatrix/loader"
	"github.com/katalvlaran/tollmatrix/toll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tollmatrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	s, err := cfg.TollSchedule()
	require.NoError(t, err)
	assert.Equal(t, toll.DefaultSchedule(), s)
	assert.Equal(t, toll.DefaultRates(), cfg.Rates)
	assert.Equal(t, "keep", cfg.Matrix.Isolated)
	assert.Equal(t, config.IDTypeInt, cfg.Input.IDType)
}

func TestLoad_EmptyPathAndEmptyFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeFile(t, `
environment: production
log_level: debug
input:
  delimiter: ";"
  id_type: string
  columns:
    start: from
    end: to
    distance: km
matrix:
  isolated: drop
threshold:
  percent: 0.25
rates:
  - category: car
    coefficient: 2
schedule:
  - days: [Mon, Tue, Wed, Thu, Fri, Sat, Sun]
    from: "00:00:00"
    to: "23:59:59"
    factor: 1
metrics:
  textfile: /tmp/tollmatrix.prom
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []toll.Rate{{Category: "car", Coefficient: 2}}, cfg.Rates)
	assert.Equal(t, 0.25, cfg.Threshold.Percent)
	assert.Equal(t, "/tmp/tollmatrix.prom", cfg.Metrics.Textfile)

	s, err := cfg.TollSchedule()
	require.NoError(t, err)
	require.Len(t, s, 1)
	assert.Equal(t, toll.Week(), s[0].Days)
	assert.Equal(t, toll.EndOfDay, s[0].To)

	lo := loader.NewOptions(cfg.LoaderOptions()...)
	assert.Equal(t, ';', lo.Delimiter())
	assert.Equal(t, "km", lo.Columns().Distance)

	dopts, err := cfg.DistanceOptions()
	require.NoError(t, err)
	assert.Equal(t, distance.DropIsolated, distance.NewOptions(dopts...).Isolated())
	assert.Len(t, cfg.ThresholdOptions(), 1)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvEnvironment, "production")
	t.Setenv(config.EnvLogLevel, "warn")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)

	t.Setenv(config.EnvLogLevel, "loud")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "colour: blue\n",
		"bad env":       "environment: staging\n",
		"bad id type":   "input: {id_type: float}\n",
		"bad delimiter": "input: {delimiter: \";;\"}\n",
		"quote delim":   "input: {delimiter: '\"'}\n",
		"bad policy":    "matrix: {isolated: maybe}\n",
		"neg percent":   "threshold: {percent: -0.1}\n",
		"inf percent":   "threshold: {percent: .inf}\n",
		"no rates":      "rates: []\n",
		"dup rates":     "rates: [{category: car, coefficient: 1}, {category: car, coefficient: 2}]\n",
		"bad clock":     "schedule: [{days: [Mon], from: \"25:00:00\", to: \"23:59:59\", factor: 1}]\n",
		"bad day":       "schedule: [{days: [Moonday], from: \"00:00:00\", to: \"23:59:59\", factor: 1}]\n",
		"partial week":  "schedule: [{days: [Mon], from: \"00:00:00\", to: \"23:59:59\", factor: 1}]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestTollSchedule_Weekdays(t *testing.T) {
	cfg := config.Default()
	s, err := cfg.TollSchedule()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, s[3].Days)
}
