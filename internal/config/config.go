// SPDX-License-Identifier: MIT

// Package config loads the tollmatrix YAML configuration.
//
// Load order, lowest to highest priority:
//  1. Default() values;
//  2. the YAML file given to Load (unknown keys are rejected);
//  3. TOLLMATRIX_ENV / TOLLMATRIX_LOG_LEVEL environment variables.
//
// The merged result is validated before it is returned; CLI flags are applied
// by the caller afterwards.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tollmatrix/distance"
	"github.com/katalvlaran/tollmatrix/loader"
	"github.com/katalvlaran/tollmatrix/threshold"
	"github.com/katalvlaran/tollmatrix/toll"
)

// ErrInvalidConfig wraps every load, parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables that override file values.
const (
	EnvEnvironment = "TOLLMATRIX_ENV"
	EnvLogLevel    = "TOLLMATRIX_LOG_LEVEL"
)

// ID types accepted by input.id_type.
const (
	IDTypeInt    = "int"
	IDTypeString = "string"
)

// Config is the root document.
type Config struct {
	Environment string      `yaml:"environment" validate:"oneof=development production"`
	LogLevel    string      `yaml:"log_level" validate:"oneof=debug info warn error"`
	Input       Input       `yaml:"input"`
	Matrix      Matrix      `yaml:"matrix"`
	Threshold   Threshold   `yaml:"threshold"`
	Rates       []toll.Rate `yaml:"rates" validate:"required,min=1,dive"`
	Schedule    []Window    `yaml:"schedule" validate:"required,min=1,dive"`
	Metrics     Metrics     `yaml:"metrics"`
}

// Input describes the edge file.
type Input struct {
	Delimiter string  `yaml:"delimiter" validate:"len=1"`
	Columns   Columns `yaml:"columns"`
	IDType    string  `yaml:"id_type" validate:"oneof=int string"`
}

// Columns names the edge-file columns.
type Columns struct {
	Start    string `yaml:"start" validate:"required"`
	End      string `yaml:"end" validate:"required"`
	Distance string `yaml:"distance" validate:"required"`
}

// Matrix holds build settings.
type Matrix struct {
	Isolated string `yaml:"isolated" validate:"oneof=keep drop"`
}

// Threshold holds the ± fraction for the threshold command.
type Threshold struct {
	Percent float64 `yaml:"percent" validate:"gte=0"`
}

// Window is the YAML form of toll.Window; days are weekday names.
type Window struct {
	Days   []string   `yaml:"days" validate:"required,min=1,dive,required"`
	From   toll.Clock `yaml:"from"`
	To     toll.Clock `yaml:"to"`
	Factor float64    `yaml:"factor" validate:"gte=0"`
}

// Metrics configures the optional Prometheus textfile export.
type Metrics struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Environment: "development",
		LogLevel:    "info",
		Input: Input{
			Delimiter: string(loader.DefaultDelimiter),
			Columns: Columns{
				Start:    loader.DefaultStartColumn,
				End:      loader.DefaultEndColumn,
				Distance: loader.DefaultDistanceColumn,
			},
			IDType: IDTypeInt,
		},
		Matrix:    Matrix{Isolated: distance.DefaultIsolated.String()},
		Threshold: Threshold{Percent: threshold.DefaultPercent},
		Rates:     toll.DefaultRates(),
	}
	for _, w := range toll.DefaultSchedule() {
		days := make([]string, len(w.Days))
		for i, d := range w.Days {
			days[i] = d.String()
		}
		cfg.Schedule = append(cfg.Schedule, Window{Days: days, From: w.From, To: w.To, Factor: w.Factor})
	}

	return cfg
}

// Load reads path over Default(), applies environment overrides and validates.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		defer f.Close()
		if err = decode(f, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode strictly unmarshals r onto cfg. An empty document leaves cfg as is.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvEnvironment)); v != "" {
		c.Environment = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags, then the semantic rules of rates and schedule.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if d := c.Delimiter(); d == 0 || d == '"' || d == '\r' || d == '\n' {
		return fmt.Errorf("%w: input.delimiter %q is not usable", ErrInvalidConfig, d)
	}
	if math.IsInf(c.Threshold.Percent, 0) {
		return fmt.Errorf("%w: threshold.percent must be finite", ErrInvalidConfig)
	}
	if err := toll.ValidateRates(c.Rates); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	s, err := c.TollSchedule()
	if err != nil {
		return err
	}
	if err = s.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// TollSchedule converts the YAML windows into a toll.Schedule.
func (c *Config) TollSchedule() (toll.Schedule, error) {
	out := make(toll.Schedule, len(c.Schedule))
	for i, w := range c.Schedule {
		out[i] = toll.Window{From: w.From, To: w.To, Factor: w.Factor}
		for _, name := range w.Days {
			d, err := toll.ParseWeekday(name)
			if err != nil {
				return nil, fmt.Errorf("%w: schedule[%d]: %w", ErrInvalidConfig, i, err)
			}
			out[i].Days = append(out[i].Days, d)
		}
	}

	return out, nil
}

// Delimiter returns input.delimiter as a rune.
func (c *Config) Delimiter() rune { return []rune(c.Input.Delimiter)[0] }

// LoaderOptions maps the input section onto loader options.
func (c *Config) LoaderOptions() []loader.Option {
	return []loader.Option{
		loader.WithDelimiter(c.Delimiter()),
		loader.WithColumns(loader.Columns{
			Start:    c.Input.Columns.Start,
			End:      c.Input.Columns.End,
			Distance: c.Input.Columns.Distance,
		}),
	}
}

// DistanceOptions maps the matrix section onto build options.
func (c *Config) DistanceOptions() ([]distance.Option, error) {
	p, err := distance.ParseIsolatedPolicy(c.Matrix.Isolated)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return []distance.Option{distance.WithIsolated(p)}, nil
}

// ThresholdOptions maps the threshold section onto WithinPercent options.
func (c *Config) ThresholdOptions() []threshold.Option {
	return []threshold.Option{threshold.WithPercent(c.Threshold.Percent)}
}
