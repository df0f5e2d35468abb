// SPDX-License-Identifier: MIT

// Package telemetry builds the CLI's logger and Prometheus metrics.
//
// Library packages (matrix, distance, threshold, toll, traffic, loader) never
// log; only cmd/tollmatrix does, through the logger returned here.
package telemetry

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidLevel reports an unparsable log level.
var ErrInvalidLevel = errors.New("telemetry: invalid log level")

// EnvProduction selects the JSON production encoder.
const EnvProduction = "production"

// NewLogger returns a zap logger tagged with a fresh run id: JSON output in
// production, console output otherwise. level is one of debug, info, warn, error.
func NewLogger(environment, level string) (*zap.Logger, string, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	var cfg zap.Config
	if environment == EnvProduction {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		return nil, "", fmt.Errorf("telemetry: build logger: %w", err)
	}
	runID := uuid.NewString()

	return logger.With(zap.String("run_id", runID)), runID, nil
}
