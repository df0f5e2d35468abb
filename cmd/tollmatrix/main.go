// SPDX-License-Identifier: MIT

// Command tollmatrix builds distance matrices and toll tables from CSV files.
//
// Usage:
//
//	tollmatrix <command> [flags]
//
// Commands over an edge file (id_start,id_end,distance):
//
//	matrix      symmetric cumulative distance matrix
//	unroll      long-form (id_start,id_end,distance) rows
//	routes      all-pairs shortest routes over observed edges
//	threshold   ids whose mean distance is within ±percent of -ref
//	tolls       unrolled rows with one toll column per vehicle category
//	time-tolls  tolls expanded over the weekly time-window schedule
//
// Commands over a traffic file (id_1,id_2,route,moto,car,rv,bus,truck):
//
//	traffic -op car-matrix|multiply|type-counts|bus-indexes|filter-routes
//	traffic -op time-check   (span file: id,id_2,startDay,startTime,endDay,endTime)
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/tollmatrix/internal/config"
	"github.com/katalvlaran/tollmatrix/internal/telemetry"
	"github.com/katalvlaran/tollmatrix/loader"
)

// errUsage marks command-line mistakes (exit code 2).
var errUsage = errors.New("usage")

var commands = []string{"matrix", "unroll", "routes", "threshold", "tolls", "time-tolls", "traffic"}

// app is everything a command needs once flags and config are resolved.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *telemetry.Metrics
	in      io.Reader
	out     io.Writer
	ref     string
	op      string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "tollmatrix:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run parses args, wires config, logger and metrics, and dispatches.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	if len(args) == 0 || !isCommand(args[0]) {
		fmt.Fprintf(stderr, "usage: tollmatrix <%s> [flags]\n", strings.Join(commands, "|"))
		return fmt.Errorf("%w: expected a command", errUsage)
	}
	cmd := args[0]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath  = fs.String("config", "", "YAML configuration file")
		inPath   = fs.String("in", "-", "input CSV file, - for stdin")
		outPath  = fs.String("out", "-", "output CSV file, - for stdout")
		ref      = fs.String("ref", "", "reference id (threshold)")
		idType   = fs.String("id-type", "", "override input.id_type: int or string")
		percent  = fs.Float64("percent", -1, "override threshold.percent (fraction, 0.1 == 10%)")
		isolated = fs.String("isolated", "", "override matrix.isolated: keep or drop")
		env      = fs.String("env", "", "override environment: development or production")
		level    = fs.String("log-level", "", "override log_level")
		textfile = fs.String("metrics", "", "override metrics.textfile")
		op       = fs.String("op", "", "traffic operation")
	)
	if err = fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	override(&cfg.Input.IDType, *idType)
	override(&cfg.Matrix.Isolated, *isolated)
	override(&cfg.Environment, *env)
	override(&cfg.LogLevel, *level)
	override(&cfg.Metrics.Textfile, *textfile)
	if *percent >= 0 {
		cfg.Threshold.Percent = *percent
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, runID, err := telemetry.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("command", cmd))

	in, closeIn, err := openInput(*inPath, stdin)
	if err != nil {
		return err
	}
	defer closeIn()
	out, closeOut, err := openOutput(*outPath, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	a := &app{cfg: cfg, log: logger, metrics: telemetry.NewMetrics(), in: in, out: out, ref: *ref, op: *op}
	logger.Debug("run started", zap.String("run_id", runID), zap.String("in", *inPath), zap.String("out", *outPath))

	if err = a.dispatch(cmd); err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}
	if cfg.Metrics.Textfile != "" {
		if err = a.metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return err
		}
	}
	logger.Info("run finished")

	return nil
}

func (a *app) dispatch(cmd string) error {
	if cmd == "traffic" {
		return a.runTraffic()
	}
	switch a.cfg.Input.IDType {
	case config.IDTypeString:
		return runEdges[string](a, cmd, loader.ParseString)
	default:
		return runEdges[int64](a, cmd, loader.ParseInt64)
	}
}

func isCommand(s string) bool {
	for _, c := range commands {
		if c == s {
			return true
		}
	}
	return false
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" || path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
