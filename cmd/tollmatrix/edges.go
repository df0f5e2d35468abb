// SPDX-License-Identifier: MIT

package main

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/tollmatrix/distance"
	"github.com/katalvlaran/tollmatrix/loader"
	"github.com/katalvlaran/tollmatrix/threshold"
	"github.com/katalvlaran/tollmatrix/toll"
)

// runEdges reads the edge file, builds the matrix and runs one edge command.
func runEdges[ID cmp.Ordered](a *app, cmd string, parse loader.IDParser[ID]) error {
	done := a.metrics.Stage("load")
	edges, err := loader.ReadEdges(a.in, parse, a.cfg.LoaderOptions()...)
	done()
	if err != nil {
		a.metrics.RecordsRejected.WithLabelValues("edges").Inc()
		return err
	}
	a.metrics.RecordsLoaded.WithLabelValues("edges").Add(float64(len(edges)))
	a.log.Info("edges loaded", zap.Int("records", len(edges)))

	opts, err := a.cfg.DistanceOptions()
	if err != nil {
		return err
	}
	done = a.metrics.Stage("build")
	m, err := distance.Build(edges, opts...)
	done()
	if err != nil {
		return err
	}
	a.metrics.MatrixPoints.Set(float64(m.Len()))
	a.log.Info("matrix built", zap.Int("points", m.Len()))

	switch cmd {
	case "matrix":
		return loader.WriteMatrix(a.out, loader.FormatIDs(m.IDs()), m.Dense())

	case "routes":
		done = a.metrics.Stage("routes")
		r, err := distance.ShortestRoutes(m)
		done()
		if err != nil {
			return err
		}
		return loader.WriteMatrix(a.out, loader.FormatIDs(r.IDs()), r.Dense())
	}

	rows := distance.Unroll(m)
	a.metrics.UnrolledRows.Add(float64(len(rows)))
	a.log.Debug("matrix unrolled", zap.Int("rows", len(rows)))

	switch cmd {
	case "unroll":
		return loader.WriteUnrolled(a.out, rows)

	case "threshold":
		if a.ref == "" {
			return fmt.Errorf("%w: threshold requires -ref", errUsage)
		}
		ref, err := parse(a.ref)
		if err != nil {
			return fmt.Errorf("%w: -ref %q: %v", errUsage, a.ref, err)
		}
		ids, err := threshold.WithinPercent(rows, ref, a.cfg.ThresholdOptions()...)
		if err != nil {
			return err
		}
		a.metrics.ThresholdMatches.Set(float64(len(ids)))
		a.log.Info("threshold matched", zap.Int("ids", len(ids)), zap.Float64("percent", a.cfg.Threshold.Percent))
		return loader.WriteIDs(a.out, ids)

	case "tolls", "time-tolls":
		tbl, err := toll.Annotate(rows, a.cfg.Rates)
		if err != nil {
			return err
		}
		if cmd == "tolls" {
			return loader.WriteTolls(a.out, tbl)
		}
		s, err := a.cfg.TollSchedule()
		if err != nil {
			return err
		}
		timed, err := toll.ApplySchedule(tbl, s)
		if err != nil {
			return err
		}
		a.log.Info("schedule applied", zap.Int("rows", len(timed.Rows)))
		return loader.WriteTimedTolls(a.out, timed)
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}
