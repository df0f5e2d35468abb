// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/tollmatrix/loader"
	"github.com/katalvlaran/tollmatrix/traffic"
)

func (a *app) runTraffic() error {
	opts := []loader.Option{loader.WithDelimiter(a.cfg.Delimiter())}

	if a.op == "time-check" {
		spans, err := loader.ReadSpans(a.in, opts...)
		if err != nil {
			a.metrics.RecordsRejected.WithLabelValues("spans").Inc()
			return err
		}
		a.metrics.RecordsLoaded.WithLabelValues("spans").Add(float64(len(spans)))
		res := traffic.TimeCheck(spans)
		a.log.Info("time check done", zap.Int("spans", len(spans)), zap.Int("pairs", len(res)))
		return loader.WriteCompleteness(a.out, res)
	}

	records, err := loader.ReadTraffic(a.in, opts...)
	if err != nil {
		a.metrics.RecordsRejected.WithLabelValues("traffic").Inc()
		return err
	}
	a.metrics.RecordsLoaded.WithLabelValues("traffic").Add(float64(len(records)))
	a.log.Info("traffic loaded", zap.Int("records", len(records)))

	switch a.op {
	case "car-matrix", "multiply":
		p, err := traffic.CarMatrix(records)
		if err != nil {
			return err
		}
		if a.op == "multiply" {
			if p, err = traffic.MultiplyMatrix(p); err != nil {
				return err
			}
		}
		a.metrics.MatrixPoints.Set(float64(len(p.IDs)))
		return loader.WriteMatrix(a.out, loader.FormatIDs(p.IDs), p.Mat)
	case "type-counts":
		return loader.WriteCounts(a.out, traffic.TypeCounts(records))
	case "bus-indexes":
		return loader.WriteColumn(a.out, "index", traffic.BusIndexes(records))
	case "filter-routes":
		return loader.WriteColumn(a.out, "route", traffic.FilterRoutes(records))
	}

	return fmt.Errorf("%w: traffic -op %q", errUsage, a.op)
}
