// SPDX-License-Identifier: MIT

package loader

import (
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/tollmatrix/toll"
	"github.com/katalvlaran/tollmatrix/traffic"
)

// Traffic and span file columns.
var (
	trafficColumns = []string{"id_1", "id_2", "route", "moto", "car", "rv", "bus", "truck"}
	spanColumns    = []string{"id", "id_2", "startDay", "startTime", "endDay", "endTime"}
)

// trafficRow is the validated shape of one vehicle-count line.
type trafficRow struct {
	Route string  `validate:"required"`
	Moto  float64 `validate:"gte=0"`
	Car   float64 `validate:"gte=0"`
	RV    float64 `validate:"gte=0"`
	Bus   float64 `validate:"gte=0"`
	Truck float64 `validate:"gte=0"`
}

// ReadTraffic reads id_1,id_2,route,moto,car,rv,bus,truck rows.
// Extra columns are ignored.
func ReadTraffic(r io.Reader, opts ...Option) ([]traffic.Record, error) {
	o := NewOptions(opts...)
	t, err := readTable(r, o.Delimiter(), trafficColumns...)
	if err != nil {
		return nil, err
	}

	out := make([]traffic.Record, 0, t.rows)
	counts := make([]float64, 5)
	for i := 0; i < t.rows; i++ {
		row := i + 1
		id1, err := parseID(row, "id_1", t.column("id_1")[i])
		if err != nil {
			return nil, err
		}
		id2, err := parseID(row, "id_2", t.column("id_2")[i])
		if err != nil {
			return nil, err
		}
		for k, name := range trafficColumns[3:] {
			if counts[k], err = parseCount(row, name, t.column(name)[i]); err != nil {
				return nil, err
			}
		}
		tr := trafficRow{
			Route: strings.TrimSpace(t.column("route")[i]),
			Moto:  counts[0], Car: counts[1], RV: counts[2], Bus: counts[3], Truck: counts[4],
		}
		if err = checkRow(row, tr); err != nil {
			return nil, err
		}
		out = append(out, traffic.Record{
			ID1: id1, ID2: id2, Route: tr.Route,
			Moto: tr.Moto, Car: tr.Car, RV: tr.RV, Bus: tr.Bus, Truck: tr.Truck,
		})
	}

	return out, nil
}

// ReadSpans reads id,id_2,startDay,startTime,endDay,endTime rows.
// Days accept full or three-letter English names; times are HH:MM:SS.
func ReadSpans(r io.Reader, opts ...Option) ([]traffic.Span, error) {
	o := NewOptions(opts...)
	t, err := readTable(r, o.Delimiter(), spanColumns...)
	if err != nil {
		return nil, err
	}

	out := make([]traffic.Span, 0, t.rows)
	for i := 0; i < t.rows; i++ {
		row := i + 1
		var s traffic.Span
		if s.ID, err = parseID(row, "id", t.column("id")[i]); err != nil {
			return nil, err
		}
		if s.ID2, err = parseID(row, "id_2", t.column("id_2")[i]); err != nil {
			return nil, err
		}
		if s.StartDay, err = parseDay(row, "startDay", t.column("startDay")[i]); err != nil {
			return nil, err
		}
		if s.EndDay, err = parseDay(row, "endDay", t.column("endDay")[i]); err != nil {
			return nil, err
		}
		if s.StartTime, err = parseClock(row, "startTime", t.column("startTime")[i]); err != nil {
			return nil, err
		}
		if s.EndTime, err = parseClock(row, "endTime", t.column("endTime")[i]); err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func parseID(row int, field, cell string) (int64, error) {
	s := strings.TrimSpace(cell)
	v, err := ParseInt64(s)
	if err != nil {
		return 0, malformed(row, field, "not an integer id: %q", s)
	}
	return v, nil
}

func parseDay(row int, field, cell string) (time.Weekday, error) {
	d, err := toll.ParseWeekday(cell)
	if err != nil {
		return 0, malformed(row, field, "%v", err)
	}
	return d, nil
}

func parseClock(row int, field, cell string) (toll.Clock, error) {
	c, err := toll.ParseClock(strings.TrimSpace(cell))
	if err != nil {
		return 0, malformed(row, field, "%v", err)
	}
	return c, nil
}
