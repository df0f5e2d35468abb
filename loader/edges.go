// SPDX-License-Identifier: MIT

package loader

import (
	"cmp"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/tollmatrix/distance"
)

// IDParser converts one trimmed cell into a point identifier.
type IDParser[ID cmp.Ordered] func(string) (ID, error)

// ParseInt64 parses decimal integer ids such as 1001400.
func ParseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

// ParseString accepts any non-empty cell as an id.
func ParseString(s string) (string, error) { return s, nil }

// edgeRow is the validated shape of one edge line.
type edgeRow struct {
	Start    string  `validate:"required"`
	End      string  `validate:"required"`
	Distance float64 `validate:"gte=0"`
}

// ReadEdges reads (start, end, distance) rows in input order.
//
// Errors:
//   - ErrMissingColumn if a configured column is absent from the header.
//   - ErrMalformedRecord for an empty id, an id parse failure, or a distance
//     that is not a finite number >= 0.
//   - ErrRead if r fails.
func ReadEdges[ID cmp.Ordered](r io.Reader, parse IDParser[ID], opts ...Option) ([]distance.EdgeRecord[ID], error) {
	o := NewOptions(opts...)
	c := o.Columns()
	t, err := readTable(r, o.Delimiter(), c.Start, c.End, c.Distance)
	if err != nil {
		return nil, err
	}

	out := make([]distance.EdgeRecord[ID], 0, t.rows)
	starts, ends, dists := t.column(c.Start), t.column(c.End), t.column(c.Distance)
	for i := 0; i < t.rows; i++ {
		row := i + 1
		d, err := parseCount(row, "distance", dists[i])
		if err != nil {
			return nil, err
		}
		er := edgeRow{Start: strings.TrimSpace(starts[i]), End: strings.TrimSpace(ends[i]), Distance: d}
		if err = checkRow(row, er); err != nil {
			return nil, err
		}
		a, err := parse(er.Start)
		if err != nil {
			return nil, malformed(row, "start", "%q: %v", er.Start, err)
		}
		b, err := parse(er.End)
		if err != nil {
			return nil, malformed(row, "end", "%q: %v", er.End, err)
		}
		out = append(out, distance.EdgeRecord[ID]{Start: a, End: b, Distance: d})
	}

	return out, nil
}

// parseCount parses a finite float; the sign is left to tag validation.
func parseCount(row int, field, cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, malformed(row, field, "is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, malformed(row, field, "not a number: %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, malformed(row, field, "not finite: %q", s)
	}

	return v, nil
}
