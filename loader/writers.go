// SPDX-License-Identifier: MIT

package loader

import (
	"cmp"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tollmatrix/distance"
	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/katalvlaran/tollmatrix/toll"
	"github.com/katalvlaran/tollmatrix/traffic"
)

// FormatIDs renders ids for use as matrix labels.
func FormatIDs[ID cmp.Ordered](ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprint(id)
	}
	return out
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// WriteMatrix writes m as a labelled square table: an "id" column followed by
// one column per id. len(ids) must equal both dimensions of m.
func WriteMatrix(w io.Writer, ids []string, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("WriteMatrix: %w", err)
	}
	n := len(ids)
	if m.Rows() != n || m.Cols() != n {
		return fmt.Errorf("WriteMatrix: %d labels for %dx%d: %w", n, m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
	}

	names := append([]string{"id"}, ids...)
	cols := make([][]string, n+1)
	cols[0] = append([]string{}, ids...)
	for j := 0; j < n; j++ {
		cols[j+1] = make([]string, n)
		for i := 0; i < n; i++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("WriteMatrix: %w", err)
			}
			cols[j+1][i] = formatFloat(v)
		}
	}

	return writeTable(w, names, cols)
}

// unrolledColumns renders the three leading columns shared by all long tables.
func unrolledColumns[ID cmp.Ordered](n int, at func(int) distance.UnrolledRecord[ID]) [][]string {
	cols := [][]string{make([]string, n), make([]string, n), make([]string, n)}
	for i := 0; i < n; i++ {
		r := at(i)
		cols[0][i] = fmt.Sprint(r.Start)
		cols[1][i] = fmt.Sprint(r.End)
		cols[2][i] = formatFloat(r.Distance)
	}
	return cols
}

// WriteUnrolled writes id_start,id_end,distance rows in slice order.
func WriteUnrolled[ID cmp.Ordered](w io.Writer, rows []distance.UnrolledRecord[ID]) error {
	cols := unrolledColumns(len(rows), func(i int) distance.UnrolledRecord[ID] { return rows[i] })
	return writeTable(w, []string{DefaultStartColumn, DefaultEndColumn, DefaultDistanceColumn}, cols)
}

// WriteIDs writes a single "id" column.
func WriteIDs[ID cmp.Ordered](w io.Writer, ids []ID) error {
	return WriteColumn(w, "id", ids)
}

// WriteColumn writes vals as one column under name.
func WriteColumn[T cmp.Ordered](w io.Writer, name string, vals []T) error {
	return writeTable(w, []string{name}, [][]string{FormatIDs(vals)})
}

// WriteCounts writes type,count rows in alphabetical type order.
func WriteCounts(w io.Writer, counts map[string]int) error {
	types := traffic.SortedTypes(counts)
	ns := make([]string, len(types))
	for i, k := range types {
		ns[i] = strconv.Itoa(counts[k])
	}
	return writeTable(w, []string{"type", "count"}, [][]string{types, ns})
}

// WriteTolls writes the unrolled columns followed by one column per category.
func WriteTolls[ID cmp.Ordered](w io.Writer, t *toll.Table[ID]) error {
	if t == nil {
		t = &toll.Table[ID]{}
	}
	names := append([]string{DefaultStartColumn, DefaultEndColumn, DefaultDistanceColumn}, t.Categories...)
	cols := unrolledColumns(len(t.Rows), func(i int) distance.UnrolledRecord[ID] { return t.Rows[i].UnrolledRecord })
	for k := range t.Categories {
		col := make([]string, len(t.Rows))
		for i, r := range t.Rows {
			col[i] = formatFloat(r.Tolls[k])
		}
		cols = append(cols, col)
	}

	return writeTable(w, names, cols)
}

// WriteTimedTolls writes timed rows with start_day,start_time,end_day,end_time
// between the unrolled columns and the category columns.
func WriteTimedTolls[ID cmp.Ordered](w io.Writer, t *toll.TimedTable[ID]) error {
	if t == nil {
		t = &toll.TimedTable[ID]{}
	}
	names := append([]string{
		DefaultStartColumn, DefaultEndColumn, DefaultDistanceColumn,
		"start_day", "start_time", "end_day", "end_time",
	}, t.Categories...)
	cols := unrolledColumns(len(t.Rows), func(i int) distance.UnrolledRecord[ID] { return t.Rows[i].UnrolledRecord })

	n := len(t.Rows)
	days, from, to := make([]string, n), make([]string, n), make([]string, n)
	for i, r := range t.Rows {
		days[i] = r.Day.String()
		from[i] = r.From.String()
		to[i] = r.To.String()
	}
	cols = append(cols, days, from, days, to)
	for k := range t.Categories {
		col := make([]string, n)
		for i, r := range t.Rows {
			col[i] = formatFloat(r.Tolls[k])
		}
		cols = append(cols, col)
	}

	return writeTable(w, names, cols)
}

// WriteCompleteness writes id,id_2,incomplete rows.
func WriteCompleteness(w io.Writer, rows []traffic.Completeness) error {
	ids, ids2, flags := make([]string, len(rows)), make([]string, len(rows)), make([]string, len(rows))
	for i, r := range rows {
		ids[i] = strconv.FormatInt(r.ID, 10)
		ids2[i] = strconv.FormatInt(r.ID2, 10)
		flags[i] = strconv.FormatBool(r.Incomplete)
	}
	return writeTable(w, []string{"id", "id_2", "incomplete"}, [][]string{ids, ids2, flags})
}
