// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// table is a header-indexed set of string columns.
type table struct {
	cols map[string][]string
	rows int
}

// column returns the cells of a column known to exist.
func (t table) column(name string) []string { return t.cols[name] }

// readTable loads r as a string-typed dataframe and checks that every
// required column is present. Blank input or a lone header gives an empty table.
func readTable(r io.Reader, delim rune, required ...string) (table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return table{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if nonBlankLines(data, 2) < 2 {
		return table{cols: map[string][]string{}}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(delim),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return table{}, fmt.Errorf("%w: %v", ErrMalformedRecord, df.Err)
	}

	t := table{cols: make(map[string][]string, df.Ncol()), rows: df.Nrow()}
	for _, name := range df.Names() {
		t.cols[strings.TrimSpace(name)] = df.Col(name).Records()
	}
	for _, name := range required {
		if _, ok := t.cols[name]; !ok {
			return table{}, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	return t, nil
}

// nonBlankLines counts lines with content, stopping at limit.
func nonBlankLines(data []byte, limit int) int {
	n := 0
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		n++
		if n >= limit {
			break
		}
	}

	return n
}

// writeTable writes string columns, in order, as a CSV with a header row.
func writeTable(w io.Writer, names []string, cols [][]string) error {
	list := make([]series.Series, len(names))
	for i, name := range names {
		list[i] = series.New(cols[i], series.String, name)
	}
	df := dataframe.New(list...)
	if df.Err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}
