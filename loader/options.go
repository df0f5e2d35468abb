// SPDX-License-Identifier: MIT

package loader

import "strings"

// Default edge-file column names.
const (
	DefaultStartColumn    = "id_start"
	DefaultEndColumn      = "id_end"
	DefaultDistanceColumn = "distance"
	DefaultDelimiter      = ','
)

// Columns names the three edge-file columns.
type Columns struct {
	Start    string
	End      string
	Distance string
}

// Options configures readers. Construct via NewOptions.
type Options struct {
	columns   Columns
	delimiter rune
}

// Option mutates Options.
type Option func(*Options)

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		columns:   Columns{Start: DefaultStartColumn, End: DefaultEndColumn, Distance: DefaultDistanceColumn},
		delimiter: DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Columns returns the configured edge column names.
func (o Options) Columns() Columns { return o.columns }

// Delimiter returns the field separator.
func (o Options) Delimiter() rune { return o.delimiter }

// WithColumns overrides the edge column names.
// Panics if any name is blank.
func WithColumns(c Columns) Option {
	if strings.TrimSpace(c.Start) == "" || strings.TrimSpace(c.End) == "" || strings.TrimSpace(c.Distance) == "" {
		panic("loader: WithColumns requires non-empty start, end and distance names")
	}
	return func(o *Options) { o.columns = c }
}

// WithDelimiter sets the field separator.
// Panics on quote, carriage return or newline, which csv cannot use.
func WithDelimiter(r rune) Option {
	if r == '"' || r == '\r' || r == '\n' || r == 0 {
		panic("loader: WithDelimiter: invalid delimiter")
	}
	return func(o *Options) { o.delimiter = r }
}
