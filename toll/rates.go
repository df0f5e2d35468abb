// SPDX-License-Identifier: MIT

package toll

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/tollmatrix/distance"
)

// ErrInvalidRate reports an unusable rate table entry.
var ErrInvalidRate = errors.New("toll: invalid rate")

// Rate is the multiplicative toll coefficient of one vehicle category.
type Rate struct {
	Category    string  `yaml:"category" validate:"required"`
	Coefficient float64 `yaml:"coefficient" validate:"gte=0"`
}

// DefaultRates returns the standard per-category coefficients in column order.
func DefaultRates() []Rate {
	return []Rate{
		{Category: "moto", Coefficient: 0.8},
		{Category: "car", Coefficient: 1.2},
		{Category: "rv", Coefficient: 1.5},
		{Category: "bus", Coefficient: 2.2},
		{Category: "truck", Coefficient: 3.6},
	}
}

// ValidateRates checks names are non-empty and unique and coefficients are
// finite and non-negative. An empty table is invalid.
func ValidateRates(rates []Rate) error {
	if len(rates) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidRate)
	}
	seen := make(map[string]struct{}, len(rates))
	for i, r := range rates {
		name := strings.TrimSpace(r.Category)
		if name == "" {
			return fmt.Errorf("%w: #%d: empty category", ErrInvalidRate, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q: duplicate category", ErrInvalidRate, name)
		}
		seen[name] = struct{}{}
		if math.IsNaN(r.Coefficient) || math.IsInf(r.Coefficient, 0) || r.Coefficient < 0 {
			return fmt.Errorf("%w: %q: coefficient %g", ErrInvalidRate, name, r.Coefficient)
		}
	}

	return nil
}

// RatedRecord is an unrolled row plus one toll per category (Table.Categories order).
type RatedRecord[ID cmp.Ordered] struct {
	distance.UnrolledRecord[ID]
	Tolls []float64
}

// Table holds rated rows with their column names.
type Table[ID cmp.Ordered] struct {
	Categories []string
	Rows       []RatedRecord[ID]
}

// Toll returns the toll of row i for category, or false if either is unknown.
func (t *Table[ID]) Toll(i int, category string) (float64, bool) {
	if t == nil || i < 0 || i >= len(t.Rows) {
		return 0, false
	}
	for k, c := range t.Categories {
		if c == category {
			return t.Rows[i].Tolls[k], true
		}
	}

	return 0, false
}

// Annotate returns rows with one extra column per rate: Distance × Coefficient.
// Input rows are not modified; row order is preserved.
//
// Errors: ErrInvalidRate (see ValidateRates).
func Annotate[ID cmp.Ordered](rows []distance.UnrolledRecord[ID], rates []Rate) (*Table[ID], error) {
	if err := ValidateRates(rates); err != nil {
		return nil, err
	}

	t := &Table[ID]{
		Categories: make([]string, len(rates)),
		Rows:       make([]RatedRecord[ID], len(rows)),
	}
	for k, r := range rates {
		t.Categories[k] = strings.TrimSpace(r.Category)
	}
	for i, row := range rows {
		tolls := make([]float64, len(rates))
		for k, r := range rates {
			tolls[k] = row.Distance * r.Coefficient
		}
		t.Rows[i] = RatedRecord[ID]{UnrolledRecord: row, Tolls: tolls}
	}

	return t, nil
}
