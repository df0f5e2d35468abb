// SPDX-License-Identifier: MIT
// Package matrix - element-wise operations.
//
// Purpose:
//   - Produce a transformed copy of a matrix without mutating the input.
//   - Centralize the r×c loop so callers (e.g. traffic.MultiplyMatrix) only
//     provide the per-cell rule.
//
// Determinism:
//   - Fixed i→j order; fn is called exactly once per cell.

package matrix

const opApply = "Apply"

// Apply returns a new *Dense with out[i,j] = fn(i, j, m[i,j]).
// The result keeps the numeric policy of m when m is *Dense; otherwise the
// default policy is used. fn results are subject to that policy.
// Complexity: O(r*c).
func Apply(m Matrix, fn func(i, j int, v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}

	var out *Dense
	if d, ok := m.(*Dense); ok {
		out = d.Clone().(*Dense)
	} else {
		var err error
		if out, err = NewPreparedDense(m.Rows(), m.Cols()); err != nil {
			return nil, matrixErrorf(opApply, err)
		}
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opApply, err)
			}
			if err = out.Set(i, j, fn(i, j, v)); err != nil {
				return nil, matrixErrorf(opApply, err)
			}
		}
	}

	return out, nil
}
