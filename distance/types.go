// SPDX-License-Identifier: MIT

package distance

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPoint indicates a lookup for an identifier that is not a row of the matrix.
var ErrUnknownPoint = errors.New("distance: unknown point id")

// ErrInvalidPolicy indicates an isolated-point policy name that cannot be parsed.
var ErrInvalidPolicy = errors.New("distance: invalid isolated-point policy")

// EdgeRecord is one directed observation of travel distance between two points.
// Several records for the same pair accumulate; they are never overwritten.
type EdgeRecord[ID cmp.Ordered] struct {
	Start    ID
	End      ID
	Distance float64
}

// UnrolledRecord is one off-diagonal cell of a Matrix in long form.
type UnrolledRecord[ID cmp.Ordered] struct {
	Start    ID
	End      ID
	Distance float64
}

// IsolatedPolicy decides what happens to points that no off-diagonal edge touches.
type IsolatedPolicy int

const (
	// KeepIsolated keeps isolated points as all-zero rows and columns.
	KeepIsolated IsolatedPolicy = iota

	// DropIsolated removes isolated points from the matrix entirely.
	DropIsolated
)

const (
	policyKeep = "keep"
	policyDrop = "drop"
)

// String returns the config spelling of the policy.
func (p IsolatedPolicy) String() string {
	switch p {
	case KeepIsolated:
		return policyKeep
	case DropIsolated:
		return policyDrop
	default:
		return fmt.Sprintf("IsolatedPolicy(%d)", int(p))
	}
}

// ParseIsolatedPolicy maps "keep"/"drop" (case-insensitive) to a policy.
// The empty string resolves to KeepIsolated.
func ParseIsolatedPolicy(s string) (IsolatedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", policyKeep:
		return KeepIsolated, nil
	case policyDrop:
		return DropIsolated, nil
	default:
		return KeepIsolated, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}
