// SPDX-License-Identifier: MIT

package scattering

import (
	"fmt"

	"github.com/katalvlaran/worldsheet/ring"
)

// IndexMapper maps chords of the n-gon onto the invariant variables of a
// caller-supplied ring QQ[a1..a(n(n-3)/2)]. It is immutable and safe for
// concurrent use.
type IndexMapper struct {
	n    int
	ra   *ring.Ring
	vars []*ring.Poly
}

// NewIndexMapper binds n to the invariant ring ra.
//
// Errors:
//   - ErrTooFewPoints - n < 3.
//   - ErrNilRing      - ra is nil.
//   - ErrRingSize     - ra does not have exactly PairCount(n) variables.
func NewIndexMapper(n int, ra *ring.Ring) (*IndexMapper, error) {
	if n < minPoints {
		return nil, fmt.Errorf("NewIndexMapper: n=%d < min=%d: %w", n, minPoints, ErrTooFewPoints)
	}
	if ra == nil {
		return nil, fmt.Errorf("NewIndexMapper: %w", ErrNilRing)
	}
	if got, want := ra.NumVars(), PairCount(n); got != want {
		return nil, fmt.Errorf("NewIndexMapper: n=%d needs %d invariants, ring has %d: %w", n, want, got, ErrRingSize)
	}

	return &IndexMapper{n: n, ra: ra, vars: ra.Vars()}, nil
}

// N returns the number of points.
func (m *IndexMapper) N() int { return m.n }

// Ring returns the invariant ring.
func (m *IndexMapper) Ring() *ring.Ring { return m.ra }

// Invariant returns the variable for chord (i,j), or zero when the chord
// has none. Labels are reduced mod n, so Invariant(i, n+1) is
// Invariant(i, 1).
//
// Errors: ErrIndexOutOfRange when the flattening index leaves the
// variable array.
func (m *IndexMapper) Invariant(i, j int) (*ring.Poly, error) {
	k, ok := FlatIndex(m.n, i, j)
	if !ok {
		return m.ra.Zero(), nil
	}
	if k < 1 || k > len(m.vars) {
		return nil, fmt.Errorf("Invariant(%d,%d): index %d not in [1,%d]: %w", i, j, k, len(m.vars), ErrIndexOutOfRange)
	}

	return m.vars[k-1], nil
}

// SubsetInvariant returns s_A, the corner sum
//
//	Σ_{i<j ∈ A}  X(i,j+1) + X(i+1,j) - X(i,j) - X(i+1,j+1)
//
// over every 2-subset of A, in the invariant ring.
//
// Errors: ErrBadSubset unless labels is strictly increasing within [1,n]
// with at least two members; mapper errors are propagated.
func (m *IndexMapper) SubsetInvariant(labels []int) (*ring.Poly, error) {
	if err := validateSubset(m.n, labels, 2); err != nil {
		return nil, fmt.Errorf("SubsetInvariant: %w", err)
	}

	s := m.ra.Zero()
	for x := 0; x < len(labels); x++ {
		for y := x + 1; y < len(labels); y++ {
			i, j := labels[x], labels[y]
			corner, err := m.corner(i, j)
			if err != nil {
				return nil, fmt.Errorf("SubsetInvariant: pair (%d,%d): %w", i, j, err)
			}
			s = s.Add(corner)
		}
	}

	return s, nil
}

// corner returns X(i,j+1) + X(i+1,j) - X(i,j) - X(i+1,j+1).
func (m *IndexMapper) corner(i, j int) (*ring.Poly, error) {
	pairs := [4][2]int{{i, j + 1}, {i + 1, j}, {i, j}, {i + 1, j + 1}}
	var x [4]*ring.Poly
	for k, p := range pairs {
		v, err := m.Invariant(p[0], p[1])
		if err != nil {
			return nil, err
		}
		x[k] = v
	}

	return x[0].Add(x[1]).Sub(x[2]).Sub(x[3]), nil
}

// validateSubset checks that labels is strictly increasing within [1,n]
// and has at least minSize members.
func validateSubset(n int, labels []int, minSize int) error {
	if len(labels) < minSize {
		return fmt.Errorf("size %d < %d: %w", len(labels), minSize, ErrBadSubset)
	}
	for k, a := range labels {
		if a < 1 || a > n {
			return fmt.Errorf("label %d not in [1,%d]: %w", a, n, ErrBadSubset)
		}
		if k > 0 && labels[k-1] >= a {
			return fmt.Errorf("labels %v not strictly increasing: %w", labels, ErrBadSubset)
		}
	}

	return nil
}
