// SPDX-License-Identifier: MIT

package scattering_test

import (
	"testing"

	"github.com/katalvlaran/worldsheet/ring"
	"github.com/katalvlaran/worldsheet/scattering"
	"github.com/stretchr/testify/require"
)

// rings builds QQ[a1..] and QQ[a1..][z2..] for n points.
func rings(t testing.TB, n int) (ra, rz *ring.Ring) {
	t.Helper()
	ra, err := ring.NewRing(ring.Sequential("a", 1, scattering.PairCount(n)))
	require.NoError(t, err)
	rz, err = ring.NewRing(ring.Sequential("z", 2, scattering.PunctureCount(n)), ring.WithBase(ra))
	require.NoError(t, err)

	return ra, rz
}

// linear returns Σ c·a_k over ra from a 1-based index → coefficient map.
func linear(ra *ring.Ring, coeffs map[int]int64) *ring.Poly {
	a := ra.Vars()
	p := ra.Zero()
	for k, c := range coeffs {
		p = p.Add(ra.Const(c).Mul(a[k-1]))
	}

	return p
}

// term is one expected monomial of a scattering equation.
type term struct {
	degrees []int
	coeffs  map[int]int64
}

// requireTerms asserts p has exactly the given terms.
func requireTerms(t *testing.T, ra *ring.Ring, p *ring.Poly, want []term) {
	t.Helper()
	require.Equal(t, len(want), p.Terms(), "term count of %v", p)
	for _, w := range want {
		c, err := p.Coefficient(w.degrees)
		require.NoError(t, err)
		require.True(t, c.Equal(linear(ra, w.coeffs)), "coefficient of %v in %v: got %v", w.degrees, p, c)
	}
}
