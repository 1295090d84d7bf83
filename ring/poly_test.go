// SPDX-License-Identifier: MIT

package ring_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/worldsheet/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPoly_Arithmetic checks the ring laws on a few concrete values.
func TestPoly_Arithmetic(t *testing.T) {
	r, err := ring.NewRing([]string{"x", "y"})
	require.NoError(t, err)
	v := r.Vars()
	x, y := v[0], v[1]

	sum := x.Add(y)
	assert.True(t, sum.Equal(y.Add(x)), "addition commutes")
	assert.True(t, sum.Sub(y).Equal(x))
	assert.True(t, x.Sub(x).IsZero(), "x - x cancels to zero")
	assert.True(t, x.Add(x.Neg()).IsZero())

	sq := sum.Mul(sum)
	want := x.Mul(x).Add(r.Const(2).Mul(x).Mul(y)).Add(y.Mul(y))
	assert.True(t, sq.Equal(want), "(x+y)^2")
	assert.Equal(t, 2, sq.TotalDegree())
	assert.Equal(t, 3, sq.Terms())

	assert.True(t, x.Mul(r.One()).Equal(x))
	assert.True(t, x.Mul(r.Zero()).IsZero())
	assert.Equal(t, -1, r.Zero().TotalDegree())
}

// TestPoly_ImmutableOperands verifies operations never mutate inputs.
func TestPoly_ImmutableOperands(t *testing.T) {
	r, err := ring.NewRing([]string{"x"})
	require.NoError(t, err)
	x := r.Vars()[0]
	before := x.String()

	_ = x.Add(r.Const(5))
	_ = x.Sub(x)
	_ = x.Mul(x)
	_ = x.Neg()
	assert.Equal(t, before, x.String())
}

// TestPoly_MixedRingsPanic documents that cross-ring arithmetic is a
// programmer error.
func TestPoly_MixedRingsPanic(t *testing.T) {
	r1, err := ring.NewRing([]string{"x"})
	require.NoError(t, err)
	r2, err := ring.NewRing([]string{"x"})
	require.NoError(t, err)

	assert.Panics(t, func() { r1.Vars()[0].Add(r2.Vars()[0]) })
	assert.Panics(t, func() { r1.Vars()[0].Mul(nil) })
	assert.False(t, r1.Vars()[0].Equal(r2.Vars()[0]), "equal names, distinct rings")
}

// TestPoly_String covers canonical rendering over QQ and nested rings.
func TestPoly_String(t *testing.T) {
	ra, rz := nested(t)
	a := ra.Vars()
	z := rz.Vars()

	tests := []struct {
		name string
		got  *ring.Poly
		want string
	}{
		{"zero", rz.Zero(), "0"},
		{"one", rz.One(), "1"},
		{"rational", ra.ConstRat(big.NewRat(-3, 2)), "-3/2"},
		{"flat", a[1].Sub(a[0]).Sub(ra.Const(1)), "-a1 + a2 - 1"},
		{"power", a[0].Mul(a[0]).Mul(a[1]), "a1^2*a2"},
		{"scaled", ra.Const(2).Mul(a[0]), "2*a1"},
		{"nested unit", z[0].Mul(z[1]), "z2*z3"},
		{"nested minus", z[0].Neg(), "-z2"},
		{"nested mono coef", mustCast(t, rz, a[0]).Mul(z[0]), "a1*z2"},
		{"nested sum coef", mustCast(t, rz, a[0].Add(a[1]).Neg()).Mul(z[0]).Add(mustCast(t, rz, a[0])), "(-a1 - a2)*z2 + a1"},
		{"degree order", z[1].Add(z[0].Mul(z[1])).Add(z[0]), "z2*z3 + z2 + z3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got.String())
		})
	}
}

// TestPoly_Variables reports only occurring names, own ring first.
func TestPoly_Variables(t *testing.T) {
	ra, rz := nested(t)
	a := ra.Vars()
	z := rz.Vars()

	p := mustCast(t, rz, a[1]).Mul(z[1]).Add(rz.Const(4))
	assert.Equal(t, []string{"z3", "a2"}, p.Variables())
	assert.Empty(t, rz.Const(4).Variables())
}

// TestPoly_Coefficients reads coefficients at both levels.
func TestPoly_Coefficients(t *testing.T) {
	ra, rz := nested(t)
	a := ra.Vars()
	z := rz.Vars()

	p := mustCast(t, rz, a[0].Sub(a[1])).Mul(z[0])
	c, err := p.Coefficient([]int{1, 0})
	require.NoError(t, err)
	assert.True(t, c.Equal(a[0].Sub(a[1])))

	c, err = p.Coefficient([]int{0, 1})
	require.NoError(t, err)
	assert.True(t, c.IsZero())

	_, err = p.Coefficient([]int{1})
	assert.ErrorIs(t, err, ring.ErrDegreeVector)
	_, err = p.RatCoefficient([]int{1, 0})
	assert.ErrorIs(t, err, ring.ErrNoBase)

	q, err := ra.Const(7).Add(a[0]).RatCoefficient([]int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, q.Cmp(big.NewRat(7, 1)))
	_, err = a[0].Coefficient([]int{1, 0})
	assert.ErrorIs(t, err, ring.ErrNoBase)
}

// TestPoly_Fingerprint ties fingerprints to structure and ring shape.
func TestPoly_Fingerprint(t *testing.T) {
	r, err := ring.NewRing([]string{"x", "y"})
	require.NoError(t, err)
	v := r.Vars()

	p1 := v[0].Add(v[1]).Mul(v[0])
	p2 := v[0].Mul(v[0]).Add(v[1].Mul(v[0]))
	assert.Equal(t, p1.Fingerprint(), p2.Fingerprint(), "same element, different construction")
	assert.NotEqual(t, p1.Fingerprint(), v[0].Fingerprint())

	other, err := ring.NewRing([]string{"x"})
	require.NoError(t, err)
	assert.NotEqual(t, other.Vars()[0].Fingerprint(), v[0].Fingerprint(), "ring shape participates")
}

func mustCast(t *testing.T, r *ring.Ring, p *ring.Poly) *ring.Poly {
	t.Helper()
	out, err := r.Cast(p)
	require.NoError(t, err)

	return out
}
