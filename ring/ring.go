// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"strconv"
)

// Ring is a multivariate polynomial ring with named indeterminates over
// QQ or over another Ring. Rings are compared by identity: two rings built
// from the same names are distinct rings, and Ring.Cast converts between
// them where that is meaningful.
//
// A Ring is immutable after NewRing and safe for concurrent use.
type Ring struct {
	names []string
	index map[string]int
	base  *Ring
}

// NewRing builds a ring with the given indeterminates, in order.
// Zero indeterminates are allowed: such a ring is isomorphic to its
// coefficient ring.
//
// Errors:
//   - ErrEmptyName      - some name is "".
//   - ErrDuplicateName  - a name repeats, here or anywhere in the base chain.
//   - ErrOptionViolation - an invalid Option was supplied.
func NewRing(names []string, opts ...Option) (*Ring, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &Ring{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
		base:  o.base,
	}
	for i, name := range r.names {
		if name == "" {
			return nil, fmt.Errorf("NewRing: position %d: %w", i, ErrEmptyName)
		}
		if _, dup := r.index[name]; dup {
			return nil, fmt.Errorf("NewRing: %q: %w", name, ErrDuplicateName)
		}
		for b := r.base; b != nil; b = b.base {
			if _, dup := b.index[name]; dup {
				return nil, fmt.Errorf("NewRing: %q shadows a base variable: %w", name, ErrDuplicateName)
			}
		}
		r.index[name] = i
	}

	return r, nil
}

// Sequential returns count names prefix+first, prefix+(first+1), ...
// e.g. Sequential("z", 2, 3) = [z2 z3 z4]. A non-positive count yields an
// empty slice.
func Sequential(prefix string, first, count int) []string {
	if count <= 0 {
		return []string{}
	}
	out := make([]string, count)
	for i := range out {
		out[i] = prefix + strconv.Itoa(first+i)
	}

	return out
}

// NumVars returns the number of indeterminates of r (not counting base).
func (r *Ring) NumVars() int { return len(r.names) }

// Names returns a copy of the indeterminate names, in order.
func (r *Ring) Names() []string { return append([]string(nil), r.names...) }

// Base returns the coefficient ring, or nil when coefficients are in QQ.
func (r *Ring) Base() *Ring { return r.base }

// Zero returns the additive identity of r.
func (r *Ring) Zero() *Poly { return r.newPoly() }

// One returns the multiplicative identity of r.
func (r *Ring) One() *Poly { return r.Const(1) }

// Const returns the constant polynomial c.
func (r *Ring) Const(c int64) *Poly {
	return r.ConstRat(new(big.Rat).SetInt64(c))
}

// ConstRat returns the constant polynomial q. q is copied.
func (r *Ring) ConstRat(q *big.Rat) *Poly {
	p := r.newPoly()
	p.addTerm(make([]int, len(r.names)), r.liftRat(q))

	return p
}

// Vars returns the indeterminates of r as polynomials, in order.
func (r *Ring) Vars() []*Poly {
	out := make([]*Poly, len(r.names))
	for i := range r.names {
		exp := make([]int, len(r.names))
		exp[i] = 1
		p := r.newPoly()
		p.addTerm(exp, r.liftRat(big.NewRat(1, 1)))
		out[i] = p
	}

	return out
}

// Var returns the indeterminate called name.
func (r *Ring) Var(name string) (*Poly, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("Var: %q: %w", name, ErrUnknownVariable)
	}

	return r.Vars()[i], nil
}

// Monomial returns the monomial with the given degree vector, one entry per
// indeterminate of r, with coefficient one.
//
// Errors: ErrDegreeVector on a length mismatch or a negative degree.
func (r *Ring) Monomial(degrees []int) (*Poly, error) {
	if len(degrees) != len(r.names) {
		return nil, fmt.Errorf("Monomial: len=%d, want %d: %w", len(degrees), len(r.names), ErrDegreeVector)
	}
	for i, d := range degrees {
		if d < 0 {
			return nil, fmt.Errorf("Monomial: degree[%d]=%d: %w", i, d, ErrDegreeVector)
		}
	}
	p := r.newPoly()
	p.addTerm(degrees, r.liftRat(big.NewRat(1, 1)))

	return p, nil
}

// Cast embeds p into r. Supported embeddings:
//   - p already belongs to r (returned as is; values are immutable);
//   - p belongs to the base chain of r (becomes a constant coefficient);
//   - p belongs to a ring over QQ with exactly r's names (rational
//     coefficients are lifted into r's coefficient ring).
//
// Anything else returns ErrRingMismatch.
func (r *Ring) Cast(p *Poly) (*Poly, error) {
	if p == nil {
		return nil, fmt.Errorf("Cast: nil polynomial: %w", ErrRingMismatch)
	}
	if p.ring == r {
		return p, nil
	}
	if r.base != nil && r.base.reaches(p.ring) {
		c, err := r.base.Cast(p)
		if err != nil {
			return nil, err
		}
		out := r.newPoly()
		out.addTerm(make([]int, len(r.names)), coef{p: c})

		return out, nil
	}
	if p.ring.base == nil && sameNames(p.ring.names, r.names) {
		out := r.newPoly()
		for _, t := range p.terms {
			out.addTerm(t.exp, r.liftRat(t.c.q))
		}

		return out, nil
	}

	return nil, fmt.Errorf("Cast: from [%v] into [%v]: %w", p.ring, r, ErrRingMismatch)
}

// String lists the indeterminates, then the coefficient ring.
func (r *Ring) String() string {
	s := "QQ"
	if r.base != nil {
		s = r.base.String()
	}
	if len(r.names) == 0 {
		return s
	}
	out := s + "["
	for i, n := range r.names {
		if i > 0 {
			out += ","
		}
		out += n
	}

	return out + "]"
}

// reaches reports whether s is r or lies in r's base chain.
func (r *Ring) reaches(s *Ring) bool {
	for b := r; b != nil; b = b.base {
		if b == s {
			return true
		}
	}

	return false
}

// liftRat turns a rational into a coefficient of r.
func (r *Ring) liftRat(q *big.Rat) coef {
	if r.base == nil {
		return coef{q: new(big.Rat).Set(q)}
	}

	return coef{p: r.base.ConstRat(q)}
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
