// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Poly is an immutable sparse polynomial in a Ring.
// The zero value is not usable; obtain polynomials from a Ring.
type Poly struct {
	ring  *Ring
	terms map[string]term
}

// term is one monomial: exponent vector over the owning ring's
// indeterminates and a non-zero coefficient.
type term struct {
	exp []int
	c   coef
}

// coef is a coefficient of a term: q is set when the owning ring is over
// QQ, p (an element of the base ring) otherwise.
type coef struct {
	q *big.Rat
	p *Poly
}

func (r *Ring) newPoly() *Poly {
	return &Poly{ring: r, terms: make(map[string]term)}
}

// Ring returns the ring p belongs to.
func (p *Poly) Ring() *Ring { return p.ring }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.terms) == 0 }

// Terms returns the number of non-zero terms of p over its own
// indeterminates (nested coefficients count as one term).
func (p *Poly) Terms() int { return len(p.terms) }

// TotalDegree returns the largest total degree of a term in p's own
// indeterminates, or -1 for the zero polynomial.
func (p *Poly) TotalDegree() int {
	deg := -1
	for _, t := range p.terms {
		if d := sum(t.exp); d > deg {
			deg = d
		}
	}

	return deg
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	p.mustShare(q)
	out := p.clone()
	for _, t := range q.terms {
		out.addTerm(t.exp, t.c)
	}

	return out
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	p.mustShare(q)
	out := p.clone()
	for _, t := range q.terms {
		out.addTerm(t.exp, p.ring.negCoef(t.c))
	}

	return out
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	out := p.ring.newPoly()
	for k, t := range p.terms {
		out.terms[k] = term{exp: t.exp, c: p.ring.negCoef(t.c)}
	}

	return out
}

// Mul returns p * q.
func (p *Poly) Mul(q *Poly) *Poly {
	p.mustShare(q)
	out := p.ring.newPoly()
	for _, a := range p.terms {
		for _, b := range q.terms {
			exp := make([]int, len(a.exp))
			for i := range exp {
				exp[i] = a.exp[i] + b.exp[i]
			}
			out.addTerm(exp, p.ring.mulCoef(a.c, b.c))
		}
	}

	return out
}

// Equal reports whether p and q are the same element of the same ring.
func (p *Poly) Equal(q *Poly) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.ring != q.ring || len(p.terms) != len(q.terms) {
		return false
	}
	for k, a := range p.terms {
		b, ok := q.terms[k]
		if !ok || !p.ring.equalCoef(a.c, b.c) {
			return false
		}
	}

	return true
}

// IsOne reports whether p is the multiplicative identity.
func (p *Poly) IsOne() bool {
	return p.Equal(p.ring.One())
}

// Coefficient returns the coefficient of the monomial with the given
// degree vector, as an element of the base ring (zero if absent).
//
// Errors: ErrDegreeVector for a bad vector; ErrNoBase when p's ring is over
// QQ (use RatCoefficient).
func (p *Poly) Coefficient(degrees []int) (*Poly, error) {
	if p.ring.base == nil {
		return nil, fmt.Errorf("Coefficient: ring %v is over QQ: %w", p.ring, ErrNoBase)
	}
	k, err := p.keyOf(degrees)
	if err != nil {
		return nil, err
	}
	t, ok := p.terms[k]
	if !ok {
		return p.ring.base.Zero(), nil
	}

	return t.c.p, nil
}

// RatCoefficient returns the rational coefficient of the monomial with the
// given degree vector (zero if absent).
//
// Errors: ErrDegreeVector for a bad vector; ErrNoBase when p's ring is
// nested (use Coefficient).
func (p *Poly) RatCoefficient(degrees []int) (*big.Rat, error) {
	if p.ring.base != nil {
		return nil, fmt.Errorf("RatCoefficient: ring %v is nested: %w", p.ring, ErrNoBase)
	}
	k, err := p.keyOf(degrees)
	if err != nil {
		return nil, err
	}
	t, ok := p.terms[k]
	if !ok {
		return new(big.Rat), nil
	}

	return new(big.Rat).Set(t.c.q), nil
}

// Variables returns the names of the indeterminates that actually occur in
// p: first those of p's ring in ring order, then those of the base chain
// (through the coefficients), each in its ring's order.
func (p *Poly) Variables() []string {
	var out []string
	seen := make([]bool, len(p.ring.names))
	for _, t := range p.terms {
		for i, e := range t.exp {
			if e > 0 {
				seen[i] = true
			}
		}
	}
	for i, ok := range seen {
		if ok {
			out = append(out, p.ring.names[i])
		}
	}
	if p.ring.base == nil {
		return out
	}

	used := make(map[string]bool)
	for _, t := range p.terms {
		for _, name := range t.c.p.Variables() {
			used[name] = true
		}
	}
	for b := p.ring.base; b != nil; b = b.base {
		for _, name := range b.names {
			if used[name] {
				out = append(out, name)
			}
		}
	}

	return out
}

// addTerm accumulates c·x^exp into p in place. Only used while p is being
// built, before it escapes.
func (p *Poly) addTerm(exp []int, c coef) {
	if p.ring.isZeroCoef(c) {
		return
	}
	k := expKey(exp)
	if t, ok := p.terms[k]; ok {
		s := p.ring.addCoef(t.c, c)
		if p.ring.isZeroCoef(s) {
			delete(p.terms, k)
			return
		}
		p.terms[k] = term{exp: t.exp, c: s}
		return
	}
	p.terms[k] = term{exp: append([]int(nil), exp...), c: c}
}

func (p *Poly) clone() *Poly {
	out := p.ring.newPoly()
	for k, t := range p.terms {
		out.terms[k] = t
	}

	return out
}

func (p *Poly) mustShare(q *Poly) {
	if p == nil || q == nil {
		panic(panicNilOperand)
	}
	if p.ring != q.ring {
		panic(panicRingMismatch)
	}
}

func (p *Poly) keyOf(degrees []int) (string, error) {
	if len(degrees) != len(p.ring.names) {
		return "", fmt.Errorf("len=%d, want %d: %w", len(degrees), len(p.ring.names), ErrDegreeVector)
	}
	for i, d := range degrees {
		if d < 0 {
			return "", fmt.Errorf("degree[%d]=%d: %w", i, d, ErrDegreeVector)
		}
	}

	return expKey(degrees), nil
}

// ---------- coefficient arithmetic (dispatch on the coefficient level) ----------

func (r *Ring) isZeroCoef(c coef) bool {
	if r.base == nil {
		return c.q.Sign() == 0
	}

	return c.p.IsZero()
}

func (r *Ring) addCoef(a, b coef) coef {
	if r.base == nil {
		return coef{q: new(big.Rat).Add(a.q, b.q)}
	}

	return coef{p: a.p.Add(b.p)}
}

func (r *Ring) mulCoef(a, b coef) coef {
	if r.base == nil {
		return coef{q: new(big.Rat).Mul(a.q, b.q)}
	}

	return coef{p: a.p.Mul(b.p)}
}

func (r *Ring) negCoef(a coef) coef {
	if r.base == nil {
		return coef{q: new(big.Rat).Neg(a.q)}
	}

	return coef{p: a.p.Neg()}
}

func (r *Ring) equalCoef(a, b coef) bool {
	if r.base == nil {
		return a.q.Cmp(b.q) == 0
	}

	return a.p.Equal(b.p)
}

func expKey(exp []int) string {
	var sb strings.Builder
	for i, e := range exp {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}
