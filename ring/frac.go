// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"strings"
)

// Frac is an immutable rational expression num / (f1·f2·…·fk) over one
// ring. The denominator is kept as the ordered list of factors it was
// built from, so printing preserves the factored shape; Den multiplies
// them out.
type Frac struct {
	num *Poly
	den []*Poly
}

// NewFrac builds num / (den[0]·den[1]·…). With no factors the denominator
// is one.
//
// Errors:
//   - ErrRingMismatch   - a factor lives in a different ring than num.
//   - ErrDivisionByZero - some factor is zero.
func NewFrac(num *Poly, den ...*Poly) (*Frac, error) {
	if num == nil {
		return nil, fmt.Errorf("NewFrac: nil numerator: %w", ErrRingMismatch)
	}
	for i, d := range den {
		if d == nil || d.ring != num.ring {
			return nil, fmt.Errorf("NewFrac: factor %d: %w", i, ErrRingMismatch)
		}
		if d.IsZero() {
			return nil, fmt.Errorf("NewFrac: factor %d: %w", i, ErrDivisionByZero)
		}
	}

	return &Frac{num: num, den: append([]*Poly(nil), den...)}, nil
}

// Ring returns the ring of numerator and denominator.
func (f *Frac) Ring() *Ring { return f.num.ring }

// Num returns the numerator.
func (f *Frac) Num() *Poly { return f.num }

// Den returns the denominator, multiplied out.
func (f *Frac) Den() *Poly {
	d := f.num.ring.One()
	for _, x := range f.den {
		d = d.Mul(x)
	}

	return d
}

// Factors returns a copy of the denominator factors, in build order.
func (f *Frac) Factors() []*Poly { return append([]*Poly(nil), f.den...) }

// Neg returns -f.
func (f *Frac) Neg() *Frac {
	return &Frac{num: f.num.Neg(), den: f.den}
}

// Inv returns 1/f. The old numerator becomes the single new denominator
// factor, or no factor at all when it is one.
//
// Errors: ErrDivisionByZero when f is zero.
func (f *Frac) Inv() (*Frac, error) {
	if f.num.IsZero() {
		return nil, fmt.Errorf("Inv: %w", ErrDivisionByZero)
	}
	if f.num.IsOne() {
		return &Frac{num: f.Den()}, nil
	}

	return &Frac{num: f.Den(), den: []*Poly{f.num}}, nil
}

// Mul returns f·g, concatenating denominator factors.
//
// Errors: ErrRingMismatch when f and g live in different rings.
func (f *Frac) Mul(g *Frac) (*Frac, error) {
	if f.num.ring != g.num.ring {
		return nil, fmt.Errorf("Frac.Mul: %w", ErrRingMismatch)
	}
	den := make([]*Poly, 0, len(f.den)+len(g.den))
	den = append(den, f.den...)
	den = append(den, g.den...)

	return &Frac{num: f.num.Mul(g.num), den: den}, nil
}

// Equal reports mathematical equality: f.num·g.den == g.num·f.den.
func (f *Frac) Equal(g *Frac) bool {
	if f.num.ring != g.num.ring {
		return false
	}

	return f.num.Mul(g.Den()).Equal(g.num.Mul(f.Den()))
}

// String renders num/(f1*f2*…) keeping the factored denominator.
func (f *Frac) String() string {
	num := f.num.String()
	if len(f.den) == 0 {
		return num
	}
	if f.num.Terms() > 1 {
		num = "(" + num + ")"
	}

	parts := make([]string, len(f.den))
	for i, d := range f.den {
		s := d.String()
		if d.Terms() > 1 && len(f.den) > 1 {
			s = "(" + s + ")"
		}
		parts[i] = s
	}

	return num + "/(" + strings.Join(parts, "*") + ")"
}
