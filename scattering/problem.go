// SPDX-License-Identifier: MIT

package scattering

import (
	"fmt"

	"github.com/katalvlaran/worldsheet/ring"
	"golang.org/x/crypto/sha3"
)

// Problem is the complete input of a pushforward of the worldsheet
// associahedron form through the scattering equations: ideal generators,
// the form, and the rings they live in.
type Problem struct {
	// N is the number of points.
	N int

	// InvariantRing is QQ[a1..a(n(n-3)/2)].
	InvariantRing *ring.Ring

	// IdealRing is InvariantRing[z2..z(n-2)]; Ideal lives here.
	IdealRing *ring.Ring

	// FormRing is QQ[z2..z(n-2)] with the same names as IdealRing; Form
	// lives here and IdealRing.Cast lifts it.
	FormRing *ring.Ring

	// Ideal holds P_1..P_(n-3).
	Ideal []*ring.Poly

	// Form is the associahedron prefactor.
	Form *ring.Frac

	// FormVars are the positions in FormRing of the differentials
	// dz2 ∧ … ∧ dz(n-2): always 0..n-4.
	FormVars []int
}

// NewABHY builds the rings with conventional names (a1.., z2..), the
// scattering equations, and the prefactor for n points.
//
// Errors:
//   - ErrTooFewPoints    - n < 4.
//   - ErrOptionViolation - invalid Option.
//   - ring errors from naming collisions (e.g. equal prefixes).
func NewABHY(n int, opts ...Option) (*Problem, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if n < minPuncturePoints {
		return nil, fmt.Errorf("NewABHY: n=%d < min=%d: %w", n, minPuncturePoints, ErrTooFewPoints)
	}

	zNames := ring.Sequential(o.PuncturePrefix, 2, PunctureCount(n))
	ra, err := ring.NewRing(ring.Sequential(o.InvariantPrefix, 1, PairCount(n)))
	if err != nil {
		return nil, fmt.Errorf("NewABHY: invariant ring: %w", err)
	}
	rzA, err := ring.NewRing(zNames, ring.WithBase(ra))
	if err != nil {
		return nil, fmt.Errorf("NewABHY: ideal ring: %w", err)
	}
	rz, err := ring.NewRing(zNames)
	if err != nil {
		return nil, fmt.Errorf("NewABHY: form ring: %w", err)
	}

	ideal, err := ScatteringEquations(n, rzA, ra, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewABHY: %w", err)
	}
	form, err := Prefactor(n, rz.Vars())
	if err != nil {
		return nil, fmt.Errorf("NewABHY: %w", err)
	}

	formVars := make([]int, PunctureCount(n))
	for i := range formVars {
		formVars[i] = i
	}
	o.Logger.Debug("scattering: problem built",
		"n", n, "invariants", ra.NumVars(), "punctures", rz.NumVars(), "form", form.String())

	return &Problem{
		N:             n,
		InvariantRing: ra,
		IdealRing:     rzA,
		FormRing:      rz,
		Ideal:         ideal,
		Form:          form,
		FormVars:      formVars,
	}, nil
}

// Fingerprint digests every generator and the form, in order. Two
// problems with equal fingerprints hand identical inputs to a pushforward.
func (p *Problem) Fingerprint() ring.Fingerprint {
	h := sha3.New256()
	fmt.Fprintf(h, "n=%d\x00", p.N)
	for _, g := range p.Ideal {
		fp := g.Fingerprint()
		h.Write(fp[:])
	}
	fp := p.Form.Fingerprint()
	h.Write(fp[:])

	var out ring.Fingerprint
	copy(out[:], h.Sum(nil))

	return out
}
