// SPDX-License-Identifier: MIT

package scattering

import (
	"fmt"

	"github.com/katalvlaran/worldsheet/ring"
)

// Prefactor returns the worldsheet associahedron form
//
//	-1 / ( z[0] · (z[0]-z[1]) · … · (z[k-2]-z[k-1]) · (z[k-1]-1) )
//
// for the puncture variables z = [z2..z(n-2)], keeping the denominator
// factored in that order. For n = 4 this is -1/(z2·(z2-1)).
//
// Errors:
//   - ErrTooFewPoints   - n < 4 (no puncture variable to build from).
//   - ErrRingSize       - len(z) != n-3.
//   - ring.ErrRingMismatch  - the variables do not share one ring.
//   - ring.ErrDivisionByZero - some factor vanishes (e.g. repeated
//     variables); propagated from package ring.
func Prefactor(n int, z []*ring.Poly) (*ring.Frac, error) {
	if n < minPuncturePoints {
		return nil, fmt.Errorf("Prefactor: n=%d < min=%d: %w", n, minPuncturePoints, ErrTooFewPoints)
	}
	if len(z) != PunctureCount(n) {
		return nil, fmt.Errorf("Prefactor: n=%d needs %d punctures, got %d: %w", n, PunctureCount(n), len(z), ErrRingSize)
	}
	for i, v := range z {
		if v == nil || v.Ring() != z[0].Ring() {
			return nil, fmt.Errorf("Prefactor: variable %d: %w", i, ring.ErrRingMismatch)
		}
	}

	r := z[0].Ring()
	factors := make([]*ring.Poly, 0, len(z)+1)
	factors = append(factors, z[0])
	prev := z[0]
	for _, v := range z[1:] {
		factors = append(factors, prev.Sub(v))
		prev = v
	}
	// puncture n-1 sits at 1
	factors = append(factors, prev.Sub(r.One()))

	f, err := ring.NewFrac(r.One(), factors...)
	if err != nil {
		return nil, fmt.Errorf("Prefactor: %w", err)
	}

	return f.Neg(), nil
}
