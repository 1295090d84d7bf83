// SPDX-License-Identifier: MIT

package scattering

import (
	"fmt"

	"github.com/katalvlaran/worldsheet/ring"
)

// SubsetDegrees returns the 0/1 degree vector of z_A over z2..z(n-2):
// slot a-2 is 1 for every member a of A that is not a fixed puncture.
//
// Errors: ErrBadSubset unless labels is strictly increasing within [1,n].
func SubsetDegrees(n int, labels []int) ([]int, error) {
	if n < minPoints {
		return nil, fmt.Errorf("SubsetDegrees: n=%d < min=%d: %w", n, minPoints, ErrTooFewPoints)
	}
	if err := validateSubset(n, labels, 0); err != nil {
		return nil, fmt.Errorf("SubsetDegrees: %w", err)
	}

	degrees := make([]int, PunctureCount(n))
	for _, a := range labels {
		if isFixedLabel(n, a) {
			continue
		}
		degrees[a-2] = 1
	}

	return degrees, nil
}

// SubsetMonomial returns z_A as a monomial of rz, whose variables must be
// z2..z(n-2) in order.
//
// Errors: ErrNilRing, ErrRingSize when rz has the wrong variable count,
// ErrBadSubset for invalid labels.
func SubsetMonomial(n int, rz *ring.Ring, labels []int) (*ring.Poly, error) {
	if rz == nil {
		return nil, fmt.Errorf("SubsetMonomial: %w", ErrNilRing)
	}
	if got, want := rz.NumVars(), PunctureCount(n); got != want {
		return nil, fmt.Errorf("SubsetMonomial: n=%d needs %d punctures, ring has %d: %w", n, want, got, ErrRingSize)
	}
	degrees, err := SubsetDegrees(n, labels)
	if err != nil {
		return nil, err
	}
	mono, err := rz.Monomial(degrees)
	if err != nil {
		return nil, fmt.Errorf("SubsetMonomial: %w", err)
	}

	return mono, nil
}
