// SPDX-License-Identifier: MIT
// Package: scattering
//
// equations.go - Scattering Equation Assembler.
//
// Algorithm Outline:
//  1. Bind an IndexMapper to ra; check rz = ra[z2..z(n-2)].
//  2. For l = 1..n-3:
//     enumerate every (l+1)-subset A of {2..n}; keep those with n ∈ A.
//  3. Split the kept subsets into contiguous chunks, one per worker; each
//     worker sums z_A · s_A into its own accumulator.
//  4. Reduce the partial sums with ring addition, in chunk order.
//
// Determinism:
//   • Polynomials are canonical, so the result does not depend on the
//     number of workers or on scheduling.

package scattering

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/worldsheet/ring"
)

// ScatteringEquations returns [P_1, …, P_(n-3)] in rz, where rz must be a
// ring with variables z2..z(n-2) whose coefficient ring is the invariant
// ring ra. For n = 3 the result is empty.
//
// Errors:
//   - ErrTooFewPoints, ErrNilRing, ErrRingSize - bad n or ring handles.
//   - ring.ErrRingMismatch - rz is not built over ra.
//   - ErrOptionViolation   - invalid Option.
func ScatteringEquations(n int, rz, ra *ring.Ring, opts ...Option) ([]*ring.Poly, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	m, err := NewIndexMapper(n, ra)
	if err != nil {
		return nil, fmt.Errorf("ScatteringEquations: %w", err)
	}
	if rz == nil {
		return nil, fmt.Errorf("ScatteringEquations: puncture ring: %w", ErrNilRing)
	}
	if rz.Base() != ra {
		return nil, fmt.Errorf("ScatteringEquations: %v is not over %v: %w", rz, ra, ring.ErrRingMismatch)
	}
	if got, want := rz.NumVars(), PunctureCount(n); got != want {
		return nil, fmt.Errorf("ScatteringEquations: n=%d needs %d punctures, ring has %d: %w", n, want, got, ErrRingSize)
	}

	// label 1 sits at 0 and never enters a subset
	universe := labelRange(2, n)
	anchor := anchorLabel(n)

	eqs := make([]*ring.Poly, 0, PunctureCount(n))
	for l := 1; l <= PunctureCount(n); l++ {
		var (
			kept       [][]int
			enumerated int
		)
		_ = combinations(universe, l+1, func(a []int) error {
			enumerated++
			// subsets are increasing, so n can only be last
			if a[len(a)-1] == anchor {
				kept = append(kept, append([]int(nil), a...))
			}

			return nil
		})
		o.OnEquation(l, enumerated, len(kept))

		p, err := assemble(m, rz, kept, o.Workers)
		if err != nil {
			return nil, fmt.Errorf("ScatteringEquations: l=%d: %w", l, err)
		}
		o.Logger.Debug("scattering: equation assembled",
			"n", n, "l", l, "enumerated", enumerated, "accepted", len(kept), "terms", p.Terms())
		eqs = append(eqs, p)
	}

	return eqs, nil
}

// assemble sums z_A · s_A over subsets using up to workers goroutines.
func assemble(m *IndexMapper, rz *ring.Ring, subsets [][]int, workers int) (*ring.Poly, error) {
	if workers > len(subsets) {
		workers = len(subsets)
	}
	if workers <= 1 {
		return partialSum(m, rz, subsets)
	}

	chunk := (len(subsets) + workers - 1) / workers
	parts := make([]*ring.Poly, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(subsets))
		if lo >= hi {
			parts[w] = rz.Zero()
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			parts[w], errs[w] = partialSum(m, rz, subsets[lo:hi])
		}(w, lo, hi)
	}
	wg.Wait()

	acc := rz.Zero()
	for w := range parts {
		if errs[w] != nil {
			return nil, errs[w]
		}
		acc = acc.Add(parts[w])
	}

	return acc, nil
}

// partialSum is the sequential kernel: Σ z_A · s_A over subsets.
func partialSum(m *IndexMapper, rz *ring.Ring, subsets [][]int) (*ring.Poly, error) {
	acc := rz.Zero()
	for _, a := range subsets {
		zA, err := SubsetMonomial(m.n, rz, a)
		if err != nil {
			return nil, err
		}
		sA, err := m.SubsetInvariant(a)
		if err != nil {
			return nil, err
		}
		c, err := rz.Cast(sA)
		if err != nil {
			return nil, fmt.Errorf("subset %v: %w", a, err)
		}
		acc = acc.Add(zA.Mul(c))
	}

	return acc, nil
}
