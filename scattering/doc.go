// SPDX-License-Identifier: MIT

// Package scattering generates, for an n-point convex polygon labeling,
// the n-3 polynomial scattering equations in puncture positions and the
// worldsheet associahedron prefactor. Both are inputs to an external
// pushforward calculator.
//
// 🚀 What is computed?
//
//	Labels 1..n sit on a convex n-gon. Punctures 1, n-1 and n are frozen
//	at 0, 1 and ∞; the rest carry variables z2..z(n-2). Every
//	non-adjacent chord {i,j} other than {1,n} carries an invariant
//	a1..a(n(n-3)/2), numbered in lexicographic (i,j) order.
//
//	  P_l = Σ_{A ⊆ {2..n}, |A| = l+1, n ∈ A}  z_A · s_A      l = 1..n-3
//	  ω   = -1 / ( z2 · (z2-z3) · … · (z(n-3)-z(n-2)) · (z(n-2)-1) )
//
//	where z_A is the indicator monomial of A's free punctures and s_A
//	the corner sum of pair invariants over all 2-subsets of A.
//
// ✨ Components:
//   - IndexMapper            - (i,j) → invariant variable or zero
//   - SubsetInvariant        - s_A in QQ[a…]
//   - SubsetMonomial         - z_A in QQ[a…][z…]
//   - ScatteringEquations    - P_1..P_(n-3), fan-out over subsets
//   - Prefactor              - ω as a factored ring.Frac
//   - NewABHY                - all of the above with conventional rings
//
// ⚙️ Usage:
//
//	pb, err := scattering.NewABHY(6)
//	if err != nil {
//	  // ErrTooFewPoints, ErrOptionViolation, ...
//	}
//	for _, p := range pb.Ideal {
//	  fmt.Println(p)
//	}
//	fmt.Println(pb.Form)
//
// Complexity: equation l enumerates C(n-1, l+1) subsets of which
// C(n-2, l) contribute; each costs O(l²) invariant lookups.
package scattering
