// SPDX-License-Identifier: MIT

// Package ring provides exact multivariate polynomial rings over the
// rationals, nested rings whose coefficients live in another ring, and
// rational expressions over one ring.
//
// 🚀 What is it for?
//
//	The scattering package needs two algebraic levels:
//	  • a coefficient ring of kinematic invariants  QQ[a1..aN]
//	  • a ring of puncture positions over it          QQ[a1..aN][z2..z(n-2)]
//	plus a rational prefactor over QQ[z2..z(n-2)].
//	This package supplies exactly those handles and nothing more.
//
// ✨ Key properties:
//   - exact arithmetic (math/big.Rat), no floating point anywhere
//   - immutable values: every operation returns a fresh *Poly
//   - canonical, deterministic printing (degree-descending lex order)
//   - structural fingerprints (SHA3-256 over the canonical form)
//
// ⚙️ Usage:
//
//	ra, _ := ring.NewRing(ring.Sequential("a", 1, 2))
//	rz, _ := ring.NewRing(ring.Sequential("z", 2, 1), ring.WithBase(ra))
//
//	a := ra.Vars()
//	z := rz.Vars()
//	c, _ := rz.Cast(a[0].Add(a[1]))
//	p := z[0].Mul(c)                 // (a1 + a2)*z2
//	fmt.Println(p)
//
// Arithmetic between elements of different rings is a programmer error
// and panics; use Ring.Cast to move values between levels first.
package ring
