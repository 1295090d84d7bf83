// SPDX-License-Identifier: MIT

// Package worldsheet generates the algebraic inputs of a pushforward of
// the worldsheet associahedron canonical form through the n-point
// scattering equations.
//
// 🚀 What is inside?
//
//	• ring/       - exact multivariate polynomial rings over QQ, nested
//	                coefficient rings, factored rational expressions
//	• scattering/ - chord → invariant indexing, subset invariants and
//	                monomials, the n-3 scattering equations, the
//	                associahedron prefactor, and the bundled Problem
//	• examples/   - a runnable demo printing the system for a given n
//
// ✨ Properties:
//
//   - Pure functions of n and the ring handles; no global state
//   - Exact arithmetic only, canonical printing, SHA3 fingerprints
//   - Fan-out/fan-in assembly over subsets, identical results for any
//     worker count
//
// Quick ASCII picture (n=6, punctures 1→0, 5→1, 6→∞):
//
//	      1 ─── 2
//	    ╱         ╲
//	   6           3
//	    ╲         ╱
//	      5 ─── 4
//
//	free punctures z2 z3 z4, nine chord invariants a1..a9.
//
//	go get github.com/katalvlaran/worldsheet/scattering
package worldsheet
