// SPDX-License-Identifier: MIT
// Package: scattering
//
// labels.go - polygon label conventions shared by every builder.
//
// Contract:
//   • Labels are 1..n around a convex n-gon; arithmetic on them is cyclic.
//   • Punctures 1, n-1, n are fixed (0, 1, ∞) and carry no variable.
//   • Invariant variables exist for chords {i<j} with j ≠ i+1 and
//     {i,j} ≠ {1,n}; they are numbered 1..n(n-3)/2 row by row:
//       row 1  : (1,3) (1,4) … (1,n-1)       n-3 entries
//       row i≥2: (i,i+2) … (i,n)            n-i-1 entries

package scattering

import "fmt"

const (
	// minPoints is the smallest n that is a polygon.
	minPoints = 3

	// minPuncturePoints is the smallest n with a free puncture.
	minPuncturePoints = 4
)

// PairCount returns n(n-3)/2, the number of invariant variables for n
// points (0 for n ≤ 3).
func PairCount(n int) int {
	if n <= minPoints {
		return 0
	}

	return n * (n - 3) / 2
}

// PunctureCount returns n-3, the number of free puncture positions and of
// scattering equations (0 for n ≤ 3).
func PunctureCount(n int) int {
	if n <= minPoints {
		return 0
	}

	return n - 3
}

// reduceLabel maps any integer onto [1,n] cyclically: 0 → n, n+1 → 1.
func reduceLabel(n, i int) int {
	return ((i-1)%n+n)%n + 1
}

// isAdjacent reports whether i<j are neighbours along the polygon edge
// i → i+1. The wrap-around edge {1,n} is isBoundaryPair.
func isAdjacent(i, j int) bool { return j == i+1 }

// isBoundaryPair reports whether i<j is the edge {1,n} split by the fixed
// punctures at 0 and ∞.
func isBoundaryPair(n, i, j int) bool { return i == 1 && j == n }

// isFixedLabel reports whether label a is a frozen puncture (1 → 0,
// n-1 → 1, n → ∞) and therefore has no position variable.
func isFixedLabel(n, a int) bool { return a == 1 || a >= n-1 }

// anchorLabel is the label every scattering-equation subset must contain.
func anchorLabel(n int) int { return n }

// FlatIndex returns the 1-based position of the invariant for chord (i,j)
// and true, or 0 and false when the chord carries no variable (equal
// labels, adjacent labels, or the {1,n} edge). Labels are reduced mod n
// and ordered first, so FlatIndex(n,i,j) == FlatIndex(n,j,i).
func FlatIndex(n, i, j int) (int, bool) {
	if n < minPuncturePoints {
		return 0, false
	}
	i, j = reduceLabel(n, i), reduceLabel(n, j)
	if i == j {
		return 0, false
	}
	if i > j {
		i, j = j, i
	}
	if isAdjacent(i, j) || isBoundaryPair(n, i, j) {
		return 0, false
	}

	return rowOffset(n, i) + (j - i - 1), true
}

// rowOffset counts the valid chords in rows 1..i-1. The first chord of
// every row has j-i-1 = 1.
//
//	rowOffset(1) = 0
//	rowOffset(i) = (n-3) + Σ_{k=2}^{i-1} (n-k-1)
//	             = (n-3) + (i-2)(n-1) - (i(i-1)/2 - 1)
func rowOffset(n, i int) int {
	if i == 1 {
		return 0
	}

	return (n - 3) + (i-2)*(n-1) - (i*(i-1)/2 - 1)
}

// PairAt inverts FlatIndex: it returns the chord (i<j) numbered k.
//
// Errors: ErrIndexOutOfRange unless 1 ≤ k ≤ PairCount(n).
func PairAt(n, k int) (int, int, error) {
	if k < 1 || k > PairCount(n) {
		return 0, 0, fmt.Errorf("PairAt: n=%d k=%d not in [1,%d]: %w", n, k, PairCount(n), ErrIndexOutOfRange)
	}
	for i := 1; i < n; i++ {
		lo, hi := i+2, n
		if i == 1 {
			hi = n - 1
		}
		if lo > hi {
			continue
		}
		first, _ := FlatIndex(n, i, lo)
		if k < first+(hi-lo+1) {
			return i, lo + (k - first), nil
		}
	}

	// unreachable for k within PairCount(n)
	return 0, 0, fmt.Errorf("PairAt: n=%d k=%d: %w", n, k, ErrIndexOutOfRange)
}
