// SPDX-License-Identifier: MIT

package scattering_test

import (
	"testing"

	"github.com/katalvlaran/worldsheet/scattering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCounts verifies variable counts, including the degenerate sizes.
func TestCounts(t *testing.T) {
	tests := []struct{ n, pairs, punctures int }{
		{2, 0, 0},
		{3, 0, 0},
		{4, 2, 1},
		{5, 5, 2},
		{6, 9, 3},
		{7, 14, 4},
		{10, 35, 7},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.pairs, scattering.PairCount(tc.n), "PairCount(%d)", tc.n)
		assert.Equal(t, tc.punctures, scattering.PunctureCount(tc.n), "PunctureCount(%d)", tc.n)
	}
}

// TestFlatIndex_Bijective enumerates every valid chord in lexicographic
// order and expects indices 1, 2, …, n(n-3)/2 with no gaps or repeats.
func TestFlatIndex_Bijective(t *testing.T) {
	for n := 4; n <= 14; n++ {
		next := 1
		seen := make(map[int]bool)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				k, ok := scattering.FlatIndex(n, i, j)
				if j == i+1 || (i == 1 && j == n) {
					assert.False(t, ok, "n=%d (%d,%d) must carry no variable", n, i, j)
					continue
				}
				require.True(t, ok, "n=%d (%d,%d)", n, i, j)
				assert.Equal(t, next, k, "n=%d (%d,%d) out of lexicographic order", n, i, j)
				assert.False(t, seen[k], "n=%d index %d repeated", n, k)
				seen[k] = true
				next++
			}
		}
		assert.Len(t, seen, scattering.PairCount(n), "n=%d", n)
	}
}

// TestFlatIndex_ZeroCases checks i=i, i=i+1 (cyclically) and {1,n}.
func TestFlatIndex_ZeroCases(t *testing.T) {
	for n := 4; n <= 9; n++ {
		for i := -n; i <= 2*n; i++ {
			_, ok := scattering.FlatIndex(n, i, i)
			assert.False(t, ok, "n=%d (%d,%d)", n, i, i)
			_, ok = scattering.FlatIndex(n, i, i+1)
			assert.False(t, ok, "n=%d (%d,%d)", n, i, i+1)
		}
		_, ok := scattering.FlatIndex(n, 1, n)
		assert.False(t, ok)
		_, ok = scattering.FlatIndex(n, n, 1)
		assert.False(t, ok)
	}
}

// TestFlatIndex_SymmetricAndCyclic checks argument order and label
// reduction mod n.
func TestFlatIndex_SymmetricAndCyclic(t *testing.T) {
	const n = 7
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			k1, ok1 := scattering.FlatIndex(n, i, j)
			k2, ok2 := scattering.FlatIndex(n, j, i)
			assert.Equal(t, ok1, ok2)
			assert.Equal(t, k1, k2, "(%d,%d)", i, j)

			k3, ok3 := scattering.FlatIndex(n, i+n, j-n)
			assert.Equal(t, ok1, ok3)
			assert.Equal(t, k1, k3, "(%d,%d) shifted by ±n", i, j)
		}
	}

	// label 0 is label n, label n+1 is label 1
	k0, _ := scattering.FlatIndex(n, 3, 0)
	kn, _ := scattering.FlatIndex(n, 3, n)
	assert.Equal(t, kn, k0)
	k1, _ := scattering.FlatIndex(n, n+1, 4)
	k4, _ := scattering.FlatIndex(n, 1, 4)
	assert.Equal(t, k4, k1)
}

// TestFlatIndex_N6 pins the n=6 table used by callers to name variables.
func TestFlatIndex_N6(t *testing.T) {
	want := map[[2]int]int{
		{1, 3}: 1, {1, 4}: 2, {1, 5}: 3,
		{2, 4}: 4, {2, 5}: 5, {2, 6}: 6,
		{3, 5}: 7, {3, 6}: 8,
		{4, 6}: 9,
	}
	for pair, k := range want {
		got, ok := scattering.FlatIndex(6, pair[0], pair[1])
		require.True(t, ok)
		assert.Equal(t, k, got, "%v", pair)
	}
}

// TestFlatIndex_Degenerate returns no variable below n=4.
func TestFlatIndex_Degenerate(t *testing.T) {
	_, ok := scattering.FlatIndex(3, 1, 3)
	assert.False(t, ok)
}

// TestPairAt inverts FlatIndex and rejects out-of-range positions.
func TestPairAt(t *testing.T) {
	for n := 4; n <= 11; n++ {
		for k := 1; k <= scattering.PairCount(n); k++ {
			i, j, err := scattering.PairAt(n, k)
			require.NoError(t, err)
			got, ok := scattering.FlatIndex(n, i, j)
			require.True(t, ok)
			assert.Equal(t, k, got, "n=%d k=%d → (%d,%d)", n, k, i, j)
		}
		_, _, err := scattering.PairAt(n, 0)
		assert.ErrorIs(t, err, scattering.ErrIndexOutOfRange)
		_, _, err = scattering.PairAt(n, scattering.PairCount(n)+1)
		assert.ErrorIs(t, err, scattering.ErrIndexOutOfRange)
	}
}

// TestSubsetCounts checks the binomials used by the assembler.
func TestSubsetCounts(t *testing.T) {
	assert.Equal(t, 3, scattering.SubsetCount(4, 1))         // C(3,2)
	assert.Equal(t, 2, scattering.AnchoredSubsetCount(4, 1)) // C(2,1)
	assert.Equal(t, 10, scattering.SubsetCount(6, 1))        // C(5,2)
	assert.Equal(t, 10, scattering.SubsetCount(6, 2))        // C(5,3)
	assert.Equal(t, 5, scattering.SubsetCount(6, 3))         // C(5,4)
	assert.Equal(t, 6, scattering.AnchoredSubsetCount(6, 2)) // C(4,2)
	assert.Equal(t, 0, scattering.SubsetCount(4, 5))
}
