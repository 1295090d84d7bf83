// SPDX-License-Identifier: MIT

package scattering

// combinations calls fn for every k-subset of set in lexicographic index
// order. The slice passed to fn is reused between calls. A non-nil error
// from fn stops the enumeration and is returned.
func combinations(set []int, k int, fn func([]int) error) error {
	n := len(set)
	if k < 0 || k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	buf := make([]int, k)
	for {
		for i, x := range idx {
			buf[i] = set[x]
		}
		if err := fn(buf); err != nil {
			return err
		}

		// advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// binomial returns C(n,k), 0 outside 0 ≤ k ≤ n.
func binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}

	return c
}

// SubsetCount returns C(n-1, l+1): how many subsets of {2..n} equation l
// enumerates.
func SubsetCount(n, l int) int { return binomial(n-1, l+1) }

// AnchoredSubsetCount returns C(n-2, l): how many of those contain label n
// and contribute a term.
func AnchoredSubsetCount(n, l int) int { return binomial(n-2, l) }

// labelRange returns [lo, lo+1, …, hi].
func labelRange(lo, hi int) []int {
	if hi < lo {
		return []int{}
	}
	out := make([]int, 0, hi-lo+1)
	for a := lo; a <= hi; a++ {
		out = append(out, a)
	}

	return out
}
