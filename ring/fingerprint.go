// SPDX-License-Identifier: MIT

package ring

import "golang.org/x/crypto/sha3"

// Fingerprint is a SHA3-256 digest of a canonical printed form.
type Fingerprint [32]byte

// Fingerprint returns the digest of p's ring and canonical form. Two
// polynomials share a fingerprint iff they print identically in rings
// with the same shape, which is what "structurally identical" means here.
func (p *Poly) Fingerprint() Fingerprint {
	return sha3.Sum256([]byte(p.ring.String() + "\x00" + p.String()))
}

// Fingerprint returns the digest of f's ring and factored printed form.
func (f *Frac) Fingerprint() Fingerprint {
	return sha3.Sum256([]byte(f.num.ring.String() + "\x00" + f.String()))
}
