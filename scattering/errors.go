// SPDX-License-Identifier: MIT
// Package scattering: sentinel error set.
// Call sites wrap these with fmt.Errorf("Method: context: %w", ErrX) so the
// diagnostic names the offending pair or count; callers match via errors.Is.
// Failures from package ring are propagated wrapped, never replaced.

package scattering

import "errors"

var (
	// ErrTooFewPoints is returned when n < 3 (not a polygon), or when an
	// operation needs at least one puncture variable and n < 4.
	ErrTooFewPoints = errors.New("scattering: too few points")

	// ErrNilRing is returned when a required ring handle is nil.
	ErrNilRing = errors.New("scattering: ring is nil")

	// ErrRingSize is returned when a supplied ring or variable list does not
	// have the count required for n. This is a contract violation by the
	// caller; no partial result is produced.
	ErrRingSize = errors.New("scattering: ring size does not match n")

	// ErrIndexOutOfRange is returned when a computed flattening index falls
	// outside the invariant variable array.
	ErrIndexOutOfRange = errors.New("scattering: invariant index out of range")

	// ErrBadSubset is returned for label subsets that are not strictly
	// increasing within [1,n], or too small for the operation.
	ErrBadSubset = errors.New("scattering: invalid label subset")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scattering: invalid option supplied")
)
