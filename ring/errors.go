// SPDX-License-Identifier: MIT
// Package ring: sentinel error set.
// Every message is prefixed with "ring: ..." so callers may grep logs and
// match with errors.Is after call sites wrap them with context.

package ring

import "errors"

var (
	// ErrEmptyName is returned when a variable name is empty.
	ErrEmptyName = errors.New("ring: empty variable name")

	// ErrDuplicateName is returned when a ring would carry the same variable
	// name twice, or shadow a name of its base ring.
	ErrDuplicateName = errors.New("ring: duplicate variable name")

	// ErrUnknownVariable is returned by lookups of a name the ring lacks.
	ErrUnknownVariable = errors.New("ring: unknown variable")

	// ErrDegreeVector is returned when a degree vector has the wrong length
	// or a negative entry.
	ErrDegreeVector = errors.New("ring: invalid degree vector")

	// ErrRingMismatch is returned when a value cannot be embedded into, or
	// combined within, the requested ring.
	ErrRingMismatch = errors.New("ring: ring mismatch")

	// ErrNoBase is returned by operations that need a nested coefficient
	// ring on a ring over QQ, or the other way around.
	ErrNoBase = errors.New("ring: coefficient level mismatch")

	// ErrDivisionByZero is returned when a rational expression would get a
	// zero denominator.
	ErrDivisionByZero = errors.New("ring: division by zero")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ring: invalid option supplied")
)

// Panic messages for programmer errors in arithmetic (no magic strings).
const (
	panicRingMismatch = "ring: arithmetic on elements of different rings"
	panicNilOperand   = "ring: nil operand"
)
