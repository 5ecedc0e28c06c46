// Package trngerr defines the sentinel error kinds shared by every engine
// family in the module. Call sites wrap these with fmt.Errorf("...: %w", ...)
// so callers can still recover the kind via errors.Is while getting a
// specific message.
package trngerr

import "errors"

var (
	// ErrInvalidArgument reports a caller-supplied value outside the domain
	// of the operation (e.g. a non-positive modulus, s < 1 or n >= s on split).
	ErrInvalidArgument = errors.New("trng: invalid argument")

	// ErrNoInverse reports that a modular inverse does not exist because the
	// operand and modulus are not coprime.
	ErrNoInverse = errors.New("trng: no modular inverse")

	// ErrSingularSystem reports that a linear system built during split() is
	// singular or inconsistent and cannot be solved uniquely.
	ErrSingularSystem = errors.New("trng: singular linear system")

	// ErrSerializationFailure reports that the canonical text form could not
	// be parsed. The target engine is left unchanged.
	ErrSerializationFailure = errors.New("trng: serialization failure")

	// ErrDomainError is reserved for the external distribution/special
	// function layer. The core engine package never returns it.
	ErrDomainError = errors.New("trng: domain error")
)
