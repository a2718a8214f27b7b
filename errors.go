//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"errors"
)

var (
	// ErrSyntax is returned when parsing an empty string or a string
	// with a character that is not a digit of the radix.
	ErrSyntax = errors.New("mpint: invalid syntax")

	// ErrRadix is returned for an unsupported radix.
	ErrRadix = errors.New("mpint: invalid radix")

	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = errors.New("mpint: division by zero")

	// ErrInvalidModulus is returned when a modulus is zero or
	// negative.
	ErrInvalidModulus = errors.New("mpint: invalid modulus")

	// ErrEvenModulus is returned when Montgomery reduction is
	// requested for an even modulus.
	ErrEvenModulus = errors.New("mpint: even modulus")

	// ErrNoInverse is returned when the modular inverse does not
	// exist.
	ErrNoInverse = errors.New("mpint: no inverse")
)
