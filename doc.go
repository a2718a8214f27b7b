//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mpint implements signed multi-precision integers for
// public-key arithmetic: modular exponentiation, GCD, modular
// inverse, and probabilistic primality testing.
//
// An Int stores its value in 32-bit limbs in two's complement form
// with an infinite sign extension. Products of two limbs are
// accumulated in 64 bits. All exported operations return new values
// and never modify their arguments, so Int values can be shared
// between goroutines.
//
// Modular exponentiation uses one of three reduction strategies:
// classic reduction with long division, Barrett reduction, and
// Montgomery reduction. ModPow selects the strategy automatically and
// ModPowWith allows selecting it explicitly.
//
// Randomness is never taken from global state. Random, ProbablePrime
// and ProbablyPrime read their random bytes from an explicit
// io.Reader, defaulting to crypto/rand when it is nil.
//
// The primality test is probabilistic. A composite result is always
// correct but a prime result is only correct with a probability that
// depends on the number of rounds.
package mpint
