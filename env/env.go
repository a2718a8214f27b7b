//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global environment for the mpint
// engine. It holds the sources of entropy that random number
// generation and primality testing consume.
package env

import (
	"crypto/rand"
	"io"
)

// Config defines the system configuration for the mpint
// operations. Config must not be modified after being passed to any
// operation. It is safe for concurrent use as long as its random
// source is.
type Config struct {
	Rand io.Reader
}

// GetRandom returns the source of entropy for random values and
// Miller-Rabin witnesses. If the configuration does not specify a
// source, GetRandom returns the platform's cryptographically secure
// generator.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// Random returns r if it is not nil and the default random source
// otherwise.
func Random(r io.Reader) io.Reader {
	config := &Config{
		Rand: r,
	}
	return config.GetRandom()
}
