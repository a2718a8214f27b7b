//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"fmt"
	"io"

	"github.com/markkurossi/mpint/env"
)

// Random returns a uniformly distributed random value in [0,
// 2^bits). The random bytes are read from rand; a nil rand uses the
// platform's secure random source.
func Random(bits int, rand io.Reader) (*Int, error) {
	if bits <= 0 {
		return new(Int), nil
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(env.Random(rand), buf); err != nil {
		return nil, fmt.Errorf("mpint: random source: %w", err)
	}
	if t := bits & 7; t > 0 {
		buf[0] &= 1<<t - 1
	}
	return FromUnsignedBytes(buf), nil
}
