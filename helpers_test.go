//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"io"
	"math/big"
	"testing"

	"github.com/markkurossi/mpint/env"
)

// toBig converts x to big.Int for cross-checking.
func toBig(t *testing.T, x *Int) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(x.Text(16), 16)
	if !ok {
		t.Fatalf("invalid value %q", x.Text(16))
	}
	return b
}

func testRand(stream uint32) io.Reader {
	return env.NewSeeded([]byte("mpint test"), stream)
}

// randInt returns a random value of at most maxBits bits. If signed
// is set, the value is negative with probability 1/2.
func randInt(t *testing.T, rand io.Reader, maxBits int, signed bool) *Int {
	t.Helper()
	var hdr [3]byte
	if _, err := io.ReadFull(rand, hdr[:]); err != nil {
		t.Fatal(err)
	}
	bits := (int(hdr[0])<<8 | int(hdr[1])) % (maxBits + 1)
	x, err := Random(bits, rand)
	if err != nil {
		t.Fatal(err)
	}
	if signed && hdr[2]&1 == 1 {
		x = x.Neg()
	}
	return x
}

// randOdd returns a random odd value of exactly bits bits.
func randOdd(t *testing.T, rand io.Reader, bits int) *Int {
	t.Helper()
	x, err := Random(bits, rand)
	if err != nil {
		t.Fatal(err)
	}
	return x.SetBit(bits - 1).SetBit(0)
}

func checkBig(t *testing.T, op string, got *Int, expected *big.Int) {
	t.Helper()
	if toBig(t, got).Cmp(expected) != 0 {
		t.Errorf("%s: got %s, expected %s", op, got, expected)
	}
}
