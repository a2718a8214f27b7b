//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"errors"
	"math/big"
	"testing"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		x, y, gcd, lcm int64
	}{
		{48, 18, 6, 144},
		{18, 48, 6, 144},
		{0, 0, 0, 0},
		{0, 5, 5, 0},
		{5, 0, 5, 0},
		{-12, 18, 6, 36},
		{-12, -18, 6, 36},
		{17, 13, 1, 221},
		{1 << 40, 1 << 20, 1 << 20, 1 << 40},
	}
	for _, test := range tests {
		x, y := NewInt(test.x), NewInt(test.y)
		if g := x.GCD(y); g.Int64() != test.gcd {
			t.Errorf("GCD(%d, %d) = %s, expected %d", test.x, test.y, g,
				test.gcd)
		}
		if l := x.LCM(y); l.Int64() != test.lcm {
			t.Errorf("LCM(%d, %d) = %s, expected %d", test.x, test.y, l,
				test.lcm)
		}
	}

	rand := testRand(60)
	for i := 0; i < 300; i++ {
		c := randInt(t, rand, 100, false)
		x := randInt(t, rand, 300, true).Mul(c)
		y := randInt(t, rand, 300, true).Mul(c)
		bx, by := toBig(t, x), toBig(t, y)

		g := x.GCD(y)
		checkBig(t, "GCD", g, new(big.Int).GCD(nil, nil, bx, by))

		// GCD * LCM = |x*y|
		if !g.Mul(x.LCM(y)).Equal(x.Mul(y).Abs()) {
			t.Errorf("GCD(%s, %s) * LCM != |x*y|", x, y)
		}
	}
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		x, m, expected int64
	}{
		{3, 11, 4},
		{-3, 11, 7},
		{14, 11, 4},
		{1, 2, 1},
		{5, 1, 0},
		{0, 1, 0},
		{3, 8, 3},
		{7, 1 << 32, 3067833783},
	}
	for _, test := range tests {
		r, err := NewInt(test.x).ModInverse(NewInt(test.m))
		if err != nil {
			t.Errorf("ModInverse(%d, %d) failed: %v", test.x, test.m, err)
			continue
		}
		if r.Int64() != test.expected {
			t.Errorf("ModInverse(%d, %d) = %s, expected %d",
				test.x, test.m, r, test.expected)
		}
	}

	rand := testRand(61)
	for i := 0; i < 500; i++ {
		x := randInt(t, rand, 300, true)
		m := randInt(t, rand, 260, false)
		if m.Sign() == 0 {
			continue
		}
		bx, bm := toBig(t, x), toBig(t, m)
		if new(big.Int).GCD(nil, nil, bx, bm).Cmp(big.NewInt(1)) != 0 {
			if _, err := x.ModInverse(m); !errors.Is(err, ErrNoInverse) &&
				!m.Equal(one) {
				t.Errorf("ModInverse(%s, %s): %v", x, m, err)
			}
			continue
		}
		r, err := x.ModInverse(m)
		if err != nil {
			t.Fatalf("ModInverse(%s, %s) failed: %v", x, m, err)
		}
		if m.Equal(one) {
			if r.Sign() != 0 {
				t.Errorf("ModInverse(%s, 1) = %s", x, r)
			}
			continue
		}
		checkBig(t, "ModInverse", r,
			new(big.Int).ModInverse(new(big.Int).Mod(bx, bm), bm))
	}
}

func TestModInverseErrors(t *testing.T) {
	tests := []struct {
		x, m int64
		err  error
	}{
		{4, 8, ErrNoInverse},
		{6, 9, ErrNoInverse},
		{0, 7, ErrNoInverse},
		{14, 7, ErrNoInverse},
		{3, 0, ErrInvalidModulus},
		{3, -11, ErrInvalidModulus},
	}
	for _, test := range tests {
		_, err := NewInt(test.x).ModInverse(NewInt(test.m))
		if !errors.Is(err, test.err) {
			t.Errorf("ModInverse(%d, %d): got %v, expected %v",
				test.x, test.m, err, test.err)
		}
	}
}
