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

var reducerModuli = []string{
	"3",
	"97",
	"ffffffff",
	"100000000",
	"1fffffffffffffff",
	"fffffffffffffffffffffffffffffffeffffffffffffffff",
	"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
	"8000000000000000000000000000000000000000000000000000000000000000",
	"fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210" +
		"fedcba9876543210",
}

func TestReducers(t *testing.T) {
	rand := testRand(40)
	for _, ms := range reducerModuli {
		m := MustParse(ms, 16)
		bm := toBig(t, m)

		reductions := []Reduction{Auto, Classic, Barrett}
		if !m.IsEven() {
			reductions = append(reductions, Montgomery)
		}
		for _, reduction := range reductions {
			z, err := NewReducer(reduction, m)
			if err != nil {
				t.Fatalf("NewReducer(%v, %s) failed: %v", reduction, m, err)
			}
			if !z.Modulus().Equal(m) {
				t.Errorf("%v: Modulus() = %s", reduction, z.Modulus())
			}
			for i := 0; i < 50; i++ {
				x := randInt(t, rand, 2*m.BitLen(), true)
				y := randInt(t, rand, m.BitLen()-1, false)
				bx, by := toBig(t, x), toBig(t, y)

				xc := z.Convert(x)
				yc := z.Convert(y)
				checkBig(t, reduction.String()+" convert/revert",
					z.Revert(xc), new(big.Int).Mod(bx, bm))

				p := new(big.Int).Mul(bx, by)
				checkBig(t, reduction.String()+" mul",
					z.Revert(z.Mul(xc, yc)), p.Mod(p, bm))

				s := new(big.Int).Mul(bx, bx)
				checkBig(t, reduction.String()+" sqr",
					z.Revert(z.Sqr(xc)), s.Mod(s, bm))
			}
		}
	}
}

func TestReducerErrors(t *testing.T) {
	for _, reduction := range []Reduction{Auto, Classic, Barrett, Montgomery} {
		for _, m := range []int64{0, -1, -97} {
			_, err := NewReducer(reduction, NewInt(m))
			if !errors.Is(err, ErrInvalidModulus) {
				t.Errorf("NewReducer(%v, %d): %v", reduction, m, err)
			}
		}
	}
	if _, err := NewMontgomery(NewInt(100)); !errors.Is(err, ErrEvenModulus) {
		t.Errorf("NewMontgomery(100): %v", err)
	}
	if _, err := NewReducer(Reduction(42), NewInt(7)); err == nil {
		t.Errorf("NewReducer with unknown reduction succeeded")
	}
}

func TestReductionString(t *testing.T) {
	tests := []struct {
		r        Reduction
		expected string
	}{
		{Auto, "auto"},
		{Classic, "classic"},
		{Barrett, "barrett"},
		{Montgomery, "montgomery"},
		{Reduction(42), "{Reduction 42}"},
	}
	for _, test := range tests {
		if test.r.String() != test.expected {
			t.Errorf("%d: got %q, expected %q",
				int(test.r), test.r.String(), test.expected)
		}
	}
}

func TestInvDigit(t *testing.T) {
	for _, x := range []uint32{1, 3, 5, 0x7fffffff, 0xffffffff, 0x12345679} {
		if r := x * invDigit(x); r != 0xffffffff {
			t.Errorf("%x * invDigit(%x) = %x, expected -1", x, x, r)
		}
	}
	if invDigit(2) != 0 {
		t.Errorf("invDigit(2) = %x", invDigit(2))
	}
}

func TestReducerImmutable(t *testing.T) {
	m := MustParse("fffffffffffffffffffffffffffffffeffffffffffffffff", 16)
	for _, reduction := range []Reduction{Classic, Barrett, Montgomery} {
		z, err := NewReducer(reduction, m)
		if err != nil {
			t.Fatal(err)
		}
		x := z.Convert(NewInt(12345))
		y := z.Convert(NewInt(67890))
		xs, ys := x.String(), y.String()
		z.Mul(x, y)
		z.Sqr(x)
		z.Revert(x)
		if x.String() != xs || y.String() != ys {
			t.Errorf("%v: operands modified", reduction)
		}
	}
}
