//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"math/bits"
)

type bitOp func(x, y uint32) uint32

func opAnd(x, y uint32) uint32    { return x & y }
func opOr(x, y uint32) uint32     { return x | y }
func opXor(x, y uint32) uint32    { return x ^ y }
func opAndNot(x, y uint32) uint32 { return x &^ y }

// bitwiseTo sets r to op(x, a) limb by limb. The shorter operand is
// extended with its sign fill and the sign of the result is op
// applied to the fills.
func (x *Int) bitwiseTo(a *Int, op bitOp, r *Int) {
	xd, ad := x.d, a.d
	xf, af := x.fill(), a.fill()
	n := max(len(xd), len(ad))
	m := min(len(xd), len(ad))

	rd := make([]uint32, n)
	for i := 0; i < m; i++ {
		rd[i] = op(xd[i], ad[i])
	}
	if len(ad) < len(xd) {
		for i := m; i < n; i++ {
			rd[i] = op(xd[i], af)
		}
	} else {
		for i := m; i < n; i++ {
			rd[i] = op(xf, ad[i])
		}
	}
	r.d = rd
	r.neg = op(xf, af) == dm
	r.clamp()
}

// And returns x&y.
func (x *Int) And(y *Int) *Int {
	r := new(Int)
	x.bitwiseTo(y, opAnd, r)
	return r
}

// Or returns x|y.
func (x *Int) Or(y *Int) *Int {
	r := new(Int)
	x.bitwiseTo(y, opOr, r)
	return r
}

// Xor returns x^y.
func (x *Int) Xor(y *Int) *Int {
	r := new(Int)
	x.bitwiseTo(y, opXor, r)
	return r
}

// AndNot returns x&^y.
func (x *Int) AndNot(y *Int) *Int {
	r := new(Int)
	x.bitwiseTo(y, opAndNot, r)
	return r
}

// Not returns ^x, that is -x-1.
func (x *Int) Not() *Int {
	r := &Int{
		neg: !x.neg,
		d:   make([]uint32, len(x.d)),
	}
	for i, v := range x.d {
		r.d[i] = ^v
	}
	return r
}

// Lsh returns x << n. A negative n shifts right.
func (x *Int) Lsh(n int) *Int {
	r := new(Int)
	if n < 0 {
		x.rShiftTo(-n, r)
	} else {
		x.lShiftTo(n, r)
	}
	return r
}

// Rsh returns x >> n. A negative n shifts left. The shift is
// arithmetic, rounding negative values towards negative infinity.
func (x *Int) Rsh(n int) *Int {
	r := new(Int)
	if n < 0 {
		x.lShiftTo(-n, r)
	} else {
		x.rShiftTo(n, r)
	}
	return r
}

// LowestSetBit returns the index of the rightmost one bit in x, or
// -1 if x is zero.
func (x *Int) LowestSetBit() int {
	for i, v := range x.d {
		if v != 0 {
			return i*DB + bits.TrailingZeros32(v)
		}
	}
	if x.neg {
		return len(x.d) * DB
	}
	return -1
}

// BitCount returns the number of bits in the two's complement
// representation of x that differ from its sign bit.
func (x *Int) BitCount() int {
	var r int
	f := x.fill()
	for _, v := range x.d {
		r += bits.OnesCount32(v ^ f)
	}
	return r
}

// Bit tests if the bit n of x's two's complement representation is
// set. The n must not be negative.
func (x *Int) Bit(n int) bool {
	j := n / DB
	if j >= len(x.d) {
		return x.neg
	}
	return x.d[j]&(1<<uint(n%DB)) != 0
}

func (x *Int) changeBit(n int, op bitOp) *Int {
	r := new(Int)
	one.lShiftTo(n, r)
	x.bitwiseTo(r, op, r)
	return r
}

// SetBit returns x with the bit n set.
func (x *Int) SetBit(n int) *Int {
	return x.changeBit(n, opOr)
}

// ClearBit returns x with the bit n cleared.
func (x *Int) ClearBit(n int) *Int {
	return x.changeBit(n, opAndNot)
}

// FlipBit returns x with the bit n flipped.
func (x *Int) FlipBit(n int) *Int {
	return x.changeBit(n, opXor)
}
