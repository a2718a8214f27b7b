//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"math/bits"
)

const (
	// DB is the number of bits in a limb.
	DB = 32
	// dm masks one limb.
	dm = 1<<DB - 1
	// dv is the limb radix 2^DB.
	dv = 1 << DB
)

// Int is a signed multi-precision integer. The limbs hold the value
// in little-endian order in two's complement form: all limbs above
// len(d) are implicitly equal to the sign fill, 0 for non-negative
// and 0xffffffff for negative values. The zero value is 0.
//
// Int values are immutable through the exported API. Every operation
// returns a newly allocated Int and never modifies its receiver or
// arguments.
type Int struct {
	neg bool
	d   []uint32
}

var (
	zero = NewInt(0)
	one  = NewInt(1)
)

// NewInt creates a new Int with the value x.
func NewInt(x int64) *Int {
	z := new(Int)
	z.setInt64(x)
	return z
}

func (z *Int) setInt64(x int64) {
	z.neg = x < 0
	z.d = append(z.d[:0], uint32(x), uint32(x>>DB))
	z.clamp()
}

// fill returns the value of the implicit limbs above len(x.d).
func (x *Int) fill() uint32 {
	if x.neg {
		return dm
	}
	return 0
}

// sfill returns the sign fill as a signed carry value.
func (x *Int) sfill() int64 {
	if x.neg {
		return -1
	}
	return 0
}

// limb returns the i:th limb, extending the sign above len(x.d).
func (x *Int) limb(i int) uint32 {
	if i < len(x.d) {
		return x.d[i]
	}
	return x.fill()
}

// clamp drops the high limbs that are equal to the sign fill.
func (x *Int) clamp() {
	c := x.fill()
	t := len(x.d)
	for t > 0 && x.d[t-1] == c {
		t--
	}
	x.d = x.d[:t]
}

// alloc returns a limb slice of length n for storing a result in z.
// The slice reuses z's storage if it has room.
func (z *Int) alloc(n int) []uint32 {
	if n <= cap(z.d) {
		d := z.d[:n]
		for i := range d {
			d[i] = 0
		}
		return d
	}
	return make([]uint32, n, n+2)
}

// set sets z to x.
func (z *Int) set(x *Int) {
	if z == x {
		return
	}
	z.d = append(z.alloc(0), x.d...)
	z.neg = x.neg
}

func (x *Int) clone() *Int {
	z := &Int{
		neg: x.neg,
		d:   make([]uint32, len(x.d), len(x.d)+2),
	}
	copy(z.d, x.d)
	return z
}

// negTo sets r to -x.
func (x *Int) negTo(r *Int) {
	zero.subTo(x, r)
}

// abs returns |x|. The result is x itself for non-negative values.
func (x *Int) abs() *Int {
	if x.neg {
		r := new(Int)
		x.negTo(r)
		return r
	}
	return x
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	r := new(Int)
	x.negTo(r)
	return r
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	if x.neg {
		return x.Neg()
	}
	return x.clone()
}

// Sign returns -1, 0, or 1 if x is negative, zero, or positive.
func (x *Int) Sign() int {
	if x.neg {
		return -1
	}
	if len(x.d) == 0 {
		return 0
	}
	return 1
}

// Cmp compares x and y and returns -1, 0, 1 if x is smaller, equal,
// or greater than y.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	if len(x.d) != len(y.d) {
		r := 1
		if len(x.d) < len(y.d) {
			r = -1
		}
		if x.neg {
			return -r
		}
		return r
	}
	for i := len(x.d) - 1; i >= 0; i-- {
		if x.d[i] != y.d[i] {
			if x.d[i] < y.d[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal tests if x and y are equal.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}

// Min returns the smaller of x and y.
func (x *Int) Min(y *Int) *Int {
	if x.Cmp(y) < 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func (x *Int) Max(y *Int) *Int {
	if x.Cmp(y) > 0 {
		return x
	}
	return y
}

// IsEven tests if x is even.
func (x *Int) IsEven() bool {
	return x.limb(0)&1 == 0
}

// Int64 returns the low 64 bits of x as a two's complement int64.
func (x *Int) Int64() int64 {
	return int64(uint64(x.limb(1))<<DB | uint64(x.limb(0)))
}

// Int32 returns the low 32 bits of x as a two's complement int32.
func (x *Int) Int32() int32 {
	return int32(x.limb(0))
}

// BitLen returns the number of bits in the minimal two's complement
// representation of x, excluding the sign bit. For non-negative x
// this is the length of its absolute value.
func (x *Int) BitLen() int {
	t := len(x.d)
	if t == 0 {
		return 0
	}
	return DB*(t-1) + bits.Len32(x.d[t-1]^x.fill())
}

// Add returns x+y.
func (x *Int) Add(y *Int) *Int {
	r := new(Int)
	x.addTo(y, r)
	return r
}

// Sub returns x-y.
func (x *Int) Sub(y *Int) *Int {
	r := new(Int)
	x.subTo(y, r)
	return r
}

// Mul returns x*y.
func (x *Int) Mul(y *Int) *Int {
	r := new(Int)
	x.multiplyTo(y, r)
	return r
}

// Sqr returns x*x.
func (x *Int) Sqr() *Int {
	r := new(Int)
	x.squareTo(r)
	return r
}
