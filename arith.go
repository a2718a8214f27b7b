//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

// am multiplies the limbs x with the limb y and adds the product and
// the carry c into w. The slices x and w have the same length. The
// function returns the carry out of the top limb. The x and w may be
// the same slice as every limb is read before it is written.
//
// This is the multiply-accumulate primitive that the multiplication,
// squaring, division, and reduction kernels compose from.
func am(x []uint32, y uint32, w []uint32, c uint32) uint32 {
	w = w[:len(x)]
	for i, xi := range x {
		v := uint64(xi)*uint64(y) + uint64(w[i]) + uint64(c)
		w[i] = uint32(v)
		c = uint32(v >> DB)
	}
	return c
}

// addTo sets r to x+a. The r may be x or a.
func (x *Int) addTo(a, r *Int) {
	xd, ad := x.d, a.d
	m := min(len(xd), len(ad))
	rd := make([]uint32, max(len(xd), len(ad))+1)

	var c int64
	i := 0
	for ; i < m; i++ {
		c += int64(xd[i]) + int64(ad[i])
		rd[i] = uint32(c)
		c >>= DB
	}
	if len(ad) < len(xd) {
		c += a.sfill()
		for ; i < len(xd); i++ {
			c += int64(xd[i])
			rd[i] = uint32(c)
			c >>= DB
		}
		c += x.sfill()
	} else {
		c += x.sfill()
		for ; i < len(ad); i++ {
			c += int64(ad[i])
			rd[i] = uint32(c)
			c >>= DB
		}
		c += a.sfill()
	}
	r.finish(rd, i, c)
}

// subTo sets r to x-a. The r may be x or a.
func (x *Int) subTo(a, r *Int) {
	xd, ad := x.d, a.d
	m := min(len(xd), len(ad))
	rd := make([]uint32, max(len(xd), len(ad))+1)

	var c int64
	i := 0
	for ; i < m; i++ {
		c += int64(xd[i]) - int64(ad[i])
		rd[i] = uint32(c)
		c >>= DB
	}
	if len(ad) < len(xd) {
		c -= a.sfill()
		for ; i < len(xd); i++ {
			c += int64(xd[i])
			rd[i] = uint32(c)
			c >>= DB
		}
		c += x.sfill()
	} else {
		c += x.sfill()
		for ; i < len(ad); i++ {
			c -= int64(ad[i])
			rd[i] = uint32(c)
			c >>= DB
		}
		c -= a.sfill()
	}
	r.finish(rd, i, c)
}

// finish completes an addition or subtraction. The final carry c is
// in [-2, 1]; -1 and 0 are pure sign fills, 1 and -2 need one more
// limb.
func (r *Int) finish(rd []uint32, i int, c int64) {
	r.neg = c < 0
	if c > 0 || c < -1 {
		rd[i] = uint32(c)
		i++
	}
	r.d = rd[:i]
	r.clamp()
}

// dlShiftTo sets r to x << n*DB.
func (x *Int) dlShiftTo(n int, r *Int) {
	rd := make([]uint32, len(x.d)+n, len(x.d)+n+1)
	copy(rd[n:], x.d)
	r.d = rd
	r.neg = x.neg
}

// drShiftTo sets r to x >> n*DB.
func (x *Int) drShiftTo(n int, r *Int) {
	var rd []uint32
	if n < len(x.d) {
		rd = make([]uint32, len(x.d)-n)
		copy(rd, x.d[n:])
	}
	r.d = rd
	r.neg = x.neg
}

// lShiftTo sets r to x << n.
func (x *Int) lShiftTo(n int, r *Int) {
	bs := uint(n % DB)
	cbs := DB - bs
	bm := uint32(uint64(1)<<cbs - 1)
	ds := n / DB
	xd := x.d

	rd := make([]uint32, len(xd)+ds+1)
	c := x.fill() << bs
	for i := len(xd) - 1; i >= 0; i-- {
		rd[i+ds+1] = xd[i]>>cbs | c
		c = (xd[i] & bm) << bs
	}
	rd[ds] = c

	r.d = rd
	r.neg = x.neg
	r.clamp()
}

// rShiftTo sets r to x >> n. The shift is arithmetic: negative values
// round towards negative infinity.
func (x *Int) rShiftTo(n int, r *Int) {
	ds := n / DB
	xd := x.d
	if ds >= len(xd) {
		r.d = nil
		r.neg = x.neg
		return
	}
	bs := uint(n % DB)
	cbs := DB - bs
	bm := uint32(1)<<bs - 1

	rd := make([]uint32, len(xd)-ds)
	rd[0] = xd[ds] >> bs
	for i := ds + 1; i < len(xd); i++ {
		rd[i-ds-1] |= (xd[i] & bm) << cbs
		rd[i-ds] = xd[i] >> bs
	}
	if bs > 0 {
		rd[len(xd)-ds-1] |= (x.fill() & bm) << cbs
	}
	r.d = rd
	r.neg = x.neg
	r.clamp()
}

// dMultiply multiplies the non-negative x in place with n > 0.
func (x *Int) dMultiply(n uint32) {
	c := am(x.d, n-1, x.d, 0)
	x.d = append(x.d, c)
	x.clamp()
}

// dAddOffset adds n*2^(w*DB) to the non-negative x in place.
func (x *Int) dAddOffset(n uint32, w int) {
	if n == 0 {
		return
	}
	for len(x.d) <= w {
		x.d = append(x.d, 0)
	}
	c := uint64(n)
	for c != 0 {
		if w >= len(x.d) {
			x.d = append(x.d, 0)
		}
		v := uint64(x.d[w]) + c
		x.d[w] = uint32(v)
		c = v >> DB
		w++
	}
}

// ModInt returns x mod n for n > 0. The result is in [0, n) also for
// negative x.
func (x *Int) ModInt(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	var r uint64
	for i := len(x.d) - 1; i >= 0; i-- {
		r = (r<<DB | uint64(x.d[i])) % uint64(n)
	}
	if x.neg {
		// x = sum(d) - 2^(DB*t)
		var p uint64 = 1
		for i := 0; i < len(x.d); i++ {
			p = (p << DB) % uint64(n)
		}
		r = (r + uint64(n) - p) % uint64(n)
	}
	return uint32(r)
}
