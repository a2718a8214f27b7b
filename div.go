//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"math/bits"
)

// divRemTo divides x by m and stores the truncated quotient to q and
// the remainder to r. The quotient is negative if the signs of x and
// m differ and the remainder has the sign of x. Either q or r may be
// nil and both may alias x or m. The m must not be zero.
func (x *Int) divRemTo(m *Int, q, r *Int) {
	pm := m.abs()
	if len(pm.d) == 0 {
		return
	}
	pt := x.abs()
	xneg, mneg := x.neg, m.neg

	if len(pt.d) < len(pm.d) {
		if r != nil {
			r.set(x)
		}
		if q != nil {
			q.d = nil
			q.neg = false
		}
		return
	}

	qd, rd := divmod(pt.d, pm.d)
	if q != nil {
		q.d = qd
		q.neg = false
		q.clamp()
		if xneg != mneg {
			q.negTo(q)
		}
	}
	if r != nil {
		r.d = rd
		r.neg = false
		r.clamp()
		if xneg {
			r.negTo(r)
		}
	}
}

// divmod divides the magnitude u with the magnitude v, len(u) >=
// len(v) > 0 and v[len(v)-1] != 0. It returns newly allocated
// quotient and remainder limbs. The algorithm is the normalized long
// division of Knuth, TAOCP vol 2, 4.3.1, Algorithm D.
func divmod(u, v []uint32) (q, r []uint32) {
	n := len(v)
	if n == 1 {
		return divmodLimb(u, v[0])
	}
	m := len(u) - n

	// Normalize so that the top bit of the divisor is set.
	shift := uint(bits.LeadingZeros32(v[n-1]))
	vn := make([]uint32, n)
	shlLimbs(vn, v, shift)
	un := make([]uint32, len(u)+1)
	un[len(u)] = shlLimbs(un[:len(u)], u, shift)

	vtop := uint64(vn[n-1])
	vnext := uint64(vn[n-2])

	q = make([]uint32, m+1)
	for j := m; j >= 0; j-- {
		// Estimate the quotient limb from the top two limbs of the
		// window and the top two limbs of the divisor. The estimate
		// is at most two too large.
		num := uint64(un[j+n])<<DB | uint64(un[j+n-1])
		qhat := num / vtop
		rhat := num % vtop
		for qhat >= dv || qhat*vnext > (rhat<<DB|uint64(un[j+n-2])) {
			qhat--
			rhat += vtop
			if rhat >= dv {
				break
			}
		}

		// Multiply and subtract.
		var k int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(p&dm)
			un[i+j] = uint32(t)
			k = int64(p>>DB) - (t >> DB)
		}
		t := int64(un[j+n]) - k
		un[j+n] = uint32(t)

		q[j] = uint32(qhat)
		if t < 0 {
			// The estimate was one too large; add the divisor back.
			q[j]--
			var c uint64
			for i := 0; i < n; i++ {
				s := uint64(un[i+j]) + uint64(vn[i]) + c
				un[i+j] = uint32(s)
				c = s >> DB
			}
			un[j+n] += uint32(c)
		}
	}

	// Unnormalize the remainder.
	r = make([]uint32, n)
	shrLimbs(r, un[:n+1], shift)
	return q, r
}

// divmodLimb divides the magnitude u with the limb v.
func divmodLimb(u []uint32, v uint32) (q, r []uint32) {
	q = make([]uint32, len(u))
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		num := rem<<DB | uint64(u[i])
		q[i] = uint32(num / uint64(v))
		rem = num % uint64(v)
	}
	return q, []uint32{uint32(rem)}
}

// shlLimbs sets z to x << s, 0 <= s < DB, and returns the bits
// shifted out of the top limb.
func shlLimbs(z, x []uint32, s uint) uint32 {
	if s == 0 {
		copy(z, x)
		return 0
	}
	var c uint32
	for i, v := range x {
		z[i] = v<<s | c
		c = v >> (DB - s)
	}
	return c
}

// shrLimbs sets z to the low len(z) limbs of x >> s, 0 <= s < DB.
func shrLimbs(z, x []uint32, s uint) {
	for i := range z {
		v := x[i] >> s
		if s > 0 && i+1 < len(x) {
			v |= x[i+1] << (DB - s)
		}
		z[i] = v
	}
}

// divCheck verifies that the divisor is not zero.
func divCheck(y *Int) error {
	if y.Sign() == 0 {
		return ErrDivisionByZero
	}
	return nil
}

// Div returns the quotient x/y truncated towards zero.
func (x *Int) Div(y *Int) (*Int, error) {
	if err := divCheck(y); err != nil {
		return nil, err
	}
	q := new(Int)
	x.divRemTo(y, q, nil)
	return q, nil
}

// Rem returns the remainder x%y. The remainder has the sign of x.
func (x *Int) Rem(y *Int) (*Int, error) {
	if err := divCheck(y); err != nil {
		return nil, err
	}
	r := new(Int)
	x.divRemTo(y, nil, r)
	return r, nil
}

// DivRem returns the truncated quotient and remainder of x/y. They
// satisfy x = q*y + r and |r| < |y|.
func (x *Int) DivRem(y *Int) (q, r *Int, err error) {
	if err := divCheck(y); err != nil {
		return nil, nil, err
	}
	q = new(Int)
	r = new(Int)
	x.divRemTo(y, q, r)
	return q, r, nil
}

// mod returns x mod m for a positive m. The result is in [0, m).
func (x *Int) mod(m *Int) *Int {
	r := new(Int)
	x.abs().divRemTo(m, nil, r)
	if x.neg && r.Sign() > 0 {
		m.subTo(r, r)
	}
	return r
}

// Mod returns x mod m for a positive m. Unlike Rem, the result is
// always in [0, m).
func (x *Int) Mod(m *Int) (*Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	return x.mod(m), nil
}
