//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

// montgomery implements Montgomery reduction, HAC 14.32. The domain
// representation of x is xR mod m with R = b^k, b the limb radix and
// k the number of limbs in m.
type montgomery struct {
	m  *Int
	mp uint32
	k  int
}

// NewMontgomery creates a Montgomery reducer for the odd modulus m.
func NewMontgomery(m *Int) (Reducer, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	if m.IsEven() {
		return nil, ErrEvenModulus
	}
	return &montgomery{
		m:  m.clone(),
		mp: invDigit(m.d[0]),
		k:  len(m.d),
	}, nil
}

// invDigit returns -1/x mod b for an odd limb x. It doubles the
// number of correct low bits of the inverse y of x on every step with
// y' = y(2 - xy).
func invDigit(x uint32) uint32 {
	if x&1 == 0 {
		return 0
	}
	y := x & 3                            // 1/x mod 2^2
	y = (y * (2 - (x&0xf)*y)) & 0xf       // 1/x mod 2^4
	y = (y * (2 - (x&0xff)*y)) & 0xff     // 1/x mod 2^8
	y = (y * (2 - (x&0xffff)*y)) & 0xffff // 1/x mod 2^16
	y = y * (2 - x*y)                     // 1/x mod 2^32
	return -y
}

func (mont *montgomery) Modulus() *Int {
	return mont.m.clone()
}

// Convert returns xR mod m.
func (mont *montgomery) Convert(x *Int) *Int {
	r := new(Int)
	x.abs().dlShiftTo(mont.k, r)
	r.divRemTo(mont.m, nil, r)
	if x.neg && r.Sign() > 0 {
		mont.m.subTo(r, r)
	}
	return r
}

// Revert returns x/R mod m.
func (mont *montgomery) Revert(x *Int) *Int {
	r := x.clone()
	mont.reduce(r)
	return r
}

func (mont *montgomery) Mul(x, y *Int) *Int {
	r := new(Int)
	mont.mulTo(x, y, r)
	return r
}

func (mont *montgomery) Sqr(x *Int) *Int {
	r := new(Int)
	mont.sqrTo(x, r)
	return r
}

// reduce sets x to x/R mod m for 0 <= x < mR. It clears one limb at a
// time from the bottom by adding a multiple of m.
func (mont *montgomery) reduce(x *Int) {
	k := mont.k
	md := mont.m.d
	for len(x.d) <= 2*k {
		x.d = append(x.d, 0)
	}
	xd := x.d
	for i := 0; i < k; i++ {
		// u0 = x[i]*mp mod b makes x[i] + u0*m[0] = 0 mod b.
		u0 := xd[i] * mont.mp
		c := am(md, u0, xd[i:i+k], 0)
		for j := i + k; c != 0; j++ {
			v := uint64(xd[j]) + uint64(c)
			xd[j] = uint32(v)
			c = uint32(v >> DB)
		}
	}
	x.clamp()
	x.drShiftTo(k, x)
	if x.Cmp(mont.m) >= 0 {
		x.subTo(mont.m, x)
	}
}

func (mont *montgomery) mulTo(x, y, r *Int) {
	x.multiplyTo(y, r)
	mont.reduce(r)
}

func (mont *montgomery) sqrTo(x, r *Int) {
	x.squareTo(r)
	mont.reduce(r)
}
