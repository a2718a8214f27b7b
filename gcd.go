//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

// GCD returns the greatest common divisor of |x| and |y| using the
// binary GCD algorithm. GCD(0, 0) is 0.
func (x *Int) GCD(y *Int) *Int {
	a := x.Abs()
	b := y.Abs()
	if a.Cmp(b) < 0 {
		a, b = b, a
	}
	g := b.LowestSetBit()
	if g < 0 {
		return a
	}
	if i := a.LowestSetBit(); i < g {
		g = i
	}
	if g > 0 {
		a.rShiftTo(g, a)
		b.rShiftTo(g, b)
	}
	for a.Sign() > 0 {
		if i := a.LowestSetBit(); i > 0 {
			a.rShiftTo(i, a)
		}
		if i := b.LowestSetBit(); i > 0 {
			b.rShiftTo(i, b)
		}
		if a.Cmp(b) >= 0 {
			a.subTo(b, a)
			a.rShiftTo(1, a)
		} else {
			b.subTo(a, b)
			b.rShiftTo(1, b)
		}
	}
	if g > 0 {
		b.lShiftTo(g, b)
	}
	return b
}

// LCM returns the least common multiple |x*y| / GCD(x, y). LCM is 0
// if either argument is 0.
func (x *Int) LCM(y *Int) *Int {
	g := x.GCD(y)
	if g.Sign() == 0 {
		return new(Int)
	}
	r := new(Int)
	x.Mul(y).abs().divRemTo(g, r, nil)
	return r
}

// ModInverse returns the inverse of x modulo m, a value in [0, m)
// such that x*r mod m = 1. It uses the extended binary GCD. The
// function returns ErrNoInverse if x and m are not coprime and
// ErrInvalidModulus if m is not positive.
func (x *Int) ModInverse(m *Int) (*Int, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	if m.Equal(one) {
		return new(Int), nil
	}
	xm := x.mod(m)
	ac := m.IsEven()
	if (xm.IsEven() && ac) || xm.Sign() == 0 {
		return nil, ErrNoInverse
	}

	// Invariants: u = a*m + b*xm and v = c*m + d*xm. The a and c are
	// only tracked for even moduli; for odd moduli the invariants
	// hold modulo m.
	u := m.clone()
	v := xm.clone()
	a := NewInt(1)
	b := NewInt(0)
	c := NewInt(0)
	d := NewInt(1)

	for u.Sign() != 0 {
		for u.IsEven() {
			u.rShiftTo(1, u)
			if ac {
				if !a.IsEven() || !b.IsEven() {
					a.addTo(xm, a)
					b.subTo(m, b)
				}
				a.rShiftTo(1, a)
			} else if !b.IsEven() {
				b.subTo(m, b)
			}
			b.rShiftTo(1, b)
		}
		for v.IsEven() {
			v.rShiftTo(1, v)
			if ac {
				if !c.IsEven() || !d.IsEven() {
					c.addTo(xm, c)
					d.subTo(m, d)
				}
				c.rShiftTo(1, c)
			} else if !d.IsEven() {
				d.subTo(m, d)
			}
			d.rShiftTo(1, d)
		}
		if u.Cmp(v) >= 0 {
			u.subTo(v, u)
			if ac {
				a.subTo(c, a)
			}
			b.subTo(d, b)
		} else {
			v.subTo(u, v)
			if ac {
				c.subTo(a, c)
			}
			d.subTo(b, d)
		}
	}
	if !v.Equal(one) {
		return nil, ErrNoInverse
	}
	return d.mod(m), nil
}
