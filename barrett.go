//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

// barrett implements Barrett reduction, HAC 14.42. It works for any
// positive modulus and is used for even moduli where Montgomery
// reduction is not possible.
type barrett struct {
	m  *Int
	mu *Int
	k  int
}

// NewBarrett creates a Barrett reducer for the modulus m. It
// precomputes mu = floor(b^2k / m) where b is the limb radix and k is
// the number of limbs in m.
func NewBarrett(m *Int) (Reducer, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	k := len(m.d)
	r2 := new(Int)
	one.dlShiftTo(2*k, r2)
	mu := new(Int)
	r2.divRemTo(m, mu, nil)

	return &barrett{
		m:  m.clone(),
		mu: mu,
		k:  k,
	}, nil
}

func (b *barrett) Modulus() *Int {
	return b.m.clone()
}

func (b *barrett) Convert(x *Int) *Int {
	if x.neg || len(x.d) > 2*b.k {
		return x.mod(b.m)
	}
	r := x.clone()
	b.reduce(r)
	return r
}

func (b *barrett) Revert(x *Int) *Int {
	return x.clone()
}

func (b *barrett) Mul(x, y *Int) *Int {
	r := new(Int)
	b.mulTo(x, y, r)
	return r
}

func (b *barrett) Sqr(x *Int) *Int {
	r := new(Int)
	b.sqrTo(x, r)
	return r
}

// reduce sets x to x mod m for 0 <= x < b^2k.
func (b *barrett) reduce(x *Int) {
	k := b.k

	// q = floor(floor(x / b^(k-1)) * mu / b^(k+1))
	r2 := new(Int)
	x.drShiftTo(k-1, r2)
	q3 := new(Int)
	b.mu.multiplyUpperTo(r2, k+1, q3)

	// x = (x mod b^(k+1)) - (q*m mod b^(k+1))
	if len(x.d) > k+1 {
		x.d = x.d[:k+1]
		x.clamp()
	}
	r2 = new(Int)
	b.m.multiplyLowerTo(q3, k+1, r2)
	for x.Cmp(r2) < 0 {
		x.dAddOffset(1, k+1)
	}
	x.subTo(r2, x)

	// The estimate is short by at most two moduli.
	for x.Cmp(b.m) >= 0 {
		x.subTo(b.m, x)
	}
}

func (b *barrett) mulTo(x, y, r *Int) {
	x.multiplyTo(y, r)
	b.reduce(r)
}

func (b *barrett) sqrTo(x, r *Int) {
	x.squareTo(r)
	b.reduce(r)
}
