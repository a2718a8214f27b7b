//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

// multiplyTo sets r to x*a. The r must be distinct from x and a.
func (x *Int) multiplyTo(a, r *Int) {
	neg := x.neg != a.neg
	xd, yd := x.abs().d, a.abs().d

	rd := r.alloc(len(xd) + len(yd))
	for i, yi := range yd {
		rd[i+len(xd)] = am(xd, yi, rd[i:i+len(xd)], 0)
	}
	r.d = rd
	r.neg = false
	r.clamp()
	if neg {
		r.negTo(r)
	}
}

// squareTo sets r to x*x. The r must be distinct from x. The cross
// products x[i]*x[j], i<j, are computed once and doubled before the
// diagonal squares are added.
func (x *Int) squareTo(r *Int) {
	xd := x.abs().d
	n := len(xd)

	rd := r.alloc(2 * n)
	for i := 0; i < n-1; i++ {
		rd[i+n] = am(xd[i+1:], xd[i], rd[2*i+1:i+n], 0)
	}

	// Double the cross products.
	var c uint32
	for i, v := range rd {
		rd[i] = v<<1 | c
		c = v >> (DB - 1)
	}

	// Add the diagonal.
	var carry uint64
	for i, xi := range xd {
		p := uint64(xi) * uint64(xi)
		lo := uint64(rd[2*i]) + p&dm + carry
		rd[2*i] = uint32(lo)
		hi := uint64(rd[2*i+1]) + p>>DB + lo>>DB
		rd[2*i+1] = uint32(hi)
		carry = hi >> DB
	}

	r.d = rd
	r.neg = false
	r.clamp()
}

// multiplyLowerTo sets r to the lower n limbs of x*a. The x and a
// must be non-negative and r distinct from both.
func (x *Int) multiplyLowerTo(a *Int, n int, r *Int) {
	xd, ad := x.d, a.d
	xt := len(xd)
	rt := min(xt+len(ad), n)

	rd := r.alloc(rt)
	i := 0
	for j := rt - xt; i < j; i++ {
		rd[i+xt] = am(xd, ad[i], rd[i:i+xt], 0)
	}
	for j := min(len(ad), n); i < j; i++ {
		am(xd[:n-i], ad[i], rd[i:n], 0)
	}
	r.d = rd
	r.neg = false
	r.clamp()
}

// multiplyUpperTo sets r to the limbs of x*a from the position n
// upwards. The partial products below n-1 are skipped so the lowest
// limbs of the result may be short by the dropped carries. The x and
// a must be non-negative and r distinct from both.
func (x *Int) multiplyUpperTo(a *Int, n int, r *Int) {
	xd, ad := x.d, a.d
	xt := len(xd)
	n--

	rt := xt + len(ad) - n
	if rt <= 0 {
		r.d = r.d[:0]
		r.neg = false
		return
	}
	rd := r.alloc(rt)
	for i := max(n-xt, 0); i < len(ad); i++ {
		k0 := max(n-i, 0)
		off := i + k0 - n
		rd[xt+i-n] = am(xd[k0:], ad[i], rd[off:xt+i-n], 0)
	}
	r.d = rd
	r.neg = false
	r.clamp()
	r.drShiftTo(1, r)
}
