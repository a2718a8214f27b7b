//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"math/bits"
)

// windowSize returns the exponentiation window size for an exponent
// of l bits.
func windowSize(l int) int {
	switch {
	case l < 18:
		return 1
	case l < 48:
		return 3
	case l < 144:
		return 4
	case l < 768:
		return 5
	default:
		return 6
	}
}

// ModPow returns x^e mod m. The result is in [0, m). A negative
// exponent raises the modular inverse of x to |e|. ModPow selects
// classic reduction for short exponents and single-limb moduli,
// Barrett reduction for even moduli, and Montgomery reduction
// otherwise.
func (x *Int) ModPow(e, m *Int) (*Int, error) {
	return x.ModPowWith(e, m, Auto)
}

// ModPowWith returns x^e mod m computed with the given reduction
// strategy. The Auto strategy makes the same selection as ModPow.
func (x *Int) ModPowWith(e, m *Int, reduction Reduction) (*Int, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	base := x
	if e.neg {
		inv, err := x.ModInverse(m)
		if err != nil {
			return nil, err
		}
		base = inv
		e = e.Neg()
	}
	if e.Sign() == 0 {
		return one.mod(m), nil
	}
	if reduction == Auto && (e.BitLen() < 8 || len(m.d) == 1) {
		reduction = Classic
	}
	z, err := NewReducer(reduction, m)
	if err != nil {
		return nil, err
	}
	return base.modPow(e, z), nil
}

// modPow computes x^e with the reducer z using a sliding window over
// the positive exponent e. The window is shrunk to end at its last
// set bit so each window multiplies in one odd power.
func (x *Int) modPow(e *Int, z Reducer) *Int {
	k := windowSize(e.BitLen())
	k1 := k - 1
	km := uint32(1)<<k - 1

	// Precompute the odd powers g[1], g[3], ..., g[2^k-1].
	g := make([]*Int, km+1)
	g[1] = z.Convert(x)
	if k > 1 {
		g2 := z.Sqr(g[1])
		for n := uint32(3); n <= km; n += 2 {
			g[n] = z.Mul(g2, g[n-2])
		}
	}

	ed := e.d
	j := len(ed) - 1
	i := bits.Len32(ed[j]) - 1

	var ws *workspace
	for j >= 0 {
		var w uint32
		if i >= k1 {
			w = (ed[j] >> (i - k1)) & km
		} else {
			w = (ed[j] & (uint32(1)<<(i+1) - 1)) << (k1 - i)
			if j > 0 {
				w |= ed[j-1] >> (DB + i - k1)
			}
		}

		n := k
		for w&1 == 0 {
			w >>= 1
			n--
		}
		if i -= n; i < 0 {
			i += DB
			j--
		}
		if ws == nil {
			ws = newWorkspace(z, g[w])
		} else {
			for ; n > 0; n-- {
				ws.sqr()
			}
			ws.mul(g[w])
		}

		// Square through the zero bits up to the next window.
		for j >= 0 && ed[j]&(1<<i) == 0 {
			ws.sqr()
			if i--; i < 0 {
				i = DB - 1
				j--
			}
		}
	}
	return ws.result()
}

// exp computes x^e with the reducer z using square-and-multiply. The
// exponent 0 gives 1.
func (x *Int) exp(e uint32, z Reducer) *Int {
	if e == 0 {
		return one.clone()
	}
	g := z.Convert(x)
	ws := newWorkspace(z, g)
	for i := bits.Len32(e) - 2; i >= 0; i-- {
		ws.sqr()
		if e&(1<<i) != 0 {
			ws.mul(g)
		}
	}
	return ws.result()
}

// Pow returns x^e.
func (x *Int) Pow(e uint32) *Int {
	return x.exp(e, nullReducer{})
}

// ModPowInt returns x^e mod m for a small exponent. It uses classic
// reduction for exponents below 256 or even moduli and Montgomery
// reduction otherwise.
func (x *Int) ModPowInt(e uint32, m *Int) (*Int, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	if e == 0 {
		return one.mod(m), nil
	}
	var z Reducer
	var err error
	if e < 256 || m.IsEven() {
		z, err = NewClassic(m)
	} else {
		z, err = NewMontgomery(m)
	}
	if err != nil {
		return nil, err
	}
	return x.exp(e, z), nil
}
