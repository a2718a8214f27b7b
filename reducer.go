//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"fmt"
)

// Reducer implements repeated modular reduction with a fixed
// modulus. Values are converted into the reducer's domain with
// Convert, multiplied and squared there, and converted back with
// Revert. The reducers are immutable and safe for concurrent use.
type Reducer interface {
	// Modulus returns the reducer's modulus.
	Modulus() *Int

	// Convert maps x into the reduction domain.
	Convert(x *Int) *Int

	// Revert maps x from the reduction domain back to x mod m.
	Revert(x *Int) *Int

	// Mul returns the reduced product of x and y in the reduction
	// domain.
	Mul(x, y *Int) *Int

	// Sqr returns the reduced square of x in the reduction domain.
	Sqr(x *Int) *Int

	// reduce reduces the non-negative x in place.
	reduce(x *Int)

	// mulTo sets r to the reduced product of x and y. The r must be
	// distinct from x and y.
	mulTo(x, y, r *Int)

	// sqrTo sets r to the reduced square of x. The r must be
	// distinct from x.
	sqrTo(x, r *Int)
}

// Reduction selects the reduction strategy of modular
// exponentiation.
type Reduction int

// Reduction strategies.
const (
	Auto Reduction = iota
	Classic
	Barrett
	Montgomery
)

var reductionNames = map[Reduction]string{
	Auto:       "auto",
	Classic:    "classic",
	Barrett:    "barrett",
	Montgomery: "montgomery",
}

func (r Reduction) String() string {
	name, ok := reductionNames[r]
	if ok {
		return name
	}
	return fmt.Sprintf("{Reduction %d}", r)
}

// NewReducer creates a reducer of the given strategy for the modulus
// m. The Auto strategy selects Montgomery for odd and Barrett for
// even moduli.
func NewReducer(r Reduction, m *Int) (Reducer, error) {
	switch r {
	case Auto:
		if m.IsEven() {
			return NewBarrett(m)
		}
		return NewMontgomery(m)
	case Classic:
		return NewClassic(m)
	case Barrett:
		return NewBarrett(m)
	case Montgomery:
		return NewMontgomery(m)
	default:
		return nil, fmt.Errorf("mpint: unknown reduction %v", r)
	}
}

func checkModulus(m *Int) error {
	if m.Sign() <= 0 {
		return ErrInvalidModulus
	}
	return nil
}

// workspace holds the accumulator of an exponentiation. Each step
// writes its product into the spare buffer, which is never one of the
// operands, and then swaps the buffers.
type workspace struct {
	z   Reducer
	acc *Int
	tmp *Int
}

func newWorkspace(z Reducer, init *Int) *workspace {
	return &workspace{
		z:   z,
		acc: init.clone(),
		tmp: new(Int),
	}
}

// sqr squares the accumulator.
func (w *workspace) sqr() {
	w.z.sqrTo(w.acc, w.tmp)
	w.acc, w.tmp = w.tmp, w.acc
}

// mul multiplies the accumulator with g. The g must not be the
// workspace's own buffer.
func (w *workspace) mul(g *Int) {
	w.z.mulTo(w.acc, g, w.tmp)
	w.acc, w.tmp = w.tmp, w.acc
}

// result returns the accumulator reverted from the reduction domain.
func (w *workspace) result() *Int {
	return w.z.Revert(w.acc)
}

// classic reduces with plain division.
type classic struct {
	m *Int
}

// NewClassic creates a reducer that reduces with division by m. It is
// the cheapest to set up and the most expensive per operation.
func NewClassic(m *Int) (Reducer, error) {
	if err := checkModulus(m); err != nil {
		return nil, err
	}
	return &classic{
		m: m.clone(),
	}, nil
}

func (c *classic) Modulus() *Int {
	return c.m.clone()
}

func (c *classic) Convert(x *Int) *Int {
	if x.neg || x.Cmp(c.m) >= 0 {
		return x.mod(c.m)
	}
	return x.clone()
}

func (c *classic) Revert(x *Int) *Int {
	return x.clone()
}

func (c *classic) Mul(x, y *Int) *Int {
	r := new(Int)
	c.mulTo(x, y, r)
	return r
}

func (c *classic) Sqr(x *Int) *Int {
	r := new(Int)
	c.sqrTo(x, r)
	return r
}

func (c *classic) reduce(x *Int) {
	x.divRemTo(c.m, nil, x)
}

func (c *classic) mulTo(x, y, r *Int) {
	x.multiplyTo(y, r)
	c.reduce(r)
}

func (c *classic) sqrTo(x, r *Int) {
	x.squareTo(r)
	c.reduce(r)
}

// nullReducer does not reduce at all. It turns the exponentiation
// loop into a plain power.
type nullReducer struct{}

func (nullReducer) Modulus() *Int       { return nil }
func (nullReducer) Convert(x *Int) *Int { return x.clone() }
func (nullReducer) Revert(x *Int) *Int  { return x.clone() }
func (nullReducer) reduce(x *Int)       {}

func (nullReducer) Mul(x, y *Int) *Int {
	return x.Mul(y)
}

func (nullReducer) Sqr(x *Int) *Int {
	return x.Sqr()
}

func (nullReducer) mulTo(x, y, r *Int) {
	x.multiplyTo(y, r)
}

func (nullReducer) sqrTo(x, r *Int) {
	x.squareTo(r)
}
