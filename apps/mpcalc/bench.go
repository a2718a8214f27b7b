//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/markkurossi/mpint"
	"github.com/markkurossi/mpint/env"
	"github.com/markkurossi/mpint/timing"
)

// bench times modular exponentiation of random bits-bit operands with
// the reduction strategies and verifies that they agree.
func bench(bits int, config *env.Config) error {
	if bits < 2 {
		return fmt.Errorf("invalid benchmark size %d", bits)
	}
	rand := config.GetRandom()

	var values [3]*mpint.Int
	for idx := range values {
		v, err := mpint.Random(bits, rand)
		if err != nil {
			return err
		}
		values[idx] = v
	}
	x, e := values[0], values[1]
	odd := values[2].SetBit(bits - 1).SetBit(0)
	even := odd.ClearBit(0)

	cases := []struct {
		modulus    string
		m          *mpint.Int
		reductions []mpint.Reduction
	}{
		{
			modulus: "odd",
			m:       odd,
			reductions: []mpint.Reduction{
				mpint.Classic, mpint.Barrett, mpint.Montgomery,
			},
		},
		{
			modulus: "even",
			m:       even,
			reductions: []mpint.Reduction{
				mpint.Classic, mpint.Barrett,
			},
		},
	}

	tm := timing.NewTiming()
	for _, c := range cases {
		var expected *mpint.Int
		for _, r := range c.reductions {
			result, err := x.ModPowWith(e, c.m, r)
			if err != nil {
				return fmt.Errorf("%s %s: %w", c.modulus, r, err)
			}
			tm.Sample(fmt.Sprintf("%s/%s", c.modulus, r),
				[]string{fmt.Sprintf("%d", result.BitLen())})
			if expected == nil {
				expected = result
			} else if !result.Equal(expected) {
				return fmt.Errorf("%s %s: result mismatch: %s != %s",
					c.modulus, r, result, expected)
			}
		}
	}
	if verbose {
		fmt.Printf("x=%s\ne=%s\nm=%s\n", x, e, odd)
	}
	tm.Print(os.Stdout, "Bits")
	return nil
}
