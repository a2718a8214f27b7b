//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/markkurossi/mpint/env"
)

// lowPrimes lists the primes below 1000.
var lowPrimes = [...]uint32{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211,
	223, 227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283,
	293, 307, 311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379,
	383, 389, 397, 401, 409, 419, 421, 431, 433, 439, 443, 449, 457, 461,
	463, 467, 479, 487, 491, 499, 503, 509, 521, 523, 541, 547, 557, 563,
	569, 571, 577, 587, 593, 599, 601, 607, 613, 617, 619, 631, 641, 643,
	647, 653, 659, 661, 673, 677, 683, 691, 701, 709, 719, 727, 733, 739,
	743, 751, 757, 761, 769, 773, 787, 797, 809, 811, 821, 823, 827, 829,
	839, 853, 857, 859, 863, 877, 881, 883, 887, 907, 911, 919, 929, 937,
	941, 947, 953, 967, 971, 977, 983, 991, 997,
}

// lpLimit bounds the trial division products so that multiplying in
// one more table prime still fits in a limb.
const lpLimit = dv / 997

// ProbablyPrime tests if |x| is prime. It checks the small prime
// table, trial divides with the small primes, and runs (rounds+1)/2
// rounds of Miller-Rabin, at most len(lowPrimes). The witnesses are
// small primes selected with random bytes read from rand. A nil rand
// uses the platform's secure random source.
//
// A false result is always correct. A true result is only correct
// with high probability: the Miller-Rabin witnesses are drawn from
// the small prime table instead of uniformly from [2, n-2], so the
// error bound is weaker than that of the canonical test.
func (x *Int) ProbablyPrime(rounds int, rand io.Reader) (bool, error) {
	n := x.Abs()
	last := lowPrimes[len(lowPrimes)-1]
	if len(n.d) == 1 && n.d[0] <= last {
		for _, p := range lowPrimes {
			if n.d[0] == p {
				return true, nil
			}
		}
		return false, nil
	}
	if n.IsEven() {
		return false, nil
	}

	for i := 1; i < len(lowPrimes); {
		m := lowPrimes[i]
		j := i + 1
		for j < len(lowPrimes) && m < lpLimit {
			m *= lowPrimes[j]
			j++
		}
		r := n.ModInt(m)
		for ; i < j; i++ {
			if r%lowPrimes[i] == 0 {
				return false, nil
			}
		}
	}
	return n.millerRabin(rounds, env.Random(rand))
}

// millerRabin runs the Miller-Rabin rounds for the odd x > 997.
func (x *Int) millerRabin(rounds int, rand io.Reader) (bool, error) {
	n1 := x.Sub(one)
	k := n1.LowestSetBit()
	if k <= 0 {
		return false, nil
	}
	r := n1.Rsh(k)

	rounds = (rounds + 1) >> 1
	if rounds > len(lowPrimes) {
		rounds = len(lowPrimes)
	}
	for i := 0; i < rounds; i++ {
		idx, err := randIndex(rand, len(lowPrimes))
		if err != nil {
			return false, err
		}
		a := NewInt(int64(lowPrimes[idx]))
		y, err := a.ModPow(r, x)
		if err != nil {
			return false, err
		}
		if y.Equal(one) || y.Equal(n1) {
			continue
		}
		for j := 1; j < k && !y.Equal(n1); j++ {
			y, err = y.ModPowInt(2, x)
			if err != nil {
				return false, err
			}
			if y.Equal(one) {
				return false, nil
			}
		}
		if !y.Equal(n1) {
			return false, nil
		}
	}
	return true, nil
}

// randIndex returns a uniformly distributed random index in [0, n)
// for 0 < n <= 65536.
func randIndex(rand io.Reader, n int) (int, error) {
	limit := 65536 - 65536%n
	var buf [2]byte
	for {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return 0, fmt.Errorf("mpint: random source: %w", err)
		}
		v := int(binary.BigEndian.Uint16(buf[:]))
		if v < limit {
			return v % n, nil
		}
	}
}

// ProbablePrime returns a random probable prime of exactly bits bits
// that passes ProbablyPrime with the given rounds. For bits < 2 the
// result is 1. The search starts from a random odd value with the top
// bit set and steps by two, wrapping back into the bits range.
func ProbablePrime(bits, rounds int, rand io.Reader) (*Int, error) {
	if bits < 2 {
		return NewInt(1), nil
	}
	rand = env.Random(rand)

	x, err := Random(bits, rand)
	if err != nil {
		return nil, err
	}
	if !x.Bit(bits - 1) {
		x = x.SetBit(bits - 1)
	}
	if x.IsEven() {
		x.dAddOffset(1, 0)
	}
	top := one.Lsh(bits - 1)
	for {
		ok, err := x.ProbablyPrime(rounds, rand)
		if err != nil {
			return nil, err
		}
		if ok {
			return x, nil
		}
		x.dAddOffset(2, 0)
		if x.BitLen() > bits {
			x.subTo(top, x)
		}
	}
}
