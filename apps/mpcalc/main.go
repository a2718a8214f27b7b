//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/markkurossi/mpint"
	"github.com/markkurossi/mpint/env"
)

var (
	radix   = 10
	rounds  = 20
	verbose = false
	errArgs = errors.New("invalid number of arguments")
)

// opFunc implements an operation for the parsed arguments.
type opFunc func(name string, args []*mpint.Int, config *env.Config) error

type op struct {
	args int
	fn   opFunc
}

var ops = map[string]op{
	"add":      {2, binary(func(a, b *mpint.Int) *mpint.Int { return a.Add(b) })},
	"sub":      {2, binary(func(a, b *mpint.Int) *mpint.Int { return a.Sub(b) })},
	"mul":      {2, binary(func(a, b *mpint.Int) *mpint.Int { return a.Mul(b) })},
	"and":      {2, binary(func(a, b *mpint.Int) *mpint.Int { return a.And(b) })},
	"or":       {2, binary(func(a, b *mpint.Int) *mpint.Int { return a.Or(b) })},
	"xor":      {2, binary(func(a, b *mpint.Int) *mpint.Int { return a.Xor(b) })},
	"andnot":   {2, binary(func(a, b *mpint.Int) *mpint.Int { return a.AndNot(b) })},
	"gcd":      {2, binary(func(a, b *mpint.Int) *mpint.Int { return a.GCD(b) })},
	"lcm":      {2, binary(func(a, b *mpint.Int) *mpint.Int { return a.LCM(b) })},
	"sqr":      {1, unary(func(a *mpint.Int) *mpint.Int { return a.Sqr() })},
	"neg":      {1, unary(func(a *mpint.Int) *mpint.Int { return a.Neg() })},
	"abs":      {1, unary(func(a *mpint.Int) *mpint.Int { return a.Abs() })},
	"not":      {1, unary(func(a *mpint.Int) *mpint.Int { return a.Not() })},
	"div":      {2, binaryErr(func(a, b *mpint.Int) (*mpint.Int, error) { return a.Div(b) })},
	"rem":      {2, binaryErr(func(a, b *mpint.Int) (*mpint.Int, error) { return a.Rem(b) })},
	"mod":      {2, binaryErr(func(a, b *mpint.Int) (*mpint.Int, error) { return a.Mod(b) })},
	"modinv":   {2, binaryErr(func(a, b *mpint.Int) (*mpint.Int, error) { return a.ModInverse(b) })},
	"divrem":   {2, opDivRem},
	"lsh":      {2, opShift},
	"rsh":      {2, opShift},
	"bitlen":   {1, opBits},
	"bitcount": {1, opBits},
	"pow":      {2, opPow},
	"modpow":   {3, opModPow},
	"prime":    {1, opPrime},
	"bytes":    {1, opBytes},
}

func main() {
	flag.IntVar(&radix, "r", 10, "Input and output radix")
	flag.IntVar(&rounds, "rounds", 20, "Primality test rounds")
	bits := flag.Int("bits", 512, "Bit size for random, genprime, and bench")
	workers := flag.Int("workers", 4, "Prime search workers")
	seed := flag.String("seed", "", "Seed for deterministic random values")
	fVerbose := flag.Bool("v", false, "Verbose output")
	flag.Usage = usage
	flag.Parse()

	verbose = *fVerbose

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	config := &env.Config{}
	if len(*seed) > 0 {
		config.Rand = env.NewSeeded([]byte(*seed), 0)
	}

	var err error
	switch args[0] {
	case "random":
		err = random(*bits, config)
	case "genprime":
		err = genPrime(*bits, *workers, *seed)
	case "bench":
		err = bench(*bits, config)
	default:
		err = run(args[0], args[1:], config)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: mpcalc [options] op [args...]\n\nOps:")
	var names []string
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, " %s", name)
	}
	fmt.Fprintf(out, " random genprime bench\n\nOptions:\n")
	flag.PrintDefaults()
}

func run(name string, args []string, config *env.Config) error {
	o, ok := ops[name]
	if !ok {
		return fmt.Errorf("unknown operation '%s'", name)
	}
	if len(args) != o.args {
		return fmt.Errorf("%s: %w: expected %d, got %d",
			name, errArgs, o.args, len(args))
	}
	values := make([]*mpint.Int, len(args))
	for idx, arg := range args {
		v, err := mpint.Parse(arg, radix)
		if err != nil {
			return fmt.Errorf("%s: argument %d: %w", name, idx, err)
		}
		values[idx] = v
	}
	return o.fn(name, values, config)
}

func unary(f func(a *mpint.Int) *mpint.Int) opFunc {
	return func(name string, args []*mpint.Int, config *env.Config) error {
		PrintResult(os.Stdout, f(args[0]), radix)
		return nil
	}
}

func binary(f func(a, b *mpint.Int) *mpint.Int) opFunc {
	return func(name string, args []*mpint.Int, config *env.Config) error {
		PrintResult(os.Stdout, f(args[0], args[1]), radix)
		return nil
	}
}

func binaryErr(f func(a, b *mpint.Int) (*mpint.Int, error)) opFunc {
	return func(name string, args []*mpint.Int, config *env.Config) error {
		r, err := f(args[0], args[1])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		PrintResult(os.Stdout, r, radix)
		return nil
	}
}

func opDivRem(name string, args []*mpint.Int, config *env.Config) error {
	q, r, err := args[0].DivRem(args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	PrintResults(os.Stdout, []*mpint.Int{q, r}, radix)
	return nil
}

func opShift(name string, args []*mpint.Int, config *env.Config) error {
	n, err := smallArg(args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if name == "rsh" {
		n = -n
	}
	PrintResult(os.Stdout, args[0].Lsh(n), radix)
	return nil
}

func opBits(name string, args []*mpint.Int, config *env.Config) error {
	if name == "bitlen" {
		fmt.Printf("%d\n", args[0].BitLen())
	} else {
		fmt.Printf("%d\n", args[0].BitCount())
	}
	return nil
}

func opPow(name string, args []*mpint.Int, config *env.Config) error {
	e, err := smallArg(args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if e < 0 {
		return fmt.Errorf("%s: negative exponent %d", name, e)
	}
	r := args[0].Pow(uint32(e))
	PrintPower(os.Stdout, args[0], args[1], nil, r, radix)
	return nil
}

func opModPow(name string, args []*mpint.Int, config *env.Config) error {
	r, err := args[0].ModPow(args[1], args[2])
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	PrintPower(os.Stdout, args[0], args[1], args[2], r, radix)
	return nil
}

func opPrime(name string, args []*mpint.Int, config *env.Config) error {
	ok, err := args[0].ProbablyPrime(rounds, config.GetRandom())
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if ok {
		fmt.Printf("%s: probably prime\n", args[0].Text(radix))
	} else {
		fmt.Printf("%s: composite\n", args[0].Text(radix))
	}
	return nil
}

func opBytes(name string, args []*mpint.Int, config *env.Config) error {
	fmt.Printf("%x\n", args[0].Bytes())
	return nil
}

func random(bits int, config *env.Config) error {
	r, err := mpint.Random(bits, config.GetRandom())
	if err != nil {
		return err
	}
	PrintResult(os.Stdout, r, radix)
	return nil
}

// smallArg converts x to an int for shift counts and small exponents.
func smallArg(x *mpint.Int) (int, error) {
	if x.BitLen() > 31 {
		return 0, fmt.Errorf("argument %s out of range", x)
	}
	return int(x.Int32()), nil
}
