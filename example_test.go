//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint_test

import (
	"fmt"

	"github.com/markkurossi/mpint"
	"github.com/markkurossi/mpint/env"
)

func ExampleInt_ModPow() {
	x := mpint.NewInt(4)
	r, err := x.ModPow(mpint.NewInt(13), mpint.NewInt(497))
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 445
}

func ExampleInt_ModInverse() {
	r, err := mpint.NewInt(3).ModInverse(mpint.NewInt(11))
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 4
}

func ExampleParse() {
	x, err := mpint.Parse("FF", 16)
	if err != nil {
		panic(err)
	}
	fmt.Println(x, x.Text(16), x.Text(2))
	// Output: 255 ff 11111111
}

func ExampleInt_ProbablyPrime() {
	rand := env.NewSeeded([]byte("example"), 0)
	for _, v := range []int64{97, 100} {
		ok, err := mpint.NewInt(v).ProbablyPrime(20, rand)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%d: %v\n", v, ok)
	}
	// Output:
	// 97: true
	// 100: false
}

func ExampleNewReducer() {
	m := mpint.NewInt(497)
	z, err := mpint.NewReducer(mpint.Montgomery, m)
	if err != nil {
		panic(err)
	}
	x := z.Convert(mpint.NewInt(100))
	y := z.Convert(mpint.NewInt(200))
	fmt.Println(z.Revert(z.Mul(x, y)))
	// Output: 120
}
