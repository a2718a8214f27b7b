//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/mpint"
	"github.com/markkurossi/text/superscript"
)

// PrintResult prints the result value in the given base.
func PrintResult(out io.Writer, result *mpint.Int, base int) {
	fmt.Fprintf(out, "%s\n", Format(result, base))
}

// PrintResults prints the result values, one per line.
func PrintResults(out io.Writer, results []*mpint.Int, base int) {
	for idx, result := range results {
		fmt.Fprintf(out, "Result[%d]: %s\n", idx, Format(result, base))
	}
}

// PrintPower prints the power x^e or x^e mod m with its result. Small
// exponents are rendered as superscripts.
func PrintPower(out io.Writer, x, e, m, result *mpint.Int, base int) {
	if verbose {
		var exp string
		if e.Sign() >= 0 && e.BitLen() < 31 && base == 10 {
			exp = superscript.Itoa(int(e.Int32()))
		} else {
			exp = "^" + Format(e, base)
		}
		fmt.Fprintf(out, "%s%s", Format(x, base), exp)
		if m != nil {
			fmt.Fprintf(out, " mod %s", Format(m, base))
		}
		fmt.Fprintf(out, " = ")
	}
	PrintResult(out, result, base)
}

// Format formats the value x in the given base. Bases 2, 8, and 16
// get their conventional prefixes.
func Format(x *mpint.Int, base int) string {
	var prefix string
	switch base {
	case 2:
		prefix = "0b"
	case 8:
		prefix = "0o"
	case 16:
		prefix = "0x"
	}
	if x.Sign() < 0 {
		return "-" + prefix + x.Neg().Text(base)
	}
	return prefix + x.Text(base)
}
