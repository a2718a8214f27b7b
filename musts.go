//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"fmt"
)

// MustParse is like Parse but panics if the numeral cannot be
// parsed. It simplifies the initialization of constants.
func MustParse(s string, radix int) *Int {
	x, err := Parse(s, radix)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q, %v) failed: %v", s, radix, err))
	}
	return x
}
