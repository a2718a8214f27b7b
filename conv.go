//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"fmt"
	"strconv"
	"strings"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// digitValue returns the value of the digit c, or 36 if c is not a
// digit in any supported radix.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 36
	}
}

// pow2Bits returns the number of bits in a digit of radix, or 0 if
// the radix does not have a limb-aligned conversion.
func pow2Bits(radix int) uint {
	switch radix {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	case 16:
		return 4
	case 32:
		return 5
	default:
		return 0
	}
}

// chunkSize returns the largest number of radix digits whose value
// fits in a limb, and radix raised to that power.
func chunkSize(radix int) (int, uint32) {
	cs := 0
	pow := uint64(1)
	for pow*uint64(radix) <= dm {
		pow *= uint64(radix)
		cs++
	}
	return cs, uint32(pow)
}

// Parse parses the signed numeral s in the given radix, 2 <= radix
// <= 36. The numeral is an optional minus sign followed by one or
// more digits. Letters are case-insensitive.
func Parse(s string, radix int) (*Int, error) {
	if radix < 2 || radix > 36 {
		return nil, fmt.Errorf("radix %d: %w", radix, ErrRadix)
	}
	numeral := s
	var neg bool
	if len(numeral) > 0 && numeral[0] == '-' {
		neg = true
		numeral = numeral[1:]
	}
	if len(numeral) == 0 {
		return nil, fmt.Errorf("no digits in %q: %w", s, ErrSyntax)
	}
	for i := 0; i < len(numeral); i++ {
		if digitValue(numeral[i]) >= radix {
			return nil, fmt.Errorf("invalid digit %q for radix %d: %w",
				numeral[i], radix, ErrSyntax)
		}
	}

	var z *Int
	if k := pow2Bits(radix); k > 0 {
		z = fromPow2(numeral, k)
	} else {
		z = fromRadix(numeral, radix)
	}
	if neg {
		z.negTo(z)
	}
	return z, nil
}

// fromPow2 packs the k-bit digits of s straight into limbs, starting
// from the least significant digit.
func fromPow2(s string, k uint) *Int {
	total := uint(len(s)) * k
	z := &Int{
		d: make([]uint32, total/DB+1),
	}
	var pos uint
	for i := len(s) - 1; i >= 0; i-- {
		v := uint32(digitValue(s[i]))
		li := pos / DB
		sh := pos % DB
		z.d[li] |= v << sh
		if sh+k > DB {
			z.d[li+1] |= v >> (DB - sh)
		}
		pos += k
	}
	z.clamp()
	return z
}

// fromRadix accumulates chunks of digits with limb multiply-add.
func fromRadix(s string, radix int) *Int {
	cs, pow := chunkSize(radix)
	z := new(Int)

	var w uint32
	var j int
	for i := 0; i < len(s); i++ {
		w = w*uint32(radix) + uint32(digitValue(s[i]))
		if j++; j >= cs {
			z.dMultiply(pow)
			z.dAddOffset(w, 0)
			j = 0
			w = 0
		}
	}
	if j > 0 {
		m := uint32(1)
		for ; j > 0; j-- {
			m *= uint32(radix)
		}
		z.dMultiply(m)
		z.dAddOffset(w, 0)
	}
	return z
}

// Text returns the representation of x in the given radix, 2 <= radix
// <= 36. Negative values have a leading minus sign and digits above 9
// are lowercase letters. Text panics for an invalid radix.
func (x *Int) Text(radix int) string {
	if radix < 2 || radix > 36 {
		panic(fmt.Sprintf("mpint: illegal radix %d", radix))
	}
	if x.neg {
		return "-" + x.Neg().Text(radix)
	}
	if len(x.d) == 0 {
		return "0"
	}
	if k := pow2Bits(radix); k > 0 {
		return x.toPow2(k)
	}
	return x.toRadix(radix)
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return x.Text(10)
}

func (x *Int) toPow2(k uint) string {
	nd := (uint(x.BitLen()) + k - 1) / k
	buf := make([]byte, nd)
	for p := uint(0); p < nd; p++ {
		buf[nd-1-p] = digits[x.digitAt(p*k, k)]
	}
	return string(buf)
}

// digitAt returns the k bits of the non-negative x starting from the
// bit pos.
func (x *Int) digitAt(pos, k uint) uint32 {
	i := int(pos / DB)
	sh := pos % DB
	v := uint64(x.limb(i)) >> sh
	if sh+k > DB {
		v |= uint64(x.limb(i+1)) << (DB - sh)
	}
	return uint32(v) & (1<<k - 1)
}

// toRadix converts the non-negative x with repeated division by the
// largest power of radix that fits in a limb.
func (x *Int) toRadix(radix int) string {
	cs, pow := chunkSize(radix)

	var chunks []string
	u := x.d
	for len(u) > 0 {
		q, r := divmodLimb(u, pow)
		for len(q) > 0 && q[len(q)-1] == 0 {
			q = q[:len(q)-1]
		}
		chunk := strconv.FormatUint(uint64(r[0]), radix)
		if len(q) > 0 && len(chunk) < cs {
			chunk = strings.Repeat("0", cs-len(chunk)) + chunk
		}
		chunks = append(chunks, chunk)
		u = q
	}

	var sb strings.Builder
	for i := len(chunks) - 1; i >= 0; i-- {
		sb.WriteString(chunks[i])
	}
	return sb.String()
}

// Format implements fmt.Formatter. It supports the verbs b, o, d, x,
// X, s, and v, and the width flag.
func (x *Int) Format(s fmt.State, ch rune) {
	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}
	var str string
	switch ch {
	case 'b':
		str = x.Text(2)
	case 'o':
		str = x.Text(8)
	case 'd', 's', 'v':
		str = x.Text(10)
	case 'x':
		str = x.Text(16)
	case 'X':
		str = strings.ToUpper(x.Text(16))
	default:
		fmt.Fprintf(s, "%%!%c(mpint.Int=%s)", ch, x.String())
		return
	}
	if w, ok := s.Width(); ok && len(str) < w {
		pad := strings.Repeat(" ", w-len(str))
		if s.Flag('-') {
			str += pad
		} else {
			str = pad + str
		}
	}
	fmt.Fprint(s, str)
}

// Bytes returns the big-endian two's complement representation of
// x. The result has BitLen()/8+1 bytes so it contains a sign bit and
// has a padding byte only when the sign would otherwise be
// ambiguous.
func (x *Int) Bytes() []byte {
	n := x.BitLen()/8 + 1
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[n-1-i] = byte(x.limb(i/4) >> (8 * uint(i%4)))
	}
	return b
}

// FromBytes creates an Int from the big-endian two's complement
// representation data.
func FromBytes(data []byte) *Int {
	z := fromBytes(data)
	if len(data) > 0 && data[0]&0x80 != 0 {
		z.neg = true
		if r := len(data) % 4; r != 0 {
			z.d[len(z.d)-1] |= uint32(dm) << (8 * uint(r))
		}
	}
	z.clamp()
	return z
}

// FromUnsignedBytes creates a non-negative Int from the big-endian
// magnitude data.
func FromUnsignedBytes(data []byte) *Int {
	z := fromBytes(data)
	z.clamp()
	return z
}

func fromBytes(data []byte) *Int {
	z := &Int{
		d: make([]uint32, (len(data)+3)/4),
	}
	for i := 0; i < len(data); i++ {
		z.d[i/4] |= uint32(data[len(data)-1-i]) << (8 * uint(i%4))
	}
	return z
}
