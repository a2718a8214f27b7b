//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mpint

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		s        string
		radix    int
		expected int64
	}{
		{"0", 10, 0},
		{"-0", 10, 0},
		{"FF", 16, 255},
		{"ff", 16, 255},
		{"-ff", 16, -255},
		{"101", 2, 5},
		{"777", 8, 511},
		{"zz", 36, 1295},
		{"00000000000000000000000042", 10, 42},
		{"9223372036854775807", 10, 9223372036854775807},
		{"-9223372036854775808", 10, -9223372036854775808},
		{"100000000", 16, 1 << 32},
		{"-100000000", 16, -(1 << 32)},
	}
	for _, test := range tests {
		x, err := Parse(test.s, test.radix)
		if err != nil {
			t.Errorf("Parse(%q, %d) failed: %v", test.s, test.radix, err)
			continue
		}
		if x.Int64() != test.expected {
			t.Errorf("Parse(%q, %d) = %s, expected %d",
				test.s, test.radix, x, test.expected)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		s     string
		radix int
		err   error
	}{
		{"", 10, ErrSyntax},
		{"-", 10, ErrSyntax},
		{"12a", 10, ErrSyntax},
		{"2", 2, ErrSyntax},
		{"1 2", 10, ErrSyntax},
		{"--1", 10, ErrSyntax},
		{"+1", 10, ErrSyntax},
		{"1", 1, ErrRadix},
		{"1", 37, ErrRadix},
	}
	for _, test := range tests {
		_, err := Parse(test.s, test.radix)
		if !errors.Is(err, test.err) {
			t.Errorf("Parse(%q, %d): got %v, expected %v",
				test.s, test.radix, err, test.err)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	rand := testRand(20)
	for i := 0; i < 100; i++ {
		x := randInt(t, rand, 400, true)
		bx := toBig(t, x)
		for radix := 2; radix <= 36; radix++ {
			s := x.Text(radix)
			if expected := bx.Text(radix); s != expected {
				t.Errorf("Text(%d) = %s, expected %s", radix, s, expected)
			}
			y, err := Parse(s, radix)
			if err != nil {
				t.Fatalf("Parse(%q, %d) failed: %v", s, radix, err)
			}
			if !y.Equal(x) {
				t.Errorf("Parse(Text(%s, %d)) = %s", x, radix, y)
			}
		}
	}
}

func TestTextPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Text(1) did not panic")
		}
	}()
	NewInt(1).Text(1)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format   string
		x        int64
		expected string
	}{
		{"%d", 255, "255"},
		{"%v", -255, "-255"},
		{"%s", 0, "0"},
		{"%x", 255, "ff"},
		{"%X", 255, "FF"},
		{"%x", -255, "-ff"},
		{"%b", 5, "101"},
		{"%o", 8, "10"},
		{"%5d", 42, "   42"},
		{"%-5d|", 42, "42   |"},
	}
	for _, test := range tests {
		s := fmt.Sprintf(test.format, NewInt(test.x))
		if s != test.expected {
			t.Errorf("Sprintf(%q, %d) = %q, expected %q",
				test.format, test.x, s, test.expected)
		}
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		x        int64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{-1, []byte{0xff}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{255, []byte{0x00, 0xff}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
		{1 << 32, []byte{0x01, 0x00, 0x00, 0x00, 0x00}},
		{-(1 << 32), []byte{0xff, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, test := range tests {
		x := NewInt(test.x)
		b := x.Bytes()
		if !bytes.Equal(b, test.expected) {
			t.Errorf("Bytes(%d) = %x, expected %x", test.x, b, test.expected)
		}
		if y := FromBytes(b); !y.Equal(x) {
			t.Errorf("FromBytes(%x) = %s, expected %d", b, y, test.x)
		}
	}

	rand := testRand(21)
	for i := 0; i < 300; i++ {
		x := randInt(t, rand, 300, true)
		if y := FromBytes(x.Bytes()); !y.Equal(x) {
			t.Errorf("FromBytes(Bytes(%s)) = %s", x, y)
		}
	}
}

func TestFromUnsignedBytes(t *testing.T) {
	x := FromUnsignedBytes([]byte{0xff, 0xff})
	if x.Int64() != 0xffff {
		t.Errorf("FromUnsignedBytes(ffff) = %s", x)
	}
	x = FromUnsignedBytes(nil)
	if x.Sign() != 0 {
		t.Errorf("FromUnsignedBytes(nil) = %s", x)
	}
	x = FromBytes([]byte{0xff, 0xff})
	if x.Int64() != -1 {
		t.Errorf("FromBytes(ffff) = %s", x)
	}
}

func TestMustParse(t *testing.T) {
	if MustParse("-42", 10).Int64() != -42 {
		t.Errorf("MustParse(-42) failed")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse(\"x\") did not panic")
		}
	}()
	MustParse("x", 10)
}
