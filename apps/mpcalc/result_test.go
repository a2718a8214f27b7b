//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"testing"

	"github.com/markkurossi/mpint"
	"github.com/markkurossi/mpint/env"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		x        int64
		base     int
		expected string
	}{
		{255, 10, "255"},
		{255, 16, "0xff"},
		{-255, 16, "-0xff"},
		{5, 2, "0b101"},
		{8, 8, "0o10"},
		{35, 36, "z"},
	}
	for _, test := range tests {
		if s := Format(mpint.NewInt(test.x), test.base); s != test.expected {
			t.Errorf("Format(%d, %d) = %q, expected %q",
				test.x, test.base, s, test.expected)
		}
	}
}

func TestPrintPower(t *testing.T) {
	verbose = true
	defer func() {
		verbose = false
	}()

	var buf bytes.Buffer
	PrintPower(&buf, mpint.NewInt(4), mpint.NewInt(13), mpint.NewInt(497),
		mpint.NewInt(445), 10)
	if buf.String() != "4¹³ mod 497 = 445\n" {
		t.Errorf("PrintPower: %q", buf.String())
	}

	buf.Reset()
	PrintPower(&buf, mpint.NewInt(2), mpint.NewInt(10), nil,
		mpint.NewInt(1024), 16)
	if buf.String() != "0x2^0xa = 0x400\n" {
		t.Errorf("PrintPower: %q", buf.String())
	}
}

func TestRun(t *testing.T) {
	config := &env.Config{
		Rand: env.NewSeeded([]byte("mpcalc"), 0),
	}
	for _, args := range [][]string{
		{"add", "1", "2"},
		{"divrem", "-7", "2"},
		{"lsh", "1", "100"},
		{"modpow", "4", "13", "497"},
		{"prime", "97"},
		{"bitlen", "255"},
	} {
		if err := run(args[0], args[1:], config); err != nil {
			t.Errorf("%v: %v", args, err)
		}
	}
	for _, args := range [][]string{
		{"unknown"},
		{"add", "1"},
		{"add", "1", "x"},
		{"div", "1", "0"},
		{"modinv", "4", "8"},
		{"lsh", "1", "100000000000"},
	} {
		if err := run(args[0], args[1:], config); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}
