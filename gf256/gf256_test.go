// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"bytes"
	"fmt"
	"testing"
)

var f = NewField(0x11d, 2) // x^8 + x^4 + x^3 + x^2 + 1

func TestBasic(t *testing.T) {
	if f.Exp(0) != 1 || f.Exp(1) != 2 || f.Exp(255) != 1 {
		panic("bad Exp")
	}
	if f.Exp(8) != 0x1d {
		t.Errorf("Exp(8) = %#x, want 0x1d", f.Exp(8))
	}
	if f.Log(0) != -1 || f.Log(1) != 0 || f.Log(2) != 1 {
		t.Errorf("bad Log")
	}
}

func TestMul(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			z := f.Mul(byte(x), byte(y))
			if want := byte(mul(x, y, 0x11d)); z != want {
				t.Fatalf("Mul(%#x, %#x) = %#x, want %#x",
					x, y, z, want)
			}
			if z != f.Mul(byte(y), byte(x)) {
				t.Fatalf("Mul(%#x, %#x) not commutative", x, y)
			}
		}
	}
}

func TestInv(t *testing.T) {
	if f.Inv(0) != 0 {
		t.Errorf("Inv(0) = %#x, want 0", f.Inv(0))
	}
	for x := 1; x < 256; x++ {
		if p := f.Mul(byte(x), f.Inv(byte(x))); p != 1 {
			t.Fatalf("%#x * Inv(%#x) = %#x, want 1", x, x, p)
		}
	}
}

func TestInvalidField(t *testing.T) {
	for _, tt := range []struct{ poly, α int }{
		{0x11b, 2}, // AES polynomial: 2 is not a generator
		{0x100, 2}, // reducible
		{0x1ff, 2}, // reducible
		{0x11, 2},  // too small
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewField(%#x, %d) did not panic",
						tt.poly, tt.α)
				}
			}()
			NewField(tt.poly, tt.α)
		}()
	}
}

func TestGen(t *testing.T) {
	// Generator polynomial for 7 check bytes:
	// α⁰x⁷ + α⁸⁷x⁶ + α²²⁹x⁵ + α¹⁴⁶x⁴ + α¹⁴⁹x³ + α²³⁸x² + α¹⁰²x + α²¹
	want := []int{0, 87, 229, 146, 149, 238, 102, 21}
	g := f.Gen(7)
	if len(g) != len(want) {
		t.Fatalf("len(Gen(7)) = %d, want %d", len(g), len(want))
	}
	for i, c := range g {
		if f.Log(c) != want[i] {
			t.Errorf("Gen(7)[%d] = α^%d, want α^%d", i, f.Log(c), want[i])
		}
	}
}

func TestECC(t *testing.T) {
	// "HELLO WORLD", version 1, level M.
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17,
		236, 17, 236, 17}
	want := []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}
	check := make([]byte, len(want))
	NewRSEncoder(f, len(want)).ECC(data, check)
	if !bytes.Equal(check, want) {
		t.Errorf("ECC = %v, want %v", check, want)
	}
}

func TestSyndromes(t *testing.T) {
	for _, c := range []int{7, 10, 13, 17, 22, 28, 30} {
		rs := NewRSEncoder(f, c)
		for n := 1; n <= 60; n += 11 {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(i*37 + n*c)
			}
			msg := append(data, make([]byte, c)...)
			rs.ECC(data, msg[n:])
			for i, s := range f.Syndromes(msg, c) {
				if s != 0 {
					t.Fatalf("c=%d n=%d: syndrome %d = %#x",
						c, n, i, s)
				}
			}
			msg[0] ^= 1
			if bytes.Equal(f.Syndromes(msg, c), make([]byte, c)) {
				t.Fatalf("c=%d n=%d: corruption not detected", c, n)
			}
		}
	}
}

func BenchmarkECC(b *testing.B) {
	data := []byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80, 0xec, 0x11, 0xec,
		0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11}
	check := []byte{0xa5, 0x24, 0xd4, 0xc1, 0xed, 0x36, 0xc7, 0x87, 0x2c,
		0x55}
	rs := NewRSEncoder(f, len(check))
	out := make([]byte, len(check))
	for i := 0; i < b.N; i++ {
		rs.ECC(data, out)
	}
	if !bytes.Equal(out, check) {
		fmt.Printf("have %#v want %#v\n", out, check)
	}
}
