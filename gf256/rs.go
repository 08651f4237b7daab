// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
// An RSEncoder is not safe for concurrent use.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte // generator polynomial without the leading 1
	p   []byte // remainder
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: f.Gen(c)[1:], p: make([]byte, c)}
}

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
// The data is taken as the coefficients of a polynomial, highest
// degree first; check receives the remainder of its product with
// xᶜ divided by the generator polynomial.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}
	f, gen, p := rs.f, rs.gen, rs.p
	for i := range p {
		p[i] = 0
	}
	for _, d := range data {
		k := d ^ p[0]
		copy(p, p[1:])
		p[len(p)-1] = 0
		if k == 0 {
			continue
		}
		lk := int(f.log[k])
		for i, g := range gen {
			if g != 0 {
				p[i] ^= f.exp[lk+int(f.log[g])]
			}
		}
	}
	copy(check, p)
}
