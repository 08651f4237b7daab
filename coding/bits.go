// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/qrcode-go/qr/gf256"

// Bits is an append-only bit buffer.  Bits are written most
// significant first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, v.TotalBytes())}
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the bits written so far.  The last byte is padded
// with zero bits.
func (b *Bits) Bytes() []byte {
	return b.b
}

func (b *Bits) growTo(n int) {
	if cap(b.b) < n {
		nb := make([]byte, len(b.b), n)
		copy(nb, b.b)
		b.b = nb
	}
}

// Add adds n bytes to b and returns the added slice.
func (b *Bits) Add(n int) []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	b.growTo(len(b.b) + n)
	start := len(b.b)
	b.b = b.b[:start+n]
	b.nbit = 8 * len(b.b)
	return b.b[start:]
}

// Write appends the nbit low bits of v, most significant first.
// nbit must be at most 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// PadTo adds up to t zero terminator bits to b, pads it with zero
// bits to a byte boundary and then with alternating 0xec and 0x11
// bytes to n bits.
func (b *Bits) PadTo(t, n int) {
	b.growTo((n + 7) >> 3)
	b.Write(0, min(t, n-b.nbit))
	if r := -b.nbit & 7; r != 0 {
		b.Write(0, r)
	}
	for pad := uint32(0xec); b.nbit+8 <= n; pad ^= 0xec ^ 0x11 {
		b.Write(pad, 8)
	}
}

// AddCheckBytes adds terminator, padding and checksum to b for the
// given QR version and level.  Data bytes are split into blocks in
// order, group 1 blocks first; each block's check bytes follow all
// data bytes, in block order.
func (b *Bits) AddCheckBytes(v Version, l Level) {
	nb := v.DataBits(l)
	if b.nbit > nb {
		panic("qr: too much data")
	}
	b.growTo(v.TotalBytes())
	b.PadTo(4, nb)

	bs := v.Blocks(l)
	dat := b.Bytes()
	rs := gf256.NewRSEncoder(Field, bs.ECBytes)
	for i := 0; i < bs.Blocks(); i++ {
		db := bs.blockData(i)
		rs.ECC(dat[:db], b.Add(bs.ECBytes))
		dat = dat[db:]
	}

	if len(b.Bytes()) != v.TotalBytes() {
		panic("qr: internal error")
	}
}

// Permute returns a BitStream reading data and checksum bits in b
// with blocks interleaved for the given QR code version and level:
// the first data byte of each block, then the second, and so on,
// then likewise for the check bytes.
func (b *Bits) Permute(v Version, l Level) BitStream {
	src := b.Bytes()
	if len(src) != v.TotalBytes() {
		panic("qr: wrong data length")
	}
	bs := v.Blocks(l)
	nblock := bs.Blocks()
	if nblock == 1 {
		return NewBitStream(src)
	}
	dat, chk := src[:bs.DataBytes()], src[bs.DataBytes():]
	blocks := make([][]byte, nblock)
	for i := range blocks {
		db := bs.blockData(i)
		blocks[i], dat = dat[:db], dat[db:]
	}
	dst := make([]byte, 0, len(src))
	for j := 0; j < max(bs.Data1, bs.Data2); j++ {
		for _, blk := range blocks {
			if j < len(blk) {
				dst = append(dst, blk[j])
			}
		}
	}
	for j := 0; j < bs.ECBytes; j++ {
		for i := 0; i < nblock; i++ {
			dst = append(dst, chk[i*bs.ECBytes+j])
		}
	}
	if len(dst) != len(src) {
		panic("qr: internal error")
	}
	return NewBitStream(dst)
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}
