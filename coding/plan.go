// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Plan describes how to construct a QR code
// with a specific version and level.
//
// Bitmaps hold one bit per module, (Size+7)/8 bytes per row, most
// significant bit first.
type Plan struct {
	Version Version // QR code version
	Level   Level   // QR error correction Level

	DataBits int // number of data bits
	Size     int // number of pixels on a side

	Map     []byte    // pixel map: 0 is data or checksum, 1 is reserved
	Pattern [8][]byte // position and alignment boxes, timing, format, mask
}

// NewPlan returns a Plan for a QR code with the given version and
// level.  The Plan is shared and must not be modified.
func NewPlan(version Version, level Level) (*Plan, error) {
	if !version.IsValid() {
		return nil, ErrVersion
	}
	if !level.IsValid() {
		return nil, ErrLevel
	}
	p := &plans[version][level]
	p.once.Do(func() { p.p = vplan(version, level) })
	return p.p, nil
}

// Plans are created the first time a combination of version and
// level is used.  Each plan holds a bitmap the size of 9 Code bitmaps,
// from 567 bytes for version 1 to 36 KB for version 40.
var plans [MaxVersion + 1][H + 1]struct {
	once sync.Once
	p    *Plan
}

func (p *Plan) stride() int { return (p.Size + 7) >> 3 }

// Reserved reports whether the module at (x, y) is a function module.
func (p *Plan) Reserved(x, y int) bool {
	return p.Map[y*p.stride()+x>>3]&(0x80>>(x&7)) != 0
}

// set reserves the module at (x, y) and sets its colour in the base
// pattern.
func (p *Plan) set(x, y int, black bool) {
	off, bit := y*p.stride()+x>>3, byte(0x80)>>(x&7)
	p.Map[off] |= bit
	if black {
		p.Pattern[0][off] |= bit
	} else {
		p.Pattern[0][off] &^= bit
	}
}

// vplan creates a Plan for the given version and level.
func vplan(v Version, l Level) *Plan {
	siz := v.Size()
	stride := (siz + 7) >> 3
	p := &Plan{
		Version:  v,
		Level:    l,
		DataBits: v.DataBits(l),
		Size:     siz,
	}
	n := stride * siz
	bitmap := make([]byte, n*9)
	p.Map, bitmap = bitmap[:n:n], bitmap[n:]
	for i := range p.Pattern {
		p.Pattern[i], bitmap = bitmap[:n:n], bitmap[n:]
	}

	// Position boxes with separators.
	for _, c := range [3][2]int{{3, 3}, {siz - 4, 3}, {3, siz - 4}} {
		for dy := -4; dy <= 4; dy++ {
			for dx := -4; dx <= 4; dx++ {
				x, y := c[0]+dx, c[1]+dy
				if 0 <= x && x < siz && 0 <= y && y < siz {
					d := max(abs(dx), abs(dy))
					p.set(x, y, d != 2 && d != 4)
				}
			}
		}
	}

	// Timing markers.
	for i := 8; i < siz-8; i++ {
		p.set(6, i, i&1 == 0)
		p.set(i, 6, i&1 == 0)
	}

	// Alignment boxes, except where they would overlap position boxes.
	al := vtab[v].align
	last := len(al) - 1
	for i, y := range al {
		for j, x := range al {
			if i == 0 && (j == 0 || j == last) || i == last && j == 0 {
				continue
			}
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					p.set(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
				}
			}
		}
	}

	// Format pixels, filled in per mask by fplan.
	a, b := formatPos(siz)
	for i := range a {
		p.set(a[i][0], a[i][1], false)
		p.set(b[i][0], b[i][1], false)
	}

	// One lonely black pixel.
	p.set(8, siz-8, true)

	// Version pattern: 6x3 pixels above the lower left box,
	// 3x6 pixels left of the upper right box.
	if v >= 7 {
		vb := vinf[v]
		for i := 0; i < 18; i++ {
			black := vb>>i&1 != 0
			a, b := siz-11+i%3, i/3
			p.set(a, b, black)
			p.set(b, a, black)
		}
	}

	// Every pattern starts from the bare fixed patterns.
	for mask := 1; mask < len(p.Pattern); mask++ {
		copy(p.Pattern[mask], p.Pattern[0])
	}
	for mask := range p.Pattern {
		fplan(ftab[l][mask], mask, p)
		mplan(mask, p)
	}
	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// formatPos returns the coordinates of the 15 format bits in both
// copies, least significant bit first: the first copy around the
// upper left box, the second split between the upper right and the
// lower left box.
func formatPos(siz int) (a, b [15][2]int) {
	for i := 0; i < 15; i++ {
		switch {
		case i < 6:
			a[i] = [2]int{8, i}
		case i < 8:
			a[i] = [2]int{8, i + 1}
		case i == 8:
			a[i] = [2]int{7, 8}
		default:
			a[i] = [2]int{14 - i, 8}
		}
		if i < 8 {
			b[i] = [2]int{siz - 1 - i, 8}
		} else {
			b[i] = [2]int{8, siz - 15 + i}
		}
	}
	return a, b
}

// FormatBits returns the two copies of the format bits in bitmap,
// a bitmap of a code planned by p.
func (p *Plan) FormatBits(bitmap []byte) (uint16, uint16) {
	stride := p.stride()
	get := func(c [2]int) uint16 {
		return uint16(bitmap[c[1]*stride+c[0]>>3] >> (7 &^ c[0]) & 1)
	}
	var fa, fb uint16
	a, b := formatPos(p.Size)
	for i := 14; i >= 0; i-- {
		fa = fa<<1 | get(a[i])
		fb = fb<<1 | get(b[i])
	}
	return fa, fb
}

// fplan sets the format bits.
func fplan(fb uint16, mask int, p *Plan) {
	b := p.Pattern[mask]
	stride := p.stride()
	put := func(c [2]int, black bool) {
		off, bit := c[1]*stride+c[0]>>3, byte(0x80)>>(c[0]&7)
		if black {
			b[off] |= bit
		} else {
			b[off] &^= bit
		}
	}
	fa, fc := formatPos(p.Size)
	for i := 0; i < 15; i++ {
		black := fb>>i&1 != 0
		put(fa[i], black)
		put(fc[i], black)
	}
}

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
//
// MaskBit reports whether mask inverts the module at row y, column x.
func MaskBit(mask, x, y int) bool {
	switch mask {
	case 0:
		return (y+x)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (y+x)%3 == 0
	case 4:
		return (y/2+x/3)%2 == 0
	case 5:
		return y*x%2+y*x%3 == 0
	case 6:
		return (y*x%2+y*x%3)%2 == 0
	case 7:
		return ((y+x)%2+y*x%3)%2 == 0
	}
	return false
}

// mplan edits a version+level-only Plan to add the mask.
func mplan(mask int, p *Plan) {
	b := p.Pattern[mask]
	stride := p.stride()
	for y := 0; y < p.Size; y++ {
		for x := 0; x < p.Size; x++ {
			off, bit := y*stride+x>>3, byte(0x80)>>(x&7)
			if p.Map[off]&bit == 0 && MaskBit(mask, x, y) {
				b[off] |= bit
			}
		}
	}
}

// Serialise writes bits from s to the bitmap in zigzag scan order:
// two columns at a time from the right, upwards and downwards in
// turn, skipping the vertical timing strip and reserved pixels.
func (p *Plan) Serialise(s BitStream, bitmap []byte) {
	siz := p.Size
	stride := p.stride()
	pmap := p.Map
	up := true
	for right := siz - 1; right >= 1; right -= 2 {
		if right == 6 { // vertical timing strip
			right = 5
		}
		for vert := 0; vert < siz; vert++ {
			y := vert
			if up {
				y = siz - 1 - vert
			}
			for x := right; x >= right-1; x-- {
				off, bit := y*stride+x>>3, byte(0x80)>>(x&7)
				if pmap[off]&bit == 0 && s.Next() != 0 {
					bitmap[off] |= bit
				}
			}
		}
		up = !up
	}
}
