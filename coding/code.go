// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Code is a square pixel grid.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row
	Mask   int    // mask pattern applied to the data pixels
}

// Black reports whether the pixel at (x, y) is black.  Pixels outside
// the grid are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x>>3]&(0x80>>(x&7)) != 0
}

// Total penalty is the sum of penalties for runs and boxes of
// same-colour pixels, finder-like patterns and colour balance.
//
//   - RunP: for each run of n >= 5 pixels in a row or column -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for 1:1:3:1:1 patterns with 4 white pixels on either
//     side, in a row or column, possibly in the quiet zone -> 40
//   - BalP: for n% of black pixels -> 10*ceiling(abs(n-50)/5)
const (
	MinRun    = 5  // RunP:  minimum run length
	RunPDelta = -2 // RunP:  add to run length
	BoxPP     = 3  // BoxP:  points per box
	FindPP    = 40 // FindP: points per pattern
	BalPP     = 10 // BalP:  points per 5% step

	// finder-like patterns, last 11 pixels of a line
	findB = 0b0000_1011101 // white before
	findA = 0b1011101_0000 // white after
)

// Penalty returns the penalty value used for choosing the mask.
func (c *Code) Penalty() int {
	return c.runPenalty() + c.boxPenalty() + c.findPenalty() +
		c.balancePenalty()
}

// pixel returns the pixel at column i of row n, or of column n if
// vert is set.
func (c *Code) pixel(vert bool, n, i int) bool {
	if vert {
		return c.Black(n, i)
	}
	return c.Black(i, n)
}

func (c *Code) runPenalty() int {
	p := 0
	for _, vert := range [2]bool{false, true} {
		for n := 0; n < c.Size; n++ {
			r, last := 0, false
			for i := 0; i < c.Size; i++ {
				if b := c.pixel(vert, n, i); i == 0 || b != last {
					if r >= MinRun {
						p += r + RunPDelta
					}
					r, last = 1, b
				} else {
					r++
				}
			}
			if r >= MinRun {
				p += r + RunPDelta
			}
		}
	}
	return p
}

func (c *Code) boxPenalty() int {
	p := 0
	for y := 0; y < c.Size-1; y++ {
		for x := 0; x < c.Size-1; x++ {
			b := c.Black(x, y)
			if c.Black(x+1, y) == b && c.Black(x, y+1) == b &&
				c.Black(x+1, y+1) == b {
				p += BoxPP
			}
		}
	}
	return p
}

func (c *Code) findPenalty() int {
	p := 0
	for _, vert := range [2]bool{false, true} {
		for n := 0; n < c.Size; n++ {
			var pat uint16
			// Extend 4 pixels into the quiet zone at the end.
			for i := 0; i < c.Size+4; i++ {
				pat = pat << 1 & 0x7ff
				if c.pixel(vert, n, i) {
					pat |= 1
				}
				if pat == findB || pat == findA {
					p += FindPP
				}
			}
		}
	}
	return p
}

func (c *Code) balancePenalty() int {
	black := 0
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				black++
			}
		}
	}
	// abs(100*black/total - 50) / 5, rounded up
	sq := c.Size * c.Size
	d := 20*black - 10*sq
	if d < 0 {
		d = -d
	}
	return (d + sq - 1) / sq * BalPP
}
