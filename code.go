// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"image"
	"image/color"
	"strings"

	"github.com/qrcode-go/qr/coding"
)

// ErrInvalidCode is returned when rendering a Code with inconsistent
// fields.
var ErrInvalidCode = errors.New("qr: invalid code parameters")

// DefaultBorder is the width of the quiet zone required by the
// standard, in modules.
const DefaultBorder = 4

// A Code is a square pixel grid.
// It implements image.Image and direct PBM encoding.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Version coding.Version // QR version
	Level   Level          // error correction level
	Mask    int            // mask pattern

	Scale   int  // number of image pixels per QR pixel
	Border  int  // quiet zone width in QR pixels
	Reverse bool // reverse colours
}

func newCode(cc *coding.Code, v coding.Version, l Level) *Code {
	return &Code{
		Bitmap:  cc.Bitmap,
		Size:    cc.Size,
		Stride:  cc.Stride,
		Version: v,
		Level:   l,
		Mask:    cc.Mask,
		Scale:   8,
		Border:  DefaultBorder,
	}
}

// Black reports whether the pixel at (x, y) is black.  Pixels outside
// the grid are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x>>3]&(0x80>>(x&7)) != 0
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c.Size > 0 && c.Stride == (c.Size+7)>>3 &&
		len(c.Bitmap) == c.Stride*c.Size &&
		0 < c.Scale && c.Scale <= maxSide && 0 <= c.Border && c.Border <= maxSide
}

// Image returns an Image displaying the code with a quiet zone of
// c.Border pixels, each QR pixel c.Scale image pixels wide.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xff}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if x < 0 || y < 0 {
		return whiteColor
	}
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) != c.Reverse {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}

// String returns the code with its quiet zone as text, two rows per
// line, using Unicode block elements.  White pixels are drawn as
// blocks for display on dark terminals; Reverse swaps the colours.
func (c *Code) String() string {
	chars := [4]string{"█", "▀", "▄", " "}
	var b strings.Builder
	bord := c.Border
	rev := 0
	if c.Reverse {
		rev = 3
	}
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			n := rev
			if c.Black(x, y) {
				n ^= 2
			}
			if c.Black(x, y+1) {
				n ^= 1
			}
			b.WriteString(chars[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
