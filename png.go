// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
)

// maxSide limits the width of rendered images in pixels.
const maxSide = 1 << 15

var palette = color.Palette{whiteColor, blackColor}

// paletted renders c as a two-colour image, which image/png encodes
// with one bit per pixel.
func (c *Code) paletted() (*image.Paletted, error) {
	if !c.isValid() {
		return nil, ErrInvalidCode
	}
	d := (c.Size + 2*c.Border) * c.Scale
	if d > maxSide {
		return nil, ErrInvalidCode
	}
	img := image.NewPaletted(image.Rect(0, 0, d, d), palette)
	row := make([]byte, d)
	for y := -c.Border; y < c.Size+c.Border; y++ {
		j := 0
		for x := -c.Border; x < c.Size+c.Border; x++ {
			var p byte
			if c.Black(x, y) != c.Reverse {
				p = 1
			}
			for k := 0; k < c.Scale; k++ {
				row[j] = p
				j++
			}
		}
		off := (y + c.Border) * c.Scale * img.Stride
		for k := 0; k < c.Scale; k++ {
			off += copy(img.Pix[off:off+d], row)
			off += img.Stride - d
		}
	}
	return img, nil
}

// PNG returns a PNG image displaying the code, or nil if c is
// invalid or the image would be too large.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	img, err := c.paletted()
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}
