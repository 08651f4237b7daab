// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a binary Portable Bit Map image displaying the
// code to w, for use with netpbm.  In PBM 1 is black.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrInvalidCode
	}
	b := bufio.NewWriter(w)
	scale := c.Scale
	bord := c.Border
	length := scale * (c.Size + bord*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := -bord; y < c.Size+bord; y++ {
		pbmRow(row, c, y)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes QR pixel row y with its quiet zone, scaled, into
// row.  Padding bits at the end of row are zero.
func pbmRow(row []byte, c *Code, y int) {
	for i := range row {
		row[i] = 0
	}
	j := 0
	for x := -c.Border; x < c.Size+c.Border; x++ {
		if c.Black(x, y) == c.Reverse {
			j += c.Scale
			continue
		}
		for k := 0; k < c.Scale; k, j = k+1, j+1 {
			row[j>>3] |= 0x80 >> (j & 7)
		}
	}
}
