// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import xor "github.com/templexxx/xorsimd"

// Encoder encodes a QR code.
type Encoder struct {
	p *Plan
	b *Bits
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	p, err := NewPlan(version, level)
	if err != nil {
		return nil, err
	}
	return &Encoder{p: p, b: NewBits(version)}, nil
}

// Bits returns the number of data bits written to e.
func (e *Encoder) Bits() int { return e.b.Bits() }

// Write adds segments to e.  If any segment is invalid or the data
// would not fit, nothing is written and the error is returned.
func (e *Encoder) Write(segs ...Segment) error {
	class := e.p.Version.SizeClass()
	n := e.b.Bits()
	for _, seg := range segs {
		if err := seg.Check(); err != nil {
			return err
		}
		n += seg.EncodedLength(class)
	}
	if n > e.p.DataBits {
		return CapacityError{
			Bits:     n,
			Capacity: e.p.DataBits,
			Version:  e.p.Version,
			Level:    e.p.Level,
		}
	}
	for _, seg := range segs {
		if err := seg.Encode(e.b, class); err != nil {
			return err
		}
	}
	return nil
}

// data returns the bitmap of data and checksum bits, unmasked.
func (e *Encoder) data() []byte {
	b := &Bits{
		b:    make([]byte, len(e.b.b), e.p.Version.TotalBytes()),
		nbit: e.b.nbit,
	}
	copy(b.b, e.b.b)
	b.AddCheckBytes(e.p.Version, e.p.Level)
	data := make([]byte, len(e.p.Map))
	e.p.Serialise(b.Permute(e.p.Version, e.p.Level), data)
	return data
}

// Code returns a QR code containing data written to e, masked with
// the pattern that has the smallest penalty.  Ties go to the lowest
// mask number.  e is left unchanged and more data may be written.
func (e *Encoder) Code() (*Code, error) {
	data := e.data()
	c := e.newCode(0)
	best := make([]byte, len(data)) // best bitmap so far
	pen := 1 << 30
	for mask, v := range e.p.Pattern {
		// set bitmap to data bits xor plan bits
		xor.Encode(c.Bitmap, [][]byte{data, v})
		if p := c.Penalty(); p < pen {
			best, pen, c.Bitmap = c.Bitmap, p, best
			c.Mask = mask
		}
	}
	c.Bitmap = best
	return c, nil
}

// CodeMask is like Code, but applies the given mask pattern without
// evaluating the others.
func (e *Encoder) CodeMask(mask int) (*Code, error) {
	if mask < 0 || mask >= len(e.p.Pattern) {
		return nil, ErrMask
	}
	c := e.newCode(mask)
	xor.Encode(c.Bitmap, [][]byte{e.data(), e.p.Pattern[mask]})
	return c, nil
}

func (e *Encoder) newCode(mask int) *Code {
	siz := e.p.Size
	return &Code{
		Bitmap: make([]byte, len(e.p.Map)),
		Size:   siz,
		Stride: (siz + 7) >> 3,
		Mask:   mask,
	}
}

// Encode encodes segs into a QR code with the given version and
// level, choosing the mask automatically.
func Encode(version Version, level Level, segs ...Segment) (*Code, error) {
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, err
	}
	if err := e.Write(segs...); err != nil {
		return nil, err
	}
	return e.Code()
}

// Fit returns the smallest version able to hold segs at level l.
// The terminator need not fit in full.
func Fit(l Level, segs ...Segment) (Version, error) {
	if !l.IsValid() {
		return 0, ErrLevel
	}
	for _, seg := range segs {
		if err := seg.Check(); err != nil {
			return 0, err
		}
	}
	for class, r := range sizeClass {
		n := 0
		for _, seg := range segs {
			if len(seg.Text) >= 1<<seg.Mode.CountLength(class) {
				n = -1
				break
			}
			n += seg.EncodedLength(class)
		}
		if n < 0 {
			continue
		}
		for v := r.min; v <= r.max; v++ {
			if n <= v.DataBits(l) {
				return v, nil
			}
		}
	}
	return 0, ErrDataTooLong
}
