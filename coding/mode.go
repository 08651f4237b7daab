// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
)

// A Mode is a QR segment encoding mode.
type Mode int8

// Encoding modes.
const (
	Numeric      Mode = iota // numeric mode, digits 0-9
	Alphanumeric             // alphanumeric mode, 0-9 A-Z SPACE $%*+-./:
	Byte                     // byte mode, any data
)

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	case Byte:
		return "byte"
	}
	return strconv.Itoa(int(m))
}

// IsValid reports whether m is one of Numeric, Alphanumeric, Byte.
func (m Mode) IsValid() bool { return Numeric <= m && m <= Byte }

// Indicator returns the 4 bit mode indicator.
func (m Mode) Indicator() uint32 { return 1 << m }

// countLength lists lengths of the character count field in three
// QR version size classes.
var countLength = [3][3]byte{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
}

// CountLength returns the length of the character count field at the
// given QR version size class.
func (m Mode) CountLength(class int) int { return int(countLength[m][class]) }

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// Accepts reports whether the byte c is encodable in mode m.
func (m Mode) Accepts(c byte) bool {
	switch m {
	case Numeric:
		return c-'0' < 10
	case Alphanumeric:
		return c >= ' ' && alphamask>>(c-' ')&1 != 0
	case Byte:
		return true
	}
	return false
}

// encodedLength returns the encoded payload length in bits of n
// characters, excluding the header.
func (m Mode) encodedLength(n int) int {
	switch m {
	case Numeric:
		return (10*n + 2) / 3
	case Alphanumeric:
		return (11*n + 1) / 2
	}
	return n * 8
}

// Classify returns the most compact mode able to encode all of text.
func Classify(text string) Mode {
	m := Numeric
	for i := 0; i < len(text); i++ {
		for !m.Accepts(text[i]) {
			m++
		}
		if m == Byte {
			break
		}
	}
	return m
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents a Segment with text not encodable in its
// mode.  It matches ErrInvalidModeCharacter.
type SegmentError Segment

func (e SegmentError) Error() string {
	return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
}

func (e SegmentError) Unwrap() error { return ErrInvalidModeCharacter }

// ModeError represents an invalid Mode number.
// It matches ErrInvalidParameter.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode %s", Mode(e))
}

func (e ModeError) Is(target error) bool { return target == ErrInvalidParameter }

// Check returns an error if seg is not encodable.
func (seg Segment) Check() error {
	m := seg.Mode
	if !m.IsValid() {
		return ModeError(m)
	}
	if m != Byte {
		for i := 0; i < len(seg.Text); i++ {
			if !m.Accepts(seg.Text[i]) {
				return SegmentError(seg)
			}
		}
	}
	return nil
}

// EncodedLength returns the encoded length in bits of seg in the
// given QR version size class, including the header.  The segment
// is not validated.
func (seg Segment) EncodedLength(class int) int {
	return 4 + seg.Mode.CountLength(class) + seg.Mode.encodedLength(len(seg.Text))
}

// Encode writes seg encoded for the given QR version size class to b.
func (seg Segment) Encode(b *Bits, class int) error {
	if err := seg.Check(); err != nil {
		return err
	}
	m, s := seg.Mode, seg.Text
	clen := m.CountLength(class)
	if len(s) >= 1<<clen {
		return ErrCapacityExceeded
	}
	// write header
	b.Write(m.Indicator(), 4)
	b.Write(uint32(len(s)), clen)
	// encode the string
	switch m {
	case Numeric:
		for ; len(s) >= 3; s = s[3:] {
			b.Write(uint32(s[0]-'0')*100+uint32(s[1]-'0')*10+
				uint32(s[2]-'0'), 10)
		}
		switch len(s) {
		case 2:
			b.Write(uint32(s[0]-'0')*10+uint32(s[1]-'0'), 7)
		case 1:
			b.Write(uint32(s[0]-'0'), 4)
		}
	case Alphanumeric:
		for ; len(s) >= 2; s = s[2:] {
			b.Write(uint32(alpha[s[0]&0x3f])*45+
				uint32(alpha[s[1]&0x3f]), 11)
		}
		if len(s) == 1 {
			b.Write(uint32(alpha[s[0]&0x3f]), 6)
		}
	default:
		if b.nbit&7 == 0 {
			b.b = append(b.b, s...)
			b.nbit += len(s) * 8
			break
		}
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
	}
	return nil
}
