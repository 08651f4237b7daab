// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestBitsWrite(t *testing.T) {
	b := NewBits(1)
	b.Write(1, 1)
	b.Write(0b101, 3)
	b.Write(0xff, 8)
	b.Write(0, 0)
	b.Write(0x3, 2)
	if b.Bits() != 14 {
		t.Fatalf("Bits() = %d, want 14", b.Bits())
	}
	if want := []byte{0xdf, 0xf0 | 0x0c}; !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Bytes() = %x, want %x", b.Bytes(), want)
	}
}

func TestSegmentEncode(t *testing.T) {
	for _, tt := range []struct {
		seg   Segment
		class int
		nbit  int
		want  []byte
	}{
		// 0001 0000001000 0000001100 0101011001 1000011
		{Segment{"01234567", Numeric}, Class0, 41,
			[]byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80}},
		{Segment{"HELLO WORLD", Alphanumeric}, Class0, 74,
			[]byte{0x20, 0x5b, 0x0b, 0x78, 0xd1, 0x72, 0xdc, 0x4d, 0x43, 0x40}},
		{Segment{"Hi", Byte}, Class1, 36,
			[]byte{0x40, 0x00, 0x24, 0x86, 0x90}},
		{Segment{"", Numeric}, Class2, 18, []byte{0x10, 0x00, 0x00}},
	} {
		b := NewBits(40)
		if err := tt.seg.Encode(b, tt.class); err != nil {
			t.Errorf("%v: %v", tt.seg, err)
			continue
		}
		if n := tt.seg.EncodedLength(tt.class); n != tt.nbit {
			t.Errorf("%v: EncodedLength = %d, want %d", tt.seg, n, tt.nbit)
		}
		if b.Bits() != tt.nbit || !bytes.Equal(b.Bytes(), tt.want) {
			t.Errorf("%v: encoded %d bits %x, want %d bits %x",
				tt.seg, b.Bits(), b.Bytes(), tt.nbit, tt.want)
		}
	}
}

func TestSegmentCheck(t *testing.T) {
	for _, tt := range []struct {
		seg  Segment
		want error
	}{
		{Segment{"0123", Numeric}, nil},
		{Segment{"12a", Numeric}, ErrInvalidModeCharacter},
		{Segment{"AB:C $%*+-./", Alphanumeric}, nil},
		{Segment{"hello", Alphanumeric}, ErrInvalidModeCharacter},
		{Segment{"\x00\xff", Byte}, nil},
		{Segment{"x", Mode(3)}, ErrInvalidParameter},
	} {
		if err := tt.seg.Check(); !errors.Is(err, tt.want) {
			t.Errorf("%v.Check() = %v, want %v", tt.seg, err, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	for _, tt := range []struct {
		text string
		want Mode
	}{
		{"", Numeric},
		{"0123456789", Numeric},
		{"HELLO WORLD", Alphanumeric},
		{"1.5", Alphanumeric},
		{"Hello", Byte},
		{"A\n", Byte},
	} {
		if m := Classify(tt.text); m != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.text, m, tt.want)
		}
	}
}

func TestLatin1(t *testing.T) {
	seg, err := Latin1("café")
	if err != nil {
		t.Fatal(err)
	}
	if seg.Mode != Byte || seg.Text != "caf\xe9" {
		t.Errorf("Latin1(café) = %+q", seg)
	}
	if _, err := Latin1("€"); !errors.Is(err, ErrInvalidModeCharacter) {
		t.Errorf("Latin1(€) error = %v, want %v",
			err, ErrInvalidModeCharacter)
	}
}

func TestCheckBytes(t *testing.T) {
	for _, tt := range []struct {
		seg  Segment
		want []byte
	}{
		{Segment{"HELLO WORLD", Alphanumeric}, []byte{
			32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236,
			17, 236, 17, 196, 35, 39, 119, 235, 215, 231, 226, 93, 23}},
		{Segment{"01234567", Numeric}, []byte{
			16, 32, 12, 86, 97, 128, 236, 17, 236, 17, 236, 17, 236,
			17, 236, 17, 165, 36, 212, 193, 237, 54, 199, 135, 44, 85}},
	} {
		b := NewBits(1)
		if err := tt.seg.Encode(b, Class0); err != nil {
			t.Fatal(err)
		}
		b.AddCheckBytes(1, M)
		if !bytes.Equal(b.Bytes(), tt.want) {
			t.Errorf("%v: codewords %v, want %v", tt.seg, b.Bytes(), tt.want)
		}
	}
}

// TestBlocks checks the block tables and that check bytes of every
// block have zero syndromes.
func TestBlocks(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			bs := v.Blocks(l)
			if bs.TotalBytes() != v.TotalBytes() {
				t.Errorf("%d-%s: blocks hold %d bytes, want %d",
					v, l, bs.TotalBytes(), v.TotalBytes())
			}
			if bs.Count2 != 0 && bs.Data2 != bs.Data1+1 {
				t.Errorf("%d-%s: group sizes %d, %d",
					v, l, bs.Data1, bs.Data2)
			}
			b := NewBits(v)
			seg := Segment{strings.Repeat("7", v.DataBytes(l)), Numeric}
			if err := seg.Encode(b, v.SizeClass()); err != nil {
				t.Fatal(err)
			}
			b.AddCheckBytes(v, l)
			dat, chk := b.Bytes()[:bs.DataBytes()], b.Bytes()[bs.DataBytes():]
			for i := 0; i < bs.Blocks(); i++ {
				db := bs.blockData(i)
				msg := append(append([]byte(nil), dat[:db]...),
					chk[:bs.ECBytes]...)
				dat, chk = dat[db:], chk[bs.ECBytes:]
				for j, s := range Field.Syndromes(msg, bs.ECBytes) {
					if s != 0 {
						t.Fatalf("%d-%s block %d: syndrome %d = %#x",
							v, l, i, j, s)
					}
				}
			}
		}
	}
}

func TestPermute(t *testing.T) {
	// 5-Q: 2 blocks of 15 and 2 of 16 data bytes, 18 check bytes each.
	v, l := Version(5), Q
	b := NewBits(v)
	b.Add(v.TotalBytes())
	for i := range b.b {
		b.b[i] = byte(i)
	}
	s := b.Permute(v, l)
	got := s.Bytes()
	want := []byte{0, 15, 30, 46, 1, 16, 31, 47}
	if !bytes.Equal(got[:len(want)], want) {
		t.Errorf("data start %v, want %v", got[:len(want)], want)
	}
	// The last data bytes come from the longer blocks only.
	if got[60] != 45 || got[61] != 61 {
		t.Errorf("data end %v, want [45 61]", got[60:62])
	}
	if got[62] != 62 || got[63] != 80 || got[64] != 98 || got[65] != 116 {
		t.Errorf("check start %v, want [62 80 98 116]", got[62:66])
	}
	if n := len(got); n != v.TotalBytes() {
		t.Errorf("len = %d, want %d", n, v.TotalBytes())
	}
}

func TestFit(t *testing.T) {
	for _, tt := range []struct {
		seg  Segment
		l    Level
		want Version
	}{
		{Segment{"HELLO WORLD", Alphanumeric}, Q, 1},
		{Segment{"", Numeric}, H, 1},
		// 17 digits fill 1-H exactly: 4+10+57 = 71 bits of 72.
		{Segment{strings.Repeat("1", 17), Numeric}, H, 1},
		{Segment{strings.Repeat("1", 18), Numeric}, H, 2},
		// The largest byte segment at 40-L.
		{Segment{strings.Repeat("a", 2953), Byte}, L, 40},
	} {
		v, err := Fit(tt.l, tt.seg)
		if err != nil || v != tt.want {
			t.Errorf("Fit(%s, %v) = %d, %v, want %d",
				tt.l, tt.seg, v, err, tt.want)
		}
	}
	if _, err := Fit(L, Segment{strings.Repeat("a", 2954), Byte}); !errors.Is(err, ErrDataTooLong) {
		t.Errorf("Fit(L, 2954 bytes) error = %v, want %v", err, ErrDataTooLong)
	}
	if _, err := Fit(Level(4)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Fit(4) error = %v, want %v", err, ErrInvalidParameter)
	}
}

func TestWriteCapacity(t *testing.T) {
	e, err := NewEncoder(1, H)
	if err != nil {
		t.Fatal(err)
	}
	err = e.Write(Segment{strings.Repeat("a", 10), Byte})
	var ce CapacityError
	if !errors.As(err, &ce) || !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Write error = %v, want CapacityError", err)
	}
	if ce.Bits != 92 || ce.Capacity != 72 {
		t.Errorf("CapacityError = %+v", ce)
	}
	if e.Bits() != 0 {
		t.Errorf("failed Write wrote %d bits", e.Bits())
	}
}

func TestNewEncoderErrors(t *testing.T) {
	for _, tt := range []struct {
		v    Version
		l    Level
		want error
	}{
		{0, L, ErrVersion},
		{41, L, ErrVersion},
		{1, -1, ErrLevel},
		{1, 4, ErrLevel},
	} {
		_, err := NewEncoder(tt.v, tt.l)
		if err != tt.want || !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("NewEncoder(%d, %d) error = %v, want %v",
				tt.v, tt.l, err, tt.want)
		}
	}
	e, _ := NewEncoder(1, L)
	if _, err := e.CodeMask(8); err != ErrMask {
		t.Errorf("CodeMask(8) error = %v, want %v", err, ErrMask)
	}
}
