// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Tables from qrencode-3.1.1/qrspec.c and ISO/IEC 18004 tables 1, 9
// and E.1.

// A BlockSpec describes the error correction block structure of a
// QR code at a given version and level: Count1 blocks of Data1 data
// bytes followed by Count2 blocks of Data2 data bytes, each block
// followed by ECBytes check bytes.
type BlockSpec struct {
	ECBytes int // check bytes per block
	Count1  int // number of blocks in group 1
	Data1   int // data bytes per block in group 1
	Count2  int // number of blocks in group 2
	Data2   int // data bytes per block in group 2
}

// Blocks returns the total number of blocks.
func (bs BlockSpec) Blocks() int { return bs.Count1 + bs.Count2 }

// DataBytes returns the total number of data bytes.
func (bs BlockSpec) DataBytes() int { return bs.Count1*bs.Data1 + bs.Count2*bs.Data2 }

// TotalBytes returns the total number of data and check bytes.
func (bs BlockSpec) TotalBytes() int { return bs.DataBytes() + bs.Blocks()*bs.ECBytes }

// blockData returns the number of data bytes in block i.
func (bs BlockSpec) blockData(i int) int {
	if i < bs.Count1 {
		return bs.Data1
	}
	return bs.Data2
}

// A version describes metadata associated with a version.
type version struct {
	bytes     int          // total codewords
	remainder int          // remainder bits
	align     []int        // alignment pattern centre coordinates
	level     [4]BlockSpec // block structure for L, M, Q, H
}

// Version table.
var vtab = [MaxVersion + 1]version{
	1:  {26, 0, nil, [4]BlockSpec{{7, 1, 19, 0, 0}, {10, 1, 16, 0, 0}, {13, 1, 13, 0, 0}, {17, 1, 9, 0, 0}}},
	2:  {44, 7, []int{6, 18}, [4]BlockSpec{{10, 1, 34, 0, 0}, {16, 1, 28, 0, 0}, {22, 1, 22, 0, 0}, {28, 1, 16, 0, 0}}},
	3:  {70, 7, []int{6, 22}, [4]BlockSpec{{15, 1, 55, 0, 0}, {26, 1, 44, 0, 0}, {18, 2, 17, 0, 0}, {22, 2, 13, 0, 0}}},
	4:  {100, 7, []int{6, 26}, [4]BlockSpec{{20, 1, 80, 0, 0}, {18, 2, 32, 0, 0}, {26, 2, 24, 0, 0}, {16, 4, 9, 0, 0}}},
	5:  {134, 7, []int{6, 30}, [4]BlockSpec{{26, 1, 108, 0, 0}, {24, 2, 43, 0, 0}, {18, 2, 15, 2, 16}, {22, 2, 11, 2, 12}}},
	6:  {172, 7, []int{6, 34}, [4]BlockSpec{{18, 2, 68, 0, 0}, {16, 4, 27, 0, 0}, {24, 4, 19, 0, 0}, {28, 4, 15, 0, 0}}},
	7:  {196, 0, []int{6, 22, 38}, [4]BlockSpec{{20, 2, 78, 0, 0}, {18, 4, 31, 0, 0}, {18, 2, 14, 4, 15}, {26, 4, 13, 1, 14}}},
	8:  {242, 0, []int{6, 24, 42}, [4]BlockSpec{{24, 2, 97, 0, 0}, {22, 2, 38, 2, 39}, {22, 4, 18, 2, 19}, {26, 4, 14, 2, 15}}},
	9:  {292, 0, []int{6, 26, 46}, [4]BlockSpec{{30, 2, 116, 0, 0}, {22, 3, 36, 2, 37}, {20, 4, 16, 4, 17}, {24, 4, 12, 4, 13}}},
	10: {346, 0, []int{6, 28, 50}, [4]BlockSpec{{18, 2, 68, 2, 69}, {26, 4, 43, 1, 44}, {24, 6, 19, 2, 20}, {28, 6, 15, 2, 16}}},
	11: {404, 0, []int{6, 30, 54}, [4]BlockSpec{{20, 4, 81, 0, 0}, {30, 1, 50, 4, 51}, {28, 4, 22, 4, 23}, {24, 3, 12, 8, 13}}},
	12: {466, 0, []int{6, 32, 58}, [4]BlockSpec{{24, 2, 92, 2, 93}, {22, 6, 36, 2, 37}, {26, 4, 20, 6, 21}, {28, 7, 14, 4, 15}}},
	13: {532, 0, []int{6, 34, 62}, [4]BlockSpec{{26, 4, 107, 0, 0}, {22, 8, 37, 1, 38}, {24, 8, 20, 4, 21}, {22, 12, 11, 4, 12}}},
	14: {581, 3, []int{6, 26, 46, 66}, [4]BlockSpec{{30, 3, 115, 1, 116}, {24, 4, 40, 5, 41}, {20, 11, 16, 5, 17}, {24, 11, 12, 5, 13}}},
	15: {655, 3, []int{6, 26, 48, 70}, [4]BlockSpec{{22, 5, 87, 1, 88}, {24, 5, 41, 5, 42}, {30, 5, 24, 7, 25}, {24, 11, 12, 7, 13}}},
	16: {733, 3, []int{6, 26, 50, 74}, [4]BlockSpec{{24, 5, 98, 1, 99}, {28, 7, 45, 3, 46}, {24, 15, 19, 2, 20}, {30, 3, 15, 13, 16}}},
	17: {815, 3, []int{6, 30, 54, 78}, [4]BlockSpec{{28, 1, 107, 5, 108}, {28, 10, 46, 1, 47}, {28, 1, 22, 15, 23}, {28, 2, 14, 17, 15}}},
	18: {901, 3, []int{6, 30, 56, 82}, [4]BlockSpec{{30, 5, 120, 1, 121}, {26, 9, 43, 4, 44}, {28, 17, 22, 1, 23}, {28, 2, 14, 19, 15}}},
	19: {991, 3, []int{6, 30, 58, 86}, [4]BlockSpec{{28, 3, 113, 4, 114}, {26, 3, 44, 11, 45}, {26, 17, 21, 4, 22}, {26, 9, 13, 16, 14}}},
	20: {1085, 3, []int{6, 34, 62, 90}, [4]BlockSpec{{28, 3, 107, 5, 108}, {26, 3, 41, 13, 42}, {30, 15, 24, 5, 25}, {28, 15, 15, 10, 16}}},
	21: {1156, 4, []int{6, 28, 50, 72, 94}, [4]BlockSpec{{28, 4, 116, 4, 117}, {26, 17, 42, 0, 0}, {28, 17, 22, 6, 23}, {30, 19, 16, 6, 17}}},
	22: {1258, 4, []int{6, 26, 50, 74, 98}, [4]BlockSpec{{28, 2, 111, 7, 112}, {28, 17, 46, 0, 0}, {30, 7, 24, 16, 25}, {24, 34, 13, 0, 0}}},
	23: {1364, 4, []int{6, 30, 54, 78, 102}, [4]BlockSpec{{30, 4, 121, 5, 122}, {28, 4, 47, 14, 48}, {30, 11, 24, 14, 25}, {30, 16, 15, 14, 16}}},
	24: {1474, 4, []int{6, 28, 54, 80, 106}, [4]BlockSpec{{30, 6, 117, 4, 118}, {28, 6, 45, 14, 46}, {30, 11, 24, 16, 25}, {30, 30, 16, 2, 17}}},
	25: {1588, 4, []int{6, 32, 58, 84, 110}, [4]BlockSpec{{26, 8, 106, 4, 107}, {28, 8, 47, 13, 48}, {30, 7, 24, 22, 25}, {30, 22, 15, 13, 16}}},
	26: {1706, 4, []int{6, 30, 58, 86, 114}, [4]BlockSpec{{28, 10, 114, 2, 115}, {28, 19, 46, 4, 47}, {28, 28, 22, 6, 23}, {30, 33, 16, 4, 17}}},
	27: {1828, 4, []int{6, 34, 62, 90, 118}, [4]BlockSpec{{30, 8, 122, 4, 123}, {28, 22, 45, 3, 46}, {30, 8, 23, 26, 24}, {30, 12, 15, 28, 16}}},
	28: {1921, 3, []int{6, 26, 50, 74, 98, 122}, [4]BlockSpec{{30, 3, 117, 10, 118}, {28, 3, 45, 23, 46}, {30, 4, 24, 31, 25}, {30, 11, 15, 31, 16}}},
	29: {2051, 3, []int{6, 30, 54, 78, 102, 126}, [4]BlockSpec{{30, 7, 116, 7, 117}, {28, 21, 45, 7, 46}, {30, 1, 23, 37, 24}, {30, 19, 15, 26, 16}}},
	30: {2185, 3, []int{6, 26, 52, 78, 104, 130}, [4]BlockSpec{{30, 5, 115, 10, 116}, {28, 19, 47, 10, 48}, {30, 15, 24, 25, 25}, {30, 23, 15, 25, 16}}},
	31: {2323, 3, []int{6, 30, 56, 82, 108, 134}, [4]BlockSpec{{30, 13, 115, 3, 116}, {28, 2, 46, 29, 47}, {30, 42, 24, 1, 25}, {30, 23, 15, 28, 16}}},
	32: {2465, 3, []int{6, 34, 60, 86, 112, 138}, [4]BlockSpec{{30, 17, 115, 0, 0}, {28, 10, 46, 23, 47}, {30, 10, 24, 35, 25}, {30, 19, 15, 35, 16}}},
	33: {2611, 3, []int{6, 30, 58, 86, 114, 142}, [4]BlockSpec{{30, 17, 115, 1, 116}, {28, 14, 46, 21, 47}, {30, 29, 24, 19, 25}, {30, 11, 15, 46, 16}}},
	34: {2761, 3, []int{6, 34, 62, 90, 118, 146}, [4]BlockSpec{{30, 13, 115, 6, 116}, {28, 14, 46, 23, 47}, {30, 44, 24, 7, 25}, {30, 59, 16, 1, 17}}},
	35: {2876, 0, []int{6, 30, 54, 78, 102, 126, 150}, [4]BlockSpec{{30, 12, 121, 7, 122}, {28, 12, 47, 26, 48}, {30, 39, 24, 14, 25}, {30, 22, 15, 41, 16}}},
	36: {3034, 0, []int{6, 24, 50, 76, 102, 128, 154}, [4]BlockSpec{{30, 6, 121, 14, 122}, {28, 6, 47, 34, 48}, {30, 46, 24, 10, 25}, {30, 2, 15, 64, 16}}},
	37: {3196, 0, []int{6, 28, 54, 80, 106, 132, 158}, [4]BlockSpec{{30, 17, 122, 4, 123}, {28, 29, 46, 14, 47}, {30, 49, 24, 10, 25}, {30, 24, 15, 46, 16}}},
	38: {3362, 0, []int{6, 32, 58, 84, 110, 136, 162}, [4]BlockSpec{{30, 4, 122, 18, 123}, {28, 13, 46, 32, 47}, {30, 48, 24, 14, 25}, {30, 42, 15, 32, 16}}},
	39: {3532, 0, []int{6, 26, 54, 82, 110, 138, 166}, [4]BlockSpec{{30, 20, 117, 4, 118}, {28, 40, 47, 7, 48}, {30, 43, 24, 22, 25}, {30, 10, 15, 67, 16}}},
	40: {3706, 0, []int{6, 30, 58, 86, 114, 142, 170}, [4]BlockSpec{{30, 19, 118, 6, 119}, {28, 18, 47, 31, 48}, {30, 34, 24, 34, 25}, {30, 20, 15, 61, 16}}},
}

// BCH generator polynomials for format and version information.
const (
	formatPoly  = 0x537  // x¹⁰+x⁸+x⁵+x⁴+x²+x+1
	formatMask  = 0x5412 // 101010000010010
	versionPoly = 0x1f25 // x¹²+x¹¹+x¹⁰+x⁹+x⁸+x⁵+x²+1
)

var (
	ftab [4][8]uint16           // format bits for level and mask
	vinf [MaxVersion + 1]uint32 // version bits for versions 7 to 40
)

func init() {
	for l := L; l <= H; l++ {
		for m := range ftab[l] {
			ftab[l][m] = calcFormat(l.formatBits()<<3|uint16(m)) ^
				formatMask
		}
	}
	for v := Version(7); v <= MaxVersion; v++ {
		vinf[v] = calcVersion(uint32(v))
	}
}

// calcFormat returns 5 bits of format data followed by 10 BCH(15,5)
// parity bits.
func calcFormat(fb uint16) uint16 {
	fb <<= 10
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&(1<<(10+i)) != 0 {
			rem ^= formatPoly << i
		}
	}
	return fb | rem
}

// calcVersion returns 6 bits of version data followed by 12
// BCH(18,6) parity bits.
func calcVersion(v uint32) uint32 {
	v <<= 12
	rem := v
	for i := 5; i >= 0; i-- {
		if rem&(1<<(12+i)) != 0 {
			rem ^= versionPoly << i
		}
	}
	return v | rem
}
