// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details.
package coding // import "github.com/qrcode-go/qr/coding"

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/qrcode-go/qr/gf256"
)

// ErrInvalidParameter is matched by errors.Is for ErrLevel,
// ErrVersion, ErrMask and invalid Mode values.
var ErrInvalidParameter = errors.New("qr: invalid parameter")

var (
	ErrLevel   error = paramError("level")
	ErrVersion error = paramError("version")
	ErrMask    error = paramError("mask pattern")

	ErrDataTooLong          = errors.New("qr: data too long to encode as QR")
	ErrCapacityExceeded     = errors.New("qr: capacity exceeded")
	ErrInvalidModeCharacter = errors.New("qr: character not encodable in mode")
)

type paramError string

func (e paramError) Error() string { return "qr: invalid " + string(e) }

func (e paramError) Is(target error) bool { return target == ErrInvalidParameter }

// CapacityError reports data too long for a QR code of a given
// version and level.  It matches ErrCapacityExceeded.
type CapacityError struct {
	Bits     int     // encoded data length
	Capacity int     // data capacity of the code
	Version  Version // QR version
	Level    Level   // error correction level
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code %s-%s",
		e.Bits, e.Capacity, e.Version, e.Level)
}

func (e CapacityError) Unwrap() error { return ErrCapacityExceeded }

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version,
// the more information the code can store.
type Version int

// Version range.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is in [MinVersion, MaxVersion].
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// QR version size classes.  The width of the character count field
// depends on the size class.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

var sizeClass = [3]struct{ min, max Version }{
	{1, 9}, {10, 26}, {27, 40},
}

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Size returns the number of modules on a side of a QR code of
// version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// TotalBytes returns the total number of data and check bytes.
func (v Version) TotalBytes() int { return vtab[v].bytes }

// RemainderBits returns the number of bits left over after
// placing all data and check bytes.
func (v Version) RemainderBits() int { return vtab[v].remainder }

// Alignment returns the alignment pattern centre coordinates.
func (v Version) Alignment() []int {
	return append([]int(nil), vtab[v].align...)
}

// Blocks returns the error correction block structure for level l.
func (v Version) Blocks(l Level) BlockSpec { return vtab[v].level[l] }

// DataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int { return vtab[v].level[l].DataBytes() }

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q, H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// formatBits returns the level indicator: L=01, M=00, Q=11, H=10.
func (l Level) formatBits() uint16 { return uint16(l ^ 1) }

// ParseLevel parses "L", "M", "Q" or "H", ignoring case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if i := strings.IndexByte("LMQHlmqh", s[0]); i >= 0 {
			return Level(i & 3), nil
		}
	}
	return 0, ErrLevel
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, ErrLevel
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err == nil {
		*l = v
	}
	return err
}
