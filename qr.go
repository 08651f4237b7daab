// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

A Model collects data segments, chooses the version and mask and
freezes the resulting module grid:

	m, err := qr.NewModel(0, qr.M) // version 0: smallest that fits
	if err != nil {
		...
	}
	m.AddData("HELLO WORLD")
	if err := m.Make(); err != nil {
		...
	}
	n, _ := m.ModuleCount()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dark, _ := m.IsDark(row, col)
			...
		}
	}

Encode does the same for a single string described by Options.
*/
package qr // import "github.com/qrcode-go/qr"

import (
	"errors"

	"github.com/qrcode-go/qr/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

// ParseLevel parses "L", "M", "Q" or "H", ignoring case.
func ParseLevel(s string) (Level, error) { return coding.ParseLevel(s) }

// A Mode is a segment encoding mode.
type Mode = coding.Mode

const (
	Numeric      = coding.Numeric      // digits 0-9
	Alphanumeric = coding.Alphanumeric // 0-9 A-Z SPACE $%*+-./:
	Byte         = coding.Byte         // any data
)

// Version limits.  Version 0 requests automatic selection.
const (
	AutoVersion = 0
	MinVersion  = int(coding.MinVersion)
	MaxVersion  = int(coding.MaxVersion)
)

// AutoMask requests automatic mask selection.
const AutoMask = -1

var (
	// ErrNotMade is returned when a Model is queried before Make.
	ErrNotMade = errors.New("qr: model not made")

	// ErrMade is returned when a Model is modified after Make.
	ErrMade = errors.New("qr: model already made")

	// ErrRange is returned by IsDark for coordinates outside the
	// grid.
	ErrRange = errors.New("qr: module out of range")
)

// A Model accumulates data and builds a QR code from it.
// After Make it is read-only.  A Model is not safe for concurrent
// modification, but once made it may be queried from any number of
// goroutines.
type Model struct {
	version coding.Version // 0: auto
	level   Level
	mask    int // AutoMask or 0-7
	segs    []coding.Segment
	code    *Code
}

// NewModel returns a Model for the given version and level.
// Version AutoVersion selects the smallest version able to hold the
// data.
func NewModel(version int, level Level) (*Model, error) {
	if version != AutoVersion && !coding.Version(version).IsValid() {
		return nil, coding.ErrVersion
	}
	if !level.IsValid() {
		return nil, coding.ErrLevel
	}
	return &Model{
		version: coding.Version(version),
		level:   level,
		mask:    AutoMask,
	}, nil
}

// SetMask forces mask pattern 0 to 7, or AutoMask to choose the
// pattern with the smallest penalty.
func (m *Model) SetMask(mask int) error {
	if m.code != nil {
		return ErrMade
	}
	if mask < AutoMask || mask > 7 {
		return coding.ErrMask
	}
	m.mask = mask
	return nil
}

// AddData adds text as one segment in the most compact mode able to
// encode all of it.
func (m *Model) AddData(text string) error {
	return m.AddSegment(text, coding.Classify(text))
}

// AddSegment adds text as one segment in the given mode.  The error
// matches coding.ErrInvalidModeCharacter if text is not encodable in
// mode.
func (m *Model) AddSegment(text string, mode Mode) error {
	if m.code != nil {
		return ErrMade
	}
	seg := coding.Segment{Text: text, Mode: mode}
	if err := seg.Check(); err != nil {
		return err
	}
	m.segs = append(m.segs, seg)
	return nil
}

// Make encodes the data, selects the version if automatic, builds
// the grid and applies the mask.  With automatic version the error
// matches coding.ErrDataTooLong if no version fits; with a forced
// version it matches coding.ErrCapacityExceeded.
func (m *Model) Make() error {
	if m.code != nil {
		return ErrMade
	}
	v := m.version
	if v == AutoVersion {
		var err error
		if v, err = coding.Fit(m.level, m.segs...); err != nil {
			return err
		}
	}
	e, err := coding.NewEncoder(v, m.level)
	if err != nil {
		return err
	}
	if err := e.Write(m.segs...); err != nil {
		return err
	}
	var cc *coding.Code
	if m.mask == AutoMask {
		cc, err = e.Code()
	} else {
		cc, err = e.CodeMask(m.mask)
	}
	if err != nil {
		return err
	}
	m.code = newCode(cc, v, m.level)
	return nil
}

// ModuleCount returns the number of modules on a side.
func (m *Model) ModuleCount() (int, error) {
	if m.code == nil {
		return 0, ErrNotMade
	}
	return m.code.Size, nil
}

// IsDark reports whether the module at row, col is dark.
func (m *Model) IsDark(row, col int) (bool, error) {
	if m.code == nil {
		return false, ErrNotMade
	}
	if row < 0 || row >= m.code.Size || col < 0 || col >= m.code.Size {
		return false, ErrRange
	}
	return m.code.Black(col, row), nil
}

// Code returns a copy of the made code for rendering.
func (m *Model) Code() (*Code, error) {
	if m.code == nil {
		return nil, ErrNotMade
	}
	c := *m.code
	c.Bitmap = append([]byte(nil), c.Bitmap...)
	return &c, nil
}

// Options configures Encode.
type Options struct {
	Text    string `json:"text"`
	Level   Level  `json:"errorCorrectLevel"`
	Version int    `json:"version"`     // AutoVersion or 1-40
	Mask    int    `json:"maskPattern"` // AutoMask or 0-7
}

// DefaultOptions returns Options with level M and automatic version
// and mask.
func DefaultOptions() Options {
	return Options{Level: M, Version: AutoVersion, Mask: AutoMask}
}

// Encode returns a QR code for opt.Text.
func Encode(opt Options) (*Code, error) {
	m, err := NewModel(opt.Version, opt.Level)
	if err != nil {
		return nil, err
	}
	if err := m.SetMask(opt.Mask); err != nil {
		return nil, err
	}
	if err := m.AddData(opt.Text); err != nil {
		return nil, err
	}
	if err := m.Make(); err != nil {
		return nil, err
	}
	return m.code, nil
}
