// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Latin1 returns a Byte mode segment with UTF-8 text converted to
// ISO 8859-1, the default QR byte mode character set.
func Latin1(text string) (Segment, error) {
	t, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return Segment{}, fmt.Errorf("qr: non-latin-1 string %#q: %w",
			text, ErrInvalidModeCharacter)
	}
	return Segment{t, Byte}, nil
}
