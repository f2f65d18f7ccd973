// SPDX-License-Identifier: MIT

package aiff

import "errors"

var (
	ErrNotAiffFile         = errors.New("not an AIFF file")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)
