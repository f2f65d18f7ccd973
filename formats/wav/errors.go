// SPDX-License-Identifier: MIT

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)
