// SPDX-License-Identifier: MIT

package audio

import "errors"

var (
	// ErrInvalidDstSize means a read buffer's length is not a multiple
	// of the source's channel count.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrChannelMismatch means a channel layout cannot be mapped, such
	// as spreading a stereo source over four outputs.
	ErrChannelMismatch = errors.New("unsupported channel mapping")
)
